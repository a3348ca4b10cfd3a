package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/skybi/translation-portal/internal/api/portal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmarshalMap(t *testing.T) {
	var target map[string]string

	require.NoError(t, unmarshalMap("null", &target))
	assert.Nil(t, target)

	require.NoError(t, unmarshalMap("{}", &target))
	assert.Nil(t, target)

	require.NoError(t, unmarshalMap(`{"name":"Jane"}`, &target))
	assert.Equal(t, map[string]string{"name": "Jane"}, target)

	assert.Error(t, unmarshalMap("{", &target))
}

func TestDriverAgainstDatabase(t *testing.T) {
	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN not set")
	}

	ctx := context.Background()
	driver := New(dsn)
	require.NoError(t, driver.Initialize(ctx))
	defer driver.Close()

	ses := session.New("postgres-test")
	ses.SetCredentials("token", "", "jane@example.org")
	ses.Touch(time.Now(), time.Hour)
	require.NoError(t, driver.Set(ctx, ses))
	defer driver.Delete(ctx, ses.ID)

	got, err := driver.Get(ctx, ses.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "token", got.AccessToken)
	assert.Equal(t, map[string]string{"preferred_username": "jane@example.org"}, got.Claims)
	assert.Nil(t, got.AuthError)

	require.NoError(t, driver.Delete(ctx, ses.ID))
	gone, err := driver.Get(ctx, ses.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}
