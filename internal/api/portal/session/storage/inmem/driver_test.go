package inmem

import (
	"context"
	"testing"
	"time"

	"github.com/skybi/translation-portal/internal/api/portal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession(id string, expires time.Time) *session.Session {
	ses := session.New(id)
	ses.Expires = expires.Unix()
	return ses
}

func TestDriverSetGetDelete(t *testing.T) {
	ctx := context.Background()
	driver, err := New()
	require.NoError(t, err)
	defer driver.Close()

	missing, err := driver.Get(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, missing)

	ses := newSession("a", time.Now().Add(time.Hour))
	ses.SetCredentials("token", "Jane", "")
	require.NoError(t, driver.Set(ctx, ses))

	got, err := driver.Get(ctx, "a")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "token", got.AccessToken)
	assert.Equal(t, map[string]string{"name": "Jane"}, got.Claims)

	// Mutating the returned copy must not leak into the stored session
	got.Claims["name"] = "Mallory"
	again, err := driver.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "Jane", again.Claims["name"])

	require.NoError(t, driver.Delete(ctx, "a"))
	gone, err := driver.Get(ctx, "a")
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestDriverSetReplaces(t *testing.T) {
	ctx := context.Background()
	driver, err := New()
	require.NoError(t, err)

	ses := newSession("a", time.Now().Add(time.Hour))
	ses.SetCredentials("first", "", "")
	require.NoError(t, driver.Set(ctx, ses))

	ses.SetCredentials("second", "", "")
	require.NoError(t, driver.Set(ctx, ses))

	got, err := driver.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "second", got.AccessToken)
}

func TestDriverTerminateExpired(t *testing.T) {
	ctx := context.Background()
	driver, err := New()
	require.NoError(t, err)

	require.NoError(t, driver.Set(ctx, newSession("old-1", time.Now().Add(-time.Hour))))
	require.NoError(t, driver.Set(ctx, newSession("old-2", time.Now().Add(-time.Minute))))
	require.NoError(t, driver.Set(ctx, newSession("fresh", time.Now().Add(time.Hour))))

	n, err := driver.TerminateExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	fresh, err := driver.Get(ctx, "fresh")
	require.NoError(t, err)
	assert.NotNil(t, fresh)

	old, err := driver.Get(ctx, "old-1")
	require.NoError(t, err)
	assert.Nil(t, old)
}
