package api

import (
	"context"
	"testing"
	"time"

	"github.com/skybi/translation-portal/internal/api/portal/session"
	"github.com/skybi/translation-portal/internal/api/portal/session/storage/inmem"
	"github.com/skybi/translation-portal/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPurgeExpiredSessions(t *testing.T) {
	ctx := context.Background()
	store, err := inmem.New()
	require.NoError(t, err)

	expired := session.New("expired")
	expired.Expires = time.Now().Add(-time.Minute).Unix()
	active := session.New("active")
	active.Touch(time.Now(), time.Hour)
	require.NoError(t, store.Set(ctx, expired))
	require.NoError(t, store.Set(ctx, active))

	service := &Service{Config: &config.Config{}, Sessions: store}
	service.purgeExpiredSessions(ctx)

	gone, err := store.Get(ctx, "expired")
	require.NoError(t, err)
	assert.Nil(t, gone)

	kept, err := store.Get(ctx, "active")
	require.NoError(t, err)
	assert.NotNil(t, kept)
}

func TestStartupAndShutdown(t *testing.T) {
	store, err := inmem.New()
	require.NoError(t, err)

	service := &Service{
		Config: &config.Config{
			ListenAddress:   "127.0.0.1:0",
			AllowedOrigins:  []string{"*"},
			SecretKey:       "secret",
			APIURL:          "http://127.0.0.1:1",
			SessionLifetime: time.Minute,
		},
		Sessions: store,
	}
	errs := make(chan error, 1)
	service.Startup(errs)
	service.Shutdown()

	select {
	case err := <-errs:
		t.Fatalf("unexpected startup error: %v", err)
	case <-time.After(50 * time.Millisecond):
	}
	assert.Nil(t, service.portal)
	assert.Nil(t, service.purge)
}
