package storage

import (
	"context"
	"testing"

	"github.com/skybi/translation-portal/internal/api/portal/session"
	"github.com/skybi/translation-portal/internal/api/portal/session/storage/inmem"
	"github.com/skybi/translation-portal/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenInMemoryByDefault(t *testing.T) {
	store, err := Open(context.Background(), &config.Config{})
	require.NoError(t, err)
	defer store.Close()
	assert.IsType(t, &inmem.Driver{}, store)
}

func TestOpenUnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), &config.Config{SessionDriver: "etcd"})
	assert.ErrorIs(t, err, session.ErrUnknownDriver)
}
