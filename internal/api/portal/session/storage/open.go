package storage

import (
	"context"
	"fmt"
	"github.com/skybi/translation-portal/internal/api/portal/session"
	"github.com/skybi/translation-portal/internal/api/portal/session/storage/inmem"
	"github.com/skybi/translation-portal/internal/api/portal/session/storage/postgres"
	"github.com/skybi/translation-portal/internal/api/portal/session/storage/redis"
	"github.com/skybi/translation-portal/internal/config"
	"strings"
)

const (
	DriverInMemory = "inmem"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

// Open creates and initializes the session storage driver selected by the configuration
func Open(ctx context.Context, cfg *config.Config) (session.Storage, error) {
	switch strings.ToLower(cfg.SessionDriver) {
	case "", DriverInMemory:
		return inmem.New()
	case DriverPostgres:
		driver := postgres.New(cfg.PostgresDSN)
		if err := driver.Initialize(ctx); err != nil {
			return nil, fmt.Errorf("initialize postgres session storage: %w", err)
		}
		return driver, nil
	case DriverRedis:
		driver := redis.New(cfg.RedisURL)
		if err := driver.Initialize(ctx); err != nil {
			driver.Close()
			return nil, fmt.Errorf("initialize redis session storage: %w", err)
		}
		return driver, nil
	default:
		return nil, fmt.Errorf("%w: %q", session.ErrUnknownDriver, cfg.SessionDriver)
	}
}
