package redis

import (
	"context"
	"encoding/json"
	"errors"
	"github.com/redis/go-redis/v9"
	"github.com/skybi/translation-portal/internal/api/portal/session"
	"time"
)

const keyPrefix = "session:"

// Driver represents the Redis session storage driver.
// Expiration is delegated to Redis by storing every session with a TTL matching its remaining lifetime.
type Driver struct {
	rdb *redis.Client
}

var _ session.Storage = (*Driver)(nil)

// New creates a new Redis session storage driver.
// url may either be a redis:// URL or a plain host:port address.
func New(url string) *Driver {
	opt, err := redis.ParseURL(url)
	if err != nil {
		opt = &redis.Options{
			Addr: url,
		}
	}
	return &Driver{rdb: redis.NewClient(opt)}
}

// Initialize verifies that the Redis server is reachable
func (driver *Driver) Initialize(ctx context.Context) error {
	return driver.rdb.Ping(ctx).Err()
}

// Get retrieves a session by its ID
func (driver *Driver) Get(ctx context.Context, id string) (*session.Session, error) {
	raw, err := driver.rdb.Get(ctx, key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	ses := new(session.Session)
	if err := json.Unmarshal(raw, ses); err != nil {
		return nil, err
	}
	return ses, nil
}

// Set creates or replaces a session
func (driver *Driver) Set(ctx context.Context, ses *session.Session) error {
	ttl := ttlOf(ses, time.Now())
	if ttl < 0 {
		return driver.Delete(ctx, ses.ID)
	}

	raw, err := json.Marshal(ses)
	if err != nil {
		return err
	}
	return driver.rdb.Set(ctx, key(ses.ID), raw, ttl).Err()
}

// Delete deletes a session by its ID
func (driver *Driver) Delete(ctx context.Context, id string) error {
	return driver.rdb.Del(ctx, key(id)).Err()
}

// TerminateExpired is a no-op as Redis evicts expired keys itself
func (driver *Driver) TerminateExpired(_ context.Context) (int, error) {
	return 0, nil
}

// Close closes the Redis client
func (driver *Driver) Close() {
	_ = driver.rdb.Close()
}

func key(id string) string {
	return keyPrefix + id
}

// ttlOf returns the remaining lifetime of a session.
// Zero means no expiration, a negative value means the session is already expired.
func ttlOf(ses *session.Session, now time.Time) time.Duration {
	if ses.Expires <= 0 {
		return 0
	}
	ttl := time.Unix(ses.Expires, 0).Sub(now)
	if ttl <= 0 {
		return -1
	}
	return ttl
}
