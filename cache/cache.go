// cache/cache.go
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	logger "github.com/tgechev/gonotes/logging"
)

// Cache is a TTL-aware key/value store shared by every in-flight request.
// Implementations must be safe for concurrent use.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Has(ctx context.Context, key string) (bool, error)
	Delete(ctx context.Context, keys ...string) error
}

// Cache keys are built here so they do not drift across the codebase.
func UsersKey() string                  { return "users" }
func UserNotesKey(userID string) string { return fmt.Sprintf("notes:user:%s", userID) }
func NoteKey(noteID string) string      { return fmt.Sprintf("note:%s", noteID) }
func LogoutKey(userID string, exp int64) string {
	return fmt.Sprintf("logout:%s:%d", userID, exp)
}

// Remember is the cache-aside read path: a hit short-circuits compute
// entirely, a miss invokes compute and stores the JSON-encoded result under
// key for ttl. Cache failures degrade to a plain compute, never to a request
// failure. The second return reports whether the value came from the cache.
func Remember[T any](ctx context.Context, c Cache, key string, ttl time.Duration, compute func() (T, error)) (T, bool, error) {
	var value T

	raw, hit, err := c.Get(ctx, key)
	if err != nil {
		logger.Warn("Cache read failed", zap.Error(err), zap.String("key", key))
	} else if hit {
		if err := json.Unmarshal(raw, &value); err == nil {
			logger.Debug("Cache hit", zap.String("key", key))
			return value, true, nil
		}
		logger.Warn("Discarding undecodable cache entry", zap.String("key", key))
	}

	value, err = compute()
	if err != nil {
		return value, false, err
	}

	encoded, err := json.Marshal(value)
	if err != nil {
		logger.Warn("Failed to encode value for cache", zap.Error(err), zap.String("key", key))
		return value, false, nil
	}
	if err := c.Put(ctx, key, encoded, ttl); err != nil {
		logger.Warn("Cache write failed", zap.Error(err), zap.String("key", key))
	}

	return value, false, nil
}
