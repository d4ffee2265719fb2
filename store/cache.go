package store

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// KeyPrefix namespaces every cache key.
const KeyPrefix = "geocontour:"

// DefaultTTL applies when NewCache gets a non-positive ttl.
const DefaultTTL = time.Hour

// Cache stores encoded results in Redis. A Cache with a nil client misses on
// every Get and drops every Set.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

// NewCache wraps client; client may be nil.
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		client: client,
		ttl:    ttl,
		log:    zap.L().With(zap.String("component", "store.cache")),
	}
}

// OpenRedis returns a client for addr, or nil when addr is empty.
func OpenRedis(addr, password string, db int) *redis.Client {
	if addr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
}

// Enabled reports whether a client is attached.
func (c *Cache) Enabled() bool { return c != nil && c.client != nil }

// TTL returns the expiry applied by Set.
func (c *Cache) TTL() time.Duration { return c.ttl }

// Key digests parts into a namespaced key. Parts are separated so that
// ("ab","c") and ("a","bc") differ.
func Key(parts ...string) string {
	sum := sha256.Sum256([]byte(strings.Join(parts, "\x1f")))
	return KeyPrefix + hex.EncodeToString(sum[:])
}

// Get returns the value at key and whether it was present.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if !c.Enabled() {
		return nil, false, nil
	}
	data, err := c.client.Get(ctx, key).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		c.log.Debug("cache miss", zap.String("key", key))
		return nil, false, nil
	case err != nil:
		return nil, false, eris.Wrapf(err, "store: cache get %s", key)
	}
	c.log.Debug("cache hit", zap.String("key", key), zap.Int("bytes", len(data)))
	return data, true, nil
}

// Set stores value at key with the cache TTL.
func (c *Cache) Set(ctx context.Context, key string, value []byte) error {
	if !c.Enabled() {
		return nil
	}
	if err := c.client.Set(ctx, key, value, c.ttl).Err(); err != nil {
		return eris.Wrapf(err, "store: cache set %s", key)
	}
	return nil
}

// Close releases the client.
func (c *Cache) Close() error {
	if !c.Enabled() {
		return nil
	}
	return c.client.Close()
}
