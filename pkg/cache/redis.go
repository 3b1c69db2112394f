package cache

import (
	"context"
	"errors"
	"io"
	"net"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache stores entries in Redis with native expiry. Connection-level
// failures are retried with [RetryWithBackoff].
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache connects to the server at url (redis://[user:pass@]host:port/db)
// and pings it once.
func NewRedisCache(ctx context.Context, url string) (*RedisCache, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	c := &RedisCache{client: redis.NewClient(opts)}
	if err := c.do(ctx, func() error { return c.client.Ping(ctx).Err() }); err != nil {
		_ = c.client.Close()
		return nil, err
	}
	return c, nil
}

// NewRedisCacheFromClient wraps an existing client.
func NewRedisCacheFromClient(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

// Get retrieves a value from the cache.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var data []byte
	err := c.do(ctx, func() error {
		var err error
		data, err = c.client.Get(ctx, key).Bytes()
		return err
	})
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// Set stores a value. A ttl of zero keeps the entry until it is deleted.
func (c *RedisCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return c.do(ctx, func() error {
		return c.client.Set(ctx, key, data, ttl).Err()
	})
}

// Delete removes a value from the cache.
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	return c.do(ctx, func() error {
		return c.client.Del(ctx, key).Err()
	})
}

// Close closes the underlying client.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

func (c *RedisCache) do(ctx context.Context, fn func() error) error {
	return RetryWithBackoff(ctx, func() error {
		err := fn()
		if isTransient(err) {
			return Retryable(err)
		}
		return err
	})
}

// isTransient reports network failures and dropped connections.
func isTransient(err error) bool {
	if err == nil || errors.Is(err, redis.Nil) {
		return false
	}
	var netErr net.Error
	return errors.As(err, &netErr) || errors.Is(err, io.EOF)
}

// Ensure RedisCache implements Cache.
var _ Cache = (*RedisCache)(nil)
