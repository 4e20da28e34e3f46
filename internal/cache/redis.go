// Package cache wraps the Redis client used for the token revocation list.
package cache

import (
	"context"
	"strings"
	"time"

	"bloglist/internal/middleware"

	"github.com/redis/go-redis/v9"
)

// Connect creates a Redis client for the given address. REDIS_URL may be
// either a bare host:port or a redis:// URL. A nil client is returned
// when Redis is unreachable; callers treat that as "revocation list
// disabled" rather than a fatal error.
func Connect(addr string) *redis.Client {
	var opts *redis.Options
	if strings.Contains(addr, "://") {
		parsed, err := redis.ParseURL(addr)
		if err != nil {
			middleware.Logger.Warn("invalid REDIS_URL, continuing without token revocation", "addr", addr, "error", err)
			return nil
		}
		opts = parsed
	} else {
		opts = &redis.Options{Addr: addr}
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		middleware.Logger.Warn("redis unreachable, continuing without token revocation", "error", err)
		return nil
	}

	middleware.Logger.Info("redis connected")
	return client
}
