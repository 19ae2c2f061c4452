package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultDialTimeout = 5 * time.Second

// Config captures the settings for the membership-cache Redis instance.
type Config struct {
	Addr        string
	Password    string
	DB          int
	DialTimeout time.Duration
}

// Connect initialises a Redis client and validates connectivity with a ping.
// The cache is an optional accelerator for institution-membership checks, so
// the dial timeout also bounds the startup ping; a default is applied when
// none is configured.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	timeout := cfg.DialTimeout
	if timeout <= 0 {
		timeout = defaultDialTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: timeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}
