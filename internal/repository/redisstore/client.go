// Package redisstore implements the Redis-backed stores: the notification
// key set, notification list, preference hash and live feed stream.
package redisstore

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/bharaths07/sportsv1.1-sub000/internal/config"
)

// NewClient connects to Redis and verifies it with a bounded ping.
func NewClient(ctx context.Context, cfg config.RedisConfig, logger zerolog.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	logger.Info().Str("addr", cfg.Addr).Int("db", cfg.DB).Msg("connected to redis")
	return client, nil
}

// keys builds namespaced key names.
type keys struct{ prefix string }

func (k keys) join(parts ...string) string {
	out := k.prefix
	for _, p := range parts {
		if out == "" {
			out = p
			continue
		}
		out += ":" + p
	}
	return out
}

// Pinger adapts the client to repository.Pinger for readiness checks.
type Pinger struct{ client *redis.Client }

func NewPinger(client *redis.Client) *Pinger { return &Pinger{client: client} }

func (p *Pinger) Ping(ctx context.Context) error { return p.client.Ping(ctx).Err() }
