// Package devicestore remembers per-device notification flags between page sessions.
package devicestore

import (
	"context"
	"log/slog"

	"elevenstore/config"
	"elevenstore/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewDeviceStore picks Redis when configured and the in-memory store otherwise
func NewDeviceStore(params StoreParams) (repository.DeviceStore, error) {
	cfg := params.Config.Redis
	logger := params.Logger

	if cfg == nil || cfg.Addr == "" {
		logger.Info("Redis not configured, keeping device state in memory")

		return NewMemoryStore(), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(params.Ctx).Err(); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "failed to reach redis at %s", cfg.Addr)
	}

	logger.Info("Using Redis device store", slog.String("addr", cfg.Addr))

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing Redis client")

			return errors.WithStack(client.Close())
		},
	})

	return NewRedisStore(client, cfg.TTL), nil
}
