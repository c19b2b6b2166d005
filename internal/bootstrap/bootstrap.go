// Package bootstrap wires configuration, ID allocation and the identity service.
package bootstrap

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/gamingroom/gameauth/internal/core/ports"
	"github.com/gamingroom/gameauth/internal/core/service"
	"github.com/gamingroom/gameauth/internal/infrastructure/db/redis"
	"github.com/gamingroom/gameauth/internal/infrastructure/memory"
	"github.com/gamingroom/gameauth/internal/pkg/config"
	"github.com/gamingroom/gameauth/pkg/logger"
)

const serviceName = "gameauth"

// App holds the wired identity service and the resources it owns.
type App struct {
	Identities *service.IdentityService

	rdb *goredis.Client
}

// FromEnv loads configuration from the environment, builds the logger and
// wires the App. It panics on invalid configuration, like config.Load.
func FromEnv(ctx context.Context) (*App, zerolog.Logger, error) {
	cfg := config.Load()
	log := logger.New(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.Pretty(),
		Service: serviceName,
	})

	app, err := New(ctx, cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("failed to build identity service")
		return nil, log, err
	}
	return app, log, nil
}

// New builds an App from cfg. Callers must Close it.
func New(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*App, error) {
	app := &App{}

	var ids ports.IDAllocator
	switch cfg.IDs.Allocator {
	case config.AllocatorRedis:
		rdb, err := redis.Connect(ctx, redis.Config{
			Addr:    cfg.Redis.Addr,
			DB:      cfg.Redis.DB,
			Timeout: cfg.Redis.Timeout,
		})
		if err != nil {
			return nil, fmt.Errorf("bootstrap: %w", err)
		}
		app.rdb = rdb
		ids = redis.NewIDAllocator(rdb, cfg.Redis.IDKey, cfg.IDs.Start)
	case config.AllocatorMemory:
		ids = memory.NewSequence(cfg.IDs.Start)
	default:
		return nil, fmt.Errorf("bootstrap: unknown id allocator %q", cfg.IDs.Allocator)
	}

	log.Info().
		Str("allocator", cfg.IDs.Allocator).
		Int64("id_start", cfg.IDs.Start).
		Msg("identity service ready")

	app.Identities = service.NewIdentityService(ids, log)
	return app, nil
}

// Close releases the Redis client, if one was opened.
func (a *App) Close() error {
	if a.rdb == nil {
		return nil
	}
	return a.rdb.Close()
}
