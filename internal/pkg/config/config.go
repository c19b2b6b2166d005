package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

const (
	AllocatorMemory = "memory"
	AllocatorRedis  = "redis"
)

type Config struct {
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	IDs   IDConfig
	Redis RedisConfig
}

// IDConfig selects where user identifiers come from.
type IDConfig struct {
	Allocator string `env:"ID_ALLOCATOR, default=memory"`
	Start     int64  `env:"ID_START,     default=1"`
}

type RedisConfig struct {
	Addr    string        `env:"REDIS_ADDR,    default=localhost:6379"`
	DB      int           `env:"REDIS_DB,      default=0"`
	IDKey   string        `env:"REDIS_ID_KEY,  default=gameauth:user_id"`
	Timeout time.Duration `env:"REDIS_TIMEOUT, default=5s"`
}

// Pretty reports whether logs should be written for humans.
func (c *Config) Pretty() bool {
	return c.Env == "development"
}

// Load reads configuration from the process environment and panics on failure.
func Load() *Config {
	cfg, err := LoadWith(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

// LoadWith reads configuration from l and validates the allocator settings.
func LoadWith(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, err
	}

	switch cfg.IDs.Allocator {
	case AllocatorMemory, AllocatorRedis:
	default:
		return nil, fmt.Errorf("ID_ALLOCATOR: unknown allocator %q", cfg.IDs.Allocator)
	}
	if cfg.IDs.Start < 1 {
		return nil, fmt.Errorf("ID_START: must be positive, got %d", cfg.IDs.Start)
	}
	return &cfg, nil
}
