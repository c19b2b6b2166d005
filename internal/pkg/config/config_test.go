package config

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func TestLoadWith_Defaults(t *testing.T) {
	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{}))
	if err != nil {
		t.Fatalf("LoadWith: %v", err)
	}
	if cfg.Env != "development" || cfg.LogLevel != "info" {
		t.Errorf("unexpected defaults: env=%q level=%q", cfg.Env, cfg.LogLevel)
	}
	if cfg.IDs.Allocator != AllocatorMemory || cfg.IDs.Start != 1 {
		t.Errorf("unexpected id defaults: %+v", cfg.IDs)
	}
	if cfg.Redis.Addr != "localhost:6379" || cfg.Redis.IDKey != "gameauth:user_id" || cfg.Redis.Timeout != 5*time.Second {
		t.Errorf("unexpected redis defaults: %+v", cfg.Redis)
	}
	if !cfg.Pretty() {
		t.Errorf("development env should log pretty")
	}
}

func TestLoadWith_Overrides(t *testing.T) {
	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"ENV":           "production",
		"ID_ALLOCATOR":  "redis",
		"ID_START":      "1000",
		"REDIS_ADDR":    "redis:6379",
		"REDIS_DB":      "2",
		"REDIS_ID_KEY":  "game:ids",
		"REDIS_TIMEOUT": "250ms",
	}))
	if err != nil {
		t.Fatalf("LoadWith: %v", err)
	}
	if cfg.IDs.Allocator != AllocatorRedis || cfg.IDs.Start != 1000 {
		t.Errorf("unexpected id config: %+v", cfg.IDs)
	}
	if cfg.Redis.Addr != "redis:6379" || cfg.Redis.DB != 2 || cfg.Redis.IDKey != "game:ids" || cfg.Redis.Timeout != 250*time.Millisecond {
		t.Errorf("unexpected redis config: %+v", cfg.Redis)
	}
	if cfg.Pretty() {
		t.Errorf("production env should log json")
	}
}

func TestLoadWith_Invalid(t *testing.T) {
	cases := []struct {
		env  map[string]string
		want string
	}{
		{map[string]string{"ID_ALLOCATOR": "etcd"}, "ID_ALLOCATOR"},
		{map[string]string{"ID_START": "0"}, "ID_START"},
		{map[string]string{"REDIS_DB": "not-a-number"}, "DB"},
	}

	for _, tc := range cases {
		_, err := LoadWith(context.Background(), envconfig.MapLookuper(tc.env))
		if err == nil {
			t.Errorf("%v: expected error", tc.env)
			continue
		}
		if !strings.Contains(err.Error(), tc.want) {
			t.Errorf("%v: expected error mentioning %s, got %v", tc.env, tc.want, err)
		}
	}
}
