package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/gamingroom/gameauth/internal/metrics"
)

const DefaultIDKey = "gameauth:user_id"

// nextIDScript raises the counter to ARGV[1] when it is lower, then increments it.
var nextIDScript = redis.NewScript(`
local floor = tonumber(ARGV[1])
local current = tonumber(redis.call('GET', KEYS[1]) or '0')
if current < floor then
	redis.call('SET', KEYS[1], floor)
end
return redis.call('INCR', KEYS[1])
`)

// IDAllocator hands out user IDs from a Redis counter, so every process
// sharing the key draws from one sequence.
type IDAllocator struct {
	client redis.Cmdable
	key    string
	start  int64
}

// NewIDAllocator returns an allocator whose IDs are never below start. An
// existing counter above start is continued. An empty key falls back to
// DefaultIDKey.
func NewIDAllocator(client redis.Cmdable, key string, start int64) *IDAllocator {
	if key == "" {
		key = DefaultIDKey
	}
	if start < 1 {
		start = 1
	}
	return &IDAllocator{client: client, key: key, start: start}
}

// NextID increments the counter and returns its new value.
func (a *IDAllocator) NextID(ctx context.Context) (int64, error) {
	id, err := nextIDScript.Run(ctx, a.client, []string{a.key}, a.start-1).Int64()
	if err != nil {
		metrics.IDAllocationErrorsTotal.WithLabelValues("redis").Inc()
		return 0, fmt.Errorf("next id %s: %w", a.key, err)
	}
	return id, nil
}
