package ports

import "context"

// IDAllocator hands out user identifiers. IDs returned by one backend are
// unique and strictly increasing.
type IDAllocator interface {
	NextID(ctx context.Context) (int64, error)
}
