// Package memory provides an in-process ID allocator for development and tests.
package memory

import (
	"context"
	"sync/atomic"

	"github.com/gamingroom/gameauth/internal/metrics"
)

// Sequence is a monotonic counter. The zero value starts at 1.
type Sequence struct {
	last atomic.Int64
}

// NewSequence returns a Sequence whose first ID is start.
func NewSequence(start int64) *Sequence {
	s := &Sequence{}
	if start > 1 {
		s.last.Store(start - 1)
	}
	return s
}

func (s *Sequence) NextID(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		metrics.IDAllocationErrorsTotal.WithLabelValues("memory").Inc()
		return 0, err
	}
	return s.last.Add(1), nil
}
