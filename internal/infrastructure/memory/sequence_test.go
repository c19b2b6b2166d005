package memory

import (
	"context"
	"sync"
	"testing"
)

func TestSequence_ZeroValueStartsAtOne(t *testing.T) {
	var s Sequence
	for want := int64(1); want <= 3; want++ {
		got, err := s.NextID(context.Background())
		if err != nil {
			t.Fatalf("NextID: %v", err)
		}
		if got != want {
			t.Fatalf("expected %d, got %d", want, got)
		}
	}
}

func TestSequence_Start(t *testing.T) {
	s := NewSequence(500)
	if got, _ := s.NextID(context.Background()); got != 500 {
		t.Fatalf("expected 500, got %d", got)
	}
}

func TestSequence_Concurrent(t *testing.T) {
	s := NewSequence(1)
	const n = 200

	ids := make(chan int64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, _ := s.NextID(context.Background())
			ids <- id
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool, n)
	for id := range ids {
		if seen[id] {
			t.Fatalf("duplicate id %d", id)
		}
		seen[id] = true
	}
	if len(seen) != n {
		t.Fatalf("expected %d ids, got %d", n, len(seen))
	}
}

func TestSequence_CancelledContext(t *testing.T) {
	s := NewSequence(1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := s.NextID(ctx); err == nil {
		t.Fatal("expected error for cancelled context")
	}
	if got, _ := s.NextID(context.Background()); got != 1 {
		t.Fatalf("cancelled call must not consume an id, got %d", got)
	}
}
