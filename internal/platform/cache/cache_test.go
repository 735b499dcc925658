package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestTTL_GetOrLoad_SharesConcurrentLoads(t *testing.T) {
	t.Parallel()

	c := NewTTL[string](time.Minute)
	var calls atomic.Int32

	load := func(context.Context) (string, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return "value", nil
	}

	const workers = 32
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			<-start
			v, err := c.GetOrLoad(context.Background(), "same-key", load)
			if err != nil || v != "value" {
				t.Errorf("GetOrLoad = %q, %v", v, err)
			}
		}()
	}

	close(start)
	wg.Wait()

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestTTL_Expiry(t *testing.T) {
	c := NewTTL[int](time.Second)
	now := time.Date(2026, 3, 1, 19, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	c.Set("k", 7)
	if v, ok := c.Get("k"); !ok || v != 7 {
		t.Fatalf("expected cached value, got %d ok=%v", v, ok)
	}

	now = now.Add(2 * time.Second)
	if _, ok := c.Get("k"); ok {
		t.Fatalf("expected entry to expire")
	}
}

func TestTTL_InvalidateAndErrors(t *testing.T) {
	c := NewTTL[int](0)
	var calls int

	load := func(context.Context) (int, error) {
		calls++
		return calls, nil
	}

	if v, _ := c.GetOrLoad(context.Background(), "k", load); v != 1 {
		t.Fatalf("expected first load, got %d", v)
	}
	if v, _ := c.GetOrLoad(context.Background(), "k", load); v != 1 {
		t.Fatalf("expected cached value, got %d", v)
	}

	c.Invalidate("k")
	if v, _ := c.GetOrLoad(context.Background(), "k", load); v != 2 {
		t.Fatalf("expected reload after invalidate, got %d", v)
	}

	errBoom := errors.New("boom")
	if _, err := c.GetOrLoad(context.Background(), "bad", func(context.Context) (int, error) {
		return 0, errBoom
	}); !errors.Is(err, errBoom) {
		t.Fatalf("expected load error, got %v", err)
	}
	if _, ok := c.Get("bad"); ok {
		t.Fatalf("load errors must not be cached")
	}
}
