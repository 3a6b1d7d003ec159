package dispatch

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestNewPoolSize(t *testing.T) {
	for _, tc := range []struct {
		workers int
		want    int
	}{
		{workers: 4, want: 4},
		{workers: 0, want: 1},
		{workers: -3, want: 1},
	} {
		pool := NewPool(tc.workers)
		if got := pool.Size(); got != tc.want {
			t.Fatalf("NewPool(%d).Size() = %d, want %d", tc.workers, got, tc.want)
		}
		pool.Close()
	}
}

func TestSubmitReturnsValue(t *testing.T) {
	pool := NewPool(2)
	defer pool.Close()

	task, err := Submit(context.Background(), pool, func(context.Context) (string, error) {
		return "ok", nil
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	got, err := task.Await(context.Background())
	if err != nil {
		t.Fatalf("Await: %v", err)
	}
	if got != "ok" {
		t.Fatalf("expected ok, got %q", got)
	}
}

func TestSubmitPropagatesError(t *testing.T) {
	pool := NewPool(1)
	defer pool.Close()

	boom := errors.New("boom")
	task, err := Submit(context.Background(), pool, func(context.Context) (int, error) {
		return 0, boom
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if _, err := task.Await(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
}

func TestPoolBoundsConcurrency(t *testing.T) {
	pool := NewPool(2)
	defer pool.Close()

	var running, peak atomic.Int32
	release := make(chan struct{})
	tasks := make([]*Task[struct{}], 0, 6)
	for range 6 {
		task, err := Submit(context.Background(), pool, func(context.Context) (struct{}, error) {
			n := running.Add(1)
			for {
				old := peak.Load()
				if n <= old || peak.CompareAndSwap(old, n) {
					break
				}
			}
			<-release
			running.Add(-1)
			return struct{}{}, nil
		})
		if err != nil {
			t.Fatalf("Submit: %v", err)
		}
		tasks = append(tasks, task)
	}

	time.Sleep(50 * time.Millisecond)
	close(release)
	for _, task := range tasks {
		if _, err := task.Await(context.Background()); err != nil {
			t.Fatalf("Await: %v", err)
		}
	}
	if got := peak.Load(); got > 2 {
		t.Fatalf("expected at most 2 concurrent tasks, saw %d", got)
	}
}

func TestAwaitHonoursContext(t *testing.T) {
	pool := NewPool(1)
	defer pool.Close()

	release := make(chan struct{})
	task, err := Submit(context.Background(), pool, func(context.Context) (int, error) {
		<-release
		return 1, nil
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if _, err := task.Await(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
	close(release)
}

func TestQueuedTaskAbandonsSlotWaitOnCancel(t *testing.T) {
	pool := NewPool(1)
	defer pool.Close()

	release := make(chan struct{})
	started := make(chan struct{})
	blocker, err := Submit(context.Background(), pool, func(context.Context) (int, error) {
		close(started)
		<-release
		return 0, nil
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	<-started

	ctx, cancel := context.WithCancel(context.Background())
	var ran atomic.Bool
	queued, err := Submit(ctx, pool, func(context.Context) (int, error) {
		ran.Store(true)
		return 0, nil
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	cancel()

	<-queued.Done()
	if _, err := queued.Await(context.Background()); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected canceled, got %v", err)
	}
	if ran.Load() {
		t.Fatal("queued task should not run after cancellation")
	}
	close(release)
	if _, err := blocker.Await(context.Background()); err != nil {
		t.Fatalf("blocker: %v", err)
	}
}

func TestSubmitRecoversPanic(t *testing.T) {
	pool := NewPool(1)
	defer pool.Close()

	task, err := Submit(context.Background(), pool, func(context.Context) (int, error) {
		panic("kaboom")
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if _, err := task.Await(context.Background()); err == nil {
		t.Fatal("expected panic to surface as error")
	}
	if pool.Active() != 0 {
		t.Fatalf("expected slot released, active=%d", pool.Active())
	}
}

func TestSubmitAfterClose(t *testing.T) {
	pool := NewPool(1)
	pool.Close()
	_, err := Submit(context.Background(), pool, func(context.Context) (int, error) { return 0, nil })
	if !errors.Is(err, ErrClosed) {
		t.Fatalf("expected ErrClosed, got %v", err)
	}
}
