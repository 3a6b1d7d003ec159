package dispatch

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrClosed is returned by Submit after Close has been called.
var ErrClosed = errors.New("dispatch pool closed")

// Pool bounds the number of tasks running at once.
type Pool struct {
	slots chan struct{}

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

// NewPool creates a pool with the given number of slots. Values below one are
// treated as one.
func NewPool(workers int) *Pool {
	if workers < 1 {
		workers = 1
	}
	return &Pool{slots: make(chan struct{}, workers)}
}

// Size returns the slot count.
func (p *Pool) Size() int {
	return cap(p.slots)
}

// Active returns the number of tasks currently holding a slot.
func (p *Pool) Active() int {
	return len(p.slots)
}

// Close stops accepting work and waits for submitted tasks to finish.
func (p *Pool) Close() {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()
	p.wg.Wait()
}

func (p *Pool) track() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return false
	}
	p.wg.Add(1)
	return true
}

// Task is the pending result of a submitted function.
type Task[T any] struct {
	done  chan struct{}
	value T
	err   error
}

// Submit schedules fn on the pool. The task waits for a free slot until ctx is
// done; fn receives the same ctx and is expected to honour it.
func Submit[T any](ctx context.Context, p *Pool, fn func(context.Context) (T, error)) (*Task[T], error) {
	if p == nil || fn == nil {
		return nil, errors.New("dispatch: pool and function are required")
	}
	if !p.track() {
		return nil, ErrClosed
	}

	task := &Task[T]{done: make(chan struct{})}
	go func() {
		defer p.wg.Done()
		defer close(task.done)

		select {
		case p.slots <- struct{}{}:
		case <-ctx.Done():
			task.err = ctx.Err()
			return
		}
		defer func() { <-p.slots }()

		defer func() {
			if r := recover(); r != nil {
				task.err = fmt.Errorf("dispatch: task panicked: %v", r)
			}
		}()
		task.value, task.err = fn(ctx)
	}()
	return task, nil
}

// Await blocks until the task completes or ctx is done, whichever comes first.
func (t *Task[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-t.done:
		return t.value, t.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Done is closed once the task has finished.
func (t *Task[T]) Done() <-chan struct{} {
	return t.done
}
