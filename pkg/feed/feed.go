// Package feed provides the stream primitives the telemetry pipeline is
// built on: a multi-consumer broadcast Feed and a latest-value-only
// DroppingView for slow consumers.
package feed

import (
	"context"
	"sync"
)

// Source is a FIFO, blocking stream of values. A Feed Cursor is the usual
// implementation.
type Source[T any] interface {
	Next(ctx context.Context) (T, error)
}

// Feed broadcasts values to any number of independent consumers. Every
// cursor attached at the moment of a Feed call receives its own copy;
// cursors attached later never see earlier values. Feeds are never closed —
// only individual cursors are.
//
// Feeding never blocks on a slow consumer: delivery is an enqueue onto the
// cursor's unbounded queue, so back-pressure is the consumer's problem
// (see DroppingView).
type Feed[T any] struct {
	mu      sync.Mutex
	cursors map[*Cursor[T]]struct{}
}

// New creates an empty Feed.
func New[T any]() *Feed[T] {
	return &Feed[T]{cursors: make(map[*Cursor[T]]struct{})}
}

// Feed delivers v to every currently attached cursor. It returns once all
// cursors have been enqueued to. Sequential calls from one producer are
// observed by every cursor in call order; concurrent producers have no
// cross-producer ordering.
func (f *Feed[T]) Feed(v T) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for c := range f.cursors {
		c.enqueue(v)
	}
}

// Attach registers a new cursor observing only future feeds. The caller
// owns the cursor and must Close it when done.
func (f *Feed[T]) Attach() *Cursor[T] {
	c := &Cursor[T]{feed: f, ready: make(chan struct{}, 1)}
	f.mu.Lock()
	f.cursors[c] = struct{}{}
	f.mu.Unlock()
	return c
}

// Detach unregisters a cursor. Detaching an already-detached cursor is a
// no-op.
func (f *Feed[T]) Detach(c *Cursor[T]) {
	f.mu.Lock()
	delete(f.cursors, c)
	f.mu.Unlock()
}

// ConsumerCount returns the number of attached cursors.
func (f *Feed[T]) ConsumerCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.cursors)
}

// Cursor is one consumer's independent position in a Feed: an ordered,
// unbounded queue plus a non-empty signal. Consumption by one cursor never
// affects another.
type Cursor[T any] struct {
	feed  *Feed[T]
	mu    sync.Mutex
	queue []T
	ready chan struct{}
}

func (c *Cursor[T]) enqueue(v T) {
	c.mu.Lock()
	c.queue = append(c.queue, v)
	c.mu.Unlock()
	select {
	case c.ready <- struct{}{}:
	default:
	}
}

// Next dequeues the next value in FIFO order, blocking until one is fed or
// ctx is done. Calling Next in a loop yields a lazy, unbounded sequence.
func (c *Cursor[T]) Next(ctx context.Context) (T, error) {
	for {
		c.mu.Lock()
		if len(c.queue) > 0 {
			v := c.queue[0]
			c.queue = c.queue[1:]
			c.mu.Unlock()
			return v, nil
		}
		c.mu.Unlock()

		select {
		case <-c.ready:
			// The signal may be stale (one token can cover several
			// enqueues); the queue re-check above decides.
		case <-ctx.Done():
			var zero T
			return zero, ctx.Err()
		}
	}
}

// Close detaches the cursor from its feed. It is idempotent and must be
// called by the cursor's owner for deterministic cleanup — cancelling a
// Next call alone does not detach.
func (c *Cursor[T]) Close() {
	c.feed.Detach(c)
}
