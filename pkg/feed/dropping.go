package feed

import (
	"context"
	"errors"
	"sync"
)

// ErrViewClosed is returned by Latest once a DroppingView has been closed.
var ErrViewClosed = errors.New("feed: dropping view closed")

// DroppingView exposes only the most recent value of a Source, discarding
// intermediate values that arrive while unconsumed. At most one undelivered
// value is held at any time, so a consumer slower than the producer sees
// fresh data instead of an ever-growing backlog.
//
// Delivery is at-least-once, latest-wins: concurrent Latest callers race
// for the same fresh signal, and a value overwritten before anyone reads it
// is silently dropped.
type DroppingView[T any] struct {
	src    Source[T]
	cancel context.CancelFunc
	done   chan struct{}
	closer func()

	mu      sync.Mutex
	current T
	fresh   chan struct{}
}

// NewDroppingView wraps an existing Source. A background goroutine
// perpetually drains the source until Close is called or the source fails.
func NewDroppingView[T any](src Source[T]) *DroppingView[T] {
	ctx, cancel := context.WithCancel(context.Background())
	v := &DroppingView[T]{
		src:    src,
		cancel: cancel,
		done:   make(chan struct{}),
		fresh:  make(chan struct{}, 1),
	}
	go v.drain(ctx)
	return v
}

// NewDroppingFeed attaches a new cursor to f and wraps it in a
// DroppingView. The view owns the cursor and detaches it on Close.
func NewDroppingFeed[T any](f *Feed[T]) *DroppingView[T] {
	cur := f.Attach()
	v := NewDroppingView[T](cur)
	v.closer = cur.Close
	return v
}

func (v *DroppingView[T]) drain(ctx context.Context) {
	defer close(v.done)
	for {
		val, err := v.src.Next(ctx)
		if err != nil {
			return
		}
		v.mu.Lock()
		v.current = val
		v.mu.Unlock()
		select {
		case v.fresh <- struct{}{}:
		default:
			// A previous value is still unread; it has just been dropped.
		}
	}
}

// Latest waits for a value that arrived after the previous Latest call,
// consumes the fresh signal, and returns the stored current value. If no
// new value has arrived it blocks until one does, ctx is done, or the view
// is closed.
func (v *DroppingView[T]) Latest(ctx context.Context) (T, error) {
	var zero T
	select {
	case <-v.fresh:
		v.mu.Lock()
		val := v.current
		v.mu.Unlock()
		return val, nil
	case <-v.done:
		return zero, ErrViewClosed
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

// Close stops the background drain and detaches the view's cursor if the
// view created it. Pending and future Latest calls fail with ErrViewClosed.
func (v *DroppingView[T]) Close() {
	v.cancel()
	<-v.done
	if v.closer != nil {
		v.closer()
	}
}
