package feed

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chanSource is a Source backed by a channel, with a counter so tests can
// wait until the view's drain loop has consumed a known number of values.
type chanSource struct {
	ch       chan int
	consumed atomic.Int64
}

func newChanSource() *chanSource {
	return &chanSource{ch: make(chan int, 16)}
}

func (s *chanSource) Next(ctx context.Context) (int, error) {
	select {
	case v := <-s.ch:
		s.consumed.Add(1)
		return v, nil
	case <-ctx.Done():
		return 0, ctx.Err()
	}
}

func (s *chanSource) waitConsumed(t *testing.T, n int64) {
	t.Helper()
	require.Eventually(t, func() bool { return s.consumed.Load() >= n },
		2*time.Second, time.Millisecond)
}

// waitStored waits until the drain loop has stored want as the current
// value, so a subsequent Latest is deterministic.
func waitStored(t *testing.T, view *DroppingView[int], want int) {
	t.Helper()
	require.Eventually(t, func() bool {
		view.mu.Lock()
		defer view.mu.Unlock()
		return view.current == want
	}, 2*time.Second, time.Millisecond)
}

func TestDroppingViewLatestWins(t *testing.T) {
	src := newChanSource()
	view := NewDroppingView[int](src)
	defer view.Close()

	src.ch <- 1
	src.ch <- 2
	src.ch <- 3
	waitStored(t, view, 3)

	// Values 1 and 2 arrived while unconsumed: dropped. One read yields
	// the latest value only.
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	v, err := view.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, v)
}

func TestDroppingViewBlocksAfterRead(t *testing.T) {
	src := newChanSource()
	view := NewDroppingView[int](src)
	defer view.Close()

	src.ch <- 1
	src.waitConsumed(t, 1)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	v, err := view.Latest(ctx)
	cancel()
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	// The fresh signal was consumed: a second read must block until a
	// new value arrives.
	blockCtx, blockCancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	_, err = view.Latest(blockCtx)
	blockCancel()
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	src.ch <- 2
	ctx2, cancel2 := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel2()
	v, err = view.Latest(ctx2)
	require.NoError(t, err)
	assert.Equal(t, 2, v)
}

func TestDroppingViewClose(t *testing.T) {
	src := newChanSource()
	view := NewDroppingView[int](src)
	view.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := view.Latest(ctx)
	assert.ErrorIs(t, err, ErrViewClosed)
}

func TestDroppingFeedOwnsItsCursor(t *testing.T) {
	f := New[int]()
	view := NewDroppingFeed(f)
	require.Equal(t, 1, f.ConsumerCount())

	f.Feed(7)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	v, err := view.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	view.Close()
	assert.Equal(t, 0, f.ConsumerCount())
}
