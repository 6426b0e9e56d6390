package feed

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collect drains n values from a cursor, failing the test on timeout.
func collect[T any](t *testing.T, cur *Cursor[T], n int) []T {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	out := make([]T, 0, n)
	for i := 0; i < n; i++ {
		v, err := cur.Next(ctx)
		require.NoError(t, err)
		out = append(out, v)
	}
	return out
}

func TestFeedFanOutIsolation(t *testing.T) {
	f := New[int]()

	c1 := f.Attach()
	defer c1.Close()
	c2 := f.Attach()
	defer c2.Close()

	f.Feed(1)

	// c3 attaches late and must never see the value fed before it.
	c3 := f.Attach()
	defer c3.Close()

	f.Feed(2)
	f.Feed(3)

	assert.Equal(t, []int{1, 2, 3}, collect(t, c1, 3))
	assert.Equal(t, []int{1, 2, 3}, collect(t, c2, 3))
	assert.Equal(t, []int{2, 3}, collect(t, c3, 2))
}

func TestFeedConsumptionIsIndependent(t *testing.T) {
	f := New[int]()

	fast := f.Attach()
	defer fast.Close()
	slow := f.Attach()
	defer slow.Close()

	f.Feed(1)
	f.Feed(2)

	// Fast consumer drains fully; the slow one must still see everything.
	assert.Equal(t, []int{1, 2}, collect(t, fast, 2))
	assert.Equal(t, []int{1, 2}, collect(t, slow, 2))
}

func TestCursorBlocksUntilFed(t *testing.T) {
	f := New[string]()
	cur := f.Attach()
	defer cur.Close()

	go func() {
		time.Sleep(20 * time.Millisecond)
		f.Feed("hello")
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	v, err := cur.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, "hello", v)
}

func TestCursorNextHonoursContext(t *testing.T) {
	f := New[int]()
	cur := f.Attach()
	defer cur.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := cur.Next(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDetachStopsDelivery(t *testing.T) {
	f := New[int]()

	cur := f.Attach()
	assert.Equal(t, 1, f.ConsumerCount())

	cur.Close()
	assert.Equal(t, 0, f.ConsumerCount())

	// Closing again is a no-op.
	cur.Close()
	assert.Equal(t, 0, f.ConsumerCount())

	f.Feed(1)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := cur.Next(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestSingleProducerOrderUnderConcurrency(t *testing.T) {
	type tagged struct {
		producer int
		seq      int
	}

	f := New[tagged]()
	cur := f.Attach()
	defer cur.Close()

	const producers = 4
	const perProducer = 50

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				f.Feed(tagged{producer: p, seq: i})
			}
		}(p)
	}
	wg.Wait()

	values := collect(t, cur, producers*perProducer)

	// No cross-producer ordering is promised, but each producer's own
	// sequence must arrive in issuing order.
	lastSeq := map[int]int{}
	for p := 0; p < producers; p++ {
		lastSeq[p] = -1
	}
	for _, v := range values {
		require.Equal(t, lastSeq[v.producer]+1, v.seq,
			"producer %d out of order", v.producer)
		lastSeq[v.producer] = v.seq
	}
}
