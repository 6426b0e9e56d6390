package robot

import (
	"context"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbhs-robotics/go-robomaster/pkg/protocol"
)

// feedStatus pumps fabricated status pushes onto c.Status until the test
// finishes.
func feedStatus(t *testing.T, c *Client, status func(tick int) protocol.ChassisStatus) {
	t.Helper()
	stop := make(chan struct{})
	t.Cleanup(func() { close(stop) })
	go func() {
		ticker := time.NewTicker(10 * time.Millisecond)
		defer ticker.Stop()
		for tick := 0; ; tick++ {
			select {
			case <-stop:
				return
			case <-ticker.C:
				c.Status.Feed(status(tick))
			}
		}
	}()
}

func TestRotateUntilStaticReturnsOnceStatic(t *testing.T) {
	var sawMove atomic.Bool
	c, _, _ := newTestClient(t, func(cmd string) string {
		if strings.HasPrefix(cmd, "chassis move") {
			sawMove.Store(true)
		}
		return ""
	})

	// Simulate a rotation that settles after a few pushes.
	feedStatus(t, c, func(tick int) protocol.ChassisStatus {
		return protocol.ChassisStatus{Static: tick > 5}
	})

	err := c.RotateUntilStatic(context.Background(), 90, 5*time.Second)
	require.NoError(t, err)
	assert.True(t, sawMove.Load())
}

func TestRotateUntilStaticTimesOut(t *testing.T) {
	c, _, _ := newTestClient(t, nil)

	feedStatus(t, c, func(int) protocol.ChassisStatus {
		return protocol.ChassisStatus{Static: false}
	})

	err := c.RotateUntilStatic(context.Background(), 90, 300*time.Millisecond)
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestRotateUntilStaticPropagatesCancellation(t *testing.T) {
	c, _, _ := newTestClient(t, nil)

	feedStatus(t, c, func(int) protocol.ChassisStatus {
		return protocol.ChassisStatus{Static: false}
	})

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(100 * time.Millisecond)
		cancel()
	}()

	err := c.RotateUntilStatic(ctx, 90, 5*time.Second)
	assert.ErrorIs(t, err, context.Canceled)
}
