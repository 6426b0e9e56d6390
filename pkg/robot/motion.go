package robot

import (
	"context"
	"time"

	"github.com/sbhs-robotics/go-robomaster/pkg/feed"
)

// staticPollInterval is how often RotateUntilStatic samples the status
// feed. Status pushes are caller-configured and may be slower than this,
// which is why the helper polls rather than waking per push.
const staticPollInterval = 50 * time.Millisecond

// RotateUntilStatic rotates the robot clockwise by the given number of
// degrees and polls the Status feed until the chassis reports static,
// giving up with ErrTimeout after timeout. Status pushes must be enabled
// first with SetStatusPushRate.
func (c *Client) RotateUntilStatic(ctx context.Context, clockwise float64, timeout time.Duration) error {
	view := feed.NewDroppingFeed(c.Status)
	defer view.Close()

	if err := c.Move(ctx, 0, 0, clockwise); err != nil {
		return err
	}

	start := time.Now()
	for time.Since(start) < timeout {
		pollCtx, cancel := context.WithTimeout(ctx, staticPollInterval)
		status, err := view.Latest(pollCtx)
		cancel()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			// No fresh sample this tick.
			continue
		}
		if status.Static {
			return nil
		}
	}
	return ErrTimeout
}
