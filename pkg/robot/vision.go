package robot

import (
	"context"

	"github.com/sbhs-robotics/go-robomaster/pkg/protocol"
)

// SetLineRecognitionColour selects which colour of line the camera follows.
func (c *Client) SetLineRecognitionColour(ctx context.Context, colour protocol.LineColour) error {
	_, err := c.Do(ctx, "AI", "attribute", "line_color", colour)
	return err
}

// SetLineRecognitionEnabled switches line-recognition pushes on or off.
// Results arrive on the Line feed; set the colour first with
// SetLineRecognitionColour.
func (c *Client) SetLineRecognitionEnabled(ctx context.Context, enabled bool) error {
	_, err := c.Do(ctx, "AI", "push", "line", enabled)
	return err
}
