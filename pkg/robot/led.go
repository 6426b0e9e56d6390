package robot

import (
	"context"

	"github.com/sbhs-robotics/go-robomaster/pkg/protocol"
)

// SetLED applies a colour and effect to a group of chassis LEDs.
// r, g and b are 0-255.
func (c *Client) SetLED(ctx context.Context, comp protocol.LEDComp, r, g, b int, effect protocol.LEDEffect) error {
	_, err := c.Do(ctx, "led", "control",
		"comp", comp,
		"r", r, "g", g, "b", b,
		"effect", effect,
	)
	return err
}

// SetLEDOff turns a group of chassis LEDs off.
func (c *Client) SetLEDOff(ctx context.Context, comp protocol.LEDComp) error {
	return c.SetLED(ctx, comp, 0, 0, 0, protocol.LEDEffectOff)
}
