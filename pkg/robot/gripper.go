package robot

import (
	"context"

	"github.com/sbhs-robotics/go-robomaster/pkg/protocol"
)

// OpenGripper opens the mechanical gripper.
func (c *Client) OpenGripper(ctx context.Context) error {
	_, err := c.Do(ctx, "robotic_gripper", "open", 1)
	return err
}

// CloseGripper closes the gripper until it meets resistance. An object in
// the way is gripped firmly without damaging the gripper.
func (c *Client) CloseGripper(ctx context.Context) error {
	_, err := c.Do(ctx, "robotic_gripper", "close", 1)
	return err
}

// GetGripperStatus reports whether the gripper is open, closed or
// partially open.
func (c *Client) GetGripperStatus(ctx context.Context) (protocol.GripperStatus, error) {
	resp, err := c.Do(ctx, "robotic_gripper", "status", "?")
	if err != nil {
		return 0, err
	}
	tok, err := resp.Str(0)
	if err != nil {
		return 0, err
	}
	return protocol.ParseGripperStatus(tok)
}
