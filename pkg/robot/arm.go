package robot

import "context"

// MoveArm moves the robotic arm by the given distance relative to its
// current position. The units are robot-specific; record values from
// GetArmPosition to calibrate.
func (c *Client) MoveArm(ctx context.Context, xDist, yDist float64) error {
	_, err := c.Do(ctx, "robotic_arm", "move", "x", xDist, "y", yDist)
	return err
}

// SetArmPosition moves the robotic arm to an absolute position. The origin
// differs between robots, so calibrate with GetArmPosition first.
func (c *Client) SetArmPosition(ctx context.Context, x, y float64) error {
	_, err := c.Do(ctx, "robotic_arm", "moveto", "x", x, "y", y)
	return err
}

// GetArmPosition returns the arm's current position.
func (c *Client) GetArmPosition(ctx context.Context) (x, y float64, err error) {
	resp, err := c.Do(ctx, "robotic_arm", "position", "?")
	if err != nil {
		return 0, 0, err
	}
	if x, err = resp.Float(0); err != nil {
		return 0, 0, err
	}
	if y, err = resp.Float(1); err != nil {
		return 0, 0, err
	}
	return x, y, nil
}
