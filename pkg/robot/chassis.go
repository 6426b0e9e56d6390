package robot

import (
	"context"

	"github.com/sbhs-robotics/go-robomaster/pkg/protocol"
)

// SetSpeed makes the robot move with the given speeds until told otherwise.
// forwards and right are in m/s, clockwise in degrees/s.
func (c *Client) SetSpeed(ctx context.Context, forwards, right, clockwise float64) error {
	_, err := c.Do(ctx, "chassis", "speed", "x", forwards, "y", right, "z", clockwise)
	return err
}

// SetWheelSpeed sets each wheel's speed individually, in rpm.
func (c *Client) SetWheelSpeed(ctx context.Context, frontRight, frontLeft, backLeft, backRight float64) error {
	_, err := c.Do(ctx, "chassis", "wheel",
		"w1", frontRight,
		"w2", frontLeft,
		"w3", backLeft,
		"w4", backRight,
	)
	return err
}

// SetLeftRightWheelSpeeds drives the robot like a tank: one speed per side,
// in rpm.
func (c *Client) SetLeftRightWheelSpeeds(ctx context.Context, left, right float64) error {
	return c.SetWheelSpeed(ctx, right, left, left, right)
}

// SetAllWheelSpeeds sets every wheel to the same speed, in rpm.
func (c *Client) SetAllWheelSpeeds(ctx context.Context, speed float64) error {
	return c.SetWheelSpeed(ctx, speed, speed, speed, speed)
}

// GetSpeed queries the current chassis and wheel speeds.
func (c *Client) GetSpeed(ctx context.Context) (protocol.ChassisSpeed, error) {
	resp, err := c.Do(ctx, "chassis", "speed", "?")
	if err != nil {
		return protocol.ChassisSpeed{}, err
	}
	return protocol.ParseChassisSpeed(resp)
}

// Move moves the robot by the given distance and rotates it as it moves,
// at the robot's default speeds. forwards and right are in metres,
// clockwise in degrees. The call does not wait for the move to finish.
func (c *Client) Move(ctx context.Context, forwards, right, clockwise float64) error {
	_, err := c.Do(ctx, "chassis", "move", "x", forwards, "y", right, "z", clockwise)
	return err
}

// MoveAtSpeed is Move with explicit speeds: speed in m/s for the
// translation, rotationSpeed in degrees/s. Pass 0 to keep the robot's
// default for either.
func (c *Client) MoveAtSpeed(ctx context.Context, forwards, right, clockwise, speed, rotationSpeed float64) error {
	args := []any{"chassis", "move", "x", forwards, "y", right, "z", clockwise}
	if speed != 0 {
		args = append(args, "vxy", speed)
	}
	if rotationSpeed != 0 {
		args = append(args, "vz", rotationSpeed)
	}
	_, err := c.Do(ctx, args...)
	return err
}

// GetPosition queries the chassis position relative to power-on.
func (c *Client) GetPosition(ctx context.Context) (protocol.ChassisPosition, error) {
	resp, err := c.Do(ctx, "chassis", "position", "?")
	if err != nil {
		return protocol.ChassisPosition{}, err
	}
	return protocol.ParseChassisPosition(resp)
}

// GetAttitude queries the chassis attitude.
func (c *Client) GetAttitude(ctx context.Context) (protocol.ChassisAttitude, error) {
	resp, err := c.Do(ctx, "chassis", "attitude", "?")
	if err != nil {
		return protocol.ChassisAttitude{}, err
	}
	return protocol.ParseChassisAttitude(resp)
}

// GetStatus queries the chassis status flags.
func (c *Client) GetStatus(ctx context.Context) (protocol.ChassisStatus, error) {
	resp, err := c.Do(ctx, "chassis", "status", "?")
	if err != nil {
		return protocol.ChassisStatus{}, err
	}
	return protocol.ParseChassisStatus(resp)
}

// SetPositionPushRate sets how often the robot pushes chassis position
// telemetry onto the Position feed. FrequencyOff disables the push.
func (c *Client) SetPositionPushRate(ctx context.Context, freq protocol.Frequency) error {
	if freq == protocol.FrequencyOff {
		_, err := c.Do(ctx, "chassis", "push", "position", false)
		return err
	}
	_, err := c.Do(ctx, "chassis", "push", "position", true, "pfreq", freq)
	return err
}

// SetAttitudePushRate sets how often the robot pushes chassis attitude
// telemetry onto the Attitude feed. FrequencyOff disables the push.
func (c *Client) SetAttitudePushRate(ctx context.Context, freq protocol.Frequency) error {
	if freq == protocol.FrequencyOff {
		_, err := c.Do(ctx, "chassis", "push", "attitude", false)
		return err
	}
	_, err := c.Do(ctx, "chassis", "push", "attitude", true, "afreq", freq)
	return err
}

// SetStatusPushRate sets how often the robot pushes chassis status
// telemetry onto the Status feed. FrequencyOff disables the push.
func (c *Client) SetStatusPushRate(ctx context.Context, freq protocol.Frequency) error {
	if freq == protocol.FrequencyOff {
		_, err := c.Do(ctx, "chassis", "push", "status", false)
		return err
	}
	_, err := c.Do(ctx, "chassis", "push", "status", true, "sfreq", freq)
	return err
}

// SetMode sets the robot's movement coordination mode.
func (c *Client) SetMode(ctx context.Context, mode protocol.Mode) error {
	_, err := c.Do(ctx, "robot", "mode", mode)
	return err
}

// GetMode queries the robot's movement coordination mode.
func (c *Client) GetMode(ctx context.Context) (protocol.Mode, error) {
	resp, err := c.Do(ctx, "robot", "mode", "?")
	if err != nil {
		return "", err
	}
	tok, err := resp.Str(0)
	if err != nil {
		return "", err
	}
	return protocol.ParseMode(tok)
}
