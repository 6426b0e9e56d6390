package robot

import "context"

// SetIREnabled switches the infrared distance sensor's measuring on or off.
func (c *Client) SetIREnabled(ctx context.Context, enabled bool) error {
	_, err := c.Do(ctx, "ir_distance_sensor", "measure", enabled)
	return err
}

// GetIRDistance reads the infrared distance sensor, in millimetres. The
// sensor must be enabled first with SetIREnabled. irID selects the sensor;
// the EP chassis carries a single sensor, id 1.
func (c *Client) GetIRDistance(ctx context.Context, irID int) (float64, error) {
	resp, err := c.Do(ctx, "ir_distance_sensor", "distance", irID, "?")
	if err != nil {
		return 0, err
	}
	return resp.Float(0)
}
