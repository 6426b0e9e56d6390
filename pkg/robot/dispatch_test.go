package robot

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbhs-robotics/go-robomaster/pkg/protocol"
)

// pushMessage injects a raw datagram body straight into the client's push
// feed, bypassing the UDP socket.
func pushMessage(t *testing.T, c *Client, raw string) {
	t.Helper()
	resp, err := protocol.ParseMessage([]byte(raw))
	require.NoError(t, err)
	c.push.feed.Feed(resp)
}

func TestDispatchRoutesByTopicAndSubject(t *testing.T) {
	c, _, _ := newTestClient(t, nil)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	posCur := c.Position.Attach()
	defer posCur.Close()
	attCur := c.Attitude.Attach()
	defer attCur.Close()
	statusCur := c.Status.Attach()
	defer statusCur.Close()
	lineCur := c.Line.Attach()
	defer lineCur.Close()

	pushMessage(t, c, "chassis push position 1.5 -2.5;")
	pushMessage(t, c, "chassis push attitude 0.5 1.5 2.5;")
	pushMessage(t, c, "chassis push status 1 0 0 0 0 0 0 0 0 0 0;")
	pushMessage(t, c, "AI push line 1 0.1 0.2 0.3 0.4;")

	pos, err := posCur.Next(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 1.5, pos.X, 1e-9)
	assert.InDelta(t, -2.5, pos.Y, 1e-9)
	assert.Nil(t, pos.Clockwise)

	att, err := attCur.Next(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, att.Pitch, 1e-9)
	assert.InDelta(t, 1.5, att.Roll, 1e-9)
	assert.InDelta(t, 2.5, att.Yaw, 1e-9)

	status, err := statusCur.Next(ctx)
	require.NoError(t, err)
	assert.True(t, status.Static)
	assert.False(t, status.UpHill)

	line, err := lineCur.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, protocol.LineStraight, line.Type)
	require.Len(t, line.Points, 1)
	assert.InDelta(t, 0.1, line.Points[0].X, 1e-9)
}

func TestDispatchSurvivesUnknownAndMalformedMessages(t *testing.T) {
	c, _, _ := newTestClient(t, nil)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	posCur := c.Position.Attach()
	defer posCur.Close()

	// None of these must kill the dispatch loop or reach a typed feed.
	pushMessage(t, c, "hello;")
	pushMessage(t, c, "gimbal push attitude 1 2;")
	pushMessage(t, c, "chassis push warp 1 2 3;")
	pushMessage(t, c, "AI push face 1;")
	pushMessage(t, c, "chassis push position one two;")

	pushMessage(t, c, "chassis push position 3.5 4.5 90;")

	pos, err := posCur.Next(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 3.5, pos.X, 1e-9)
	require.NotNil(t, pos.Clockwise)
	assert.InDelta(t, 90, *pos.Clockwise, 1e-9)
}
