package robot

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialPushSocket(t *testing.T, p *pushReceiver) *net.UDPConn {
	t.Helper()
	port := p.conn.LocalAddr().(*net.UDPAddr).Port
	sender, err := net.DialUDP("udp", nil, &net.UDPAddr{
		IP:   net.IPv4(127, 0, 0, 1),
		Port: port,
	})
	require.NoError(t, err)
	t.Cleanup(func() { sender.Close() })
	return sender
}

func TestPushReceiverFeedsDatagrams(t *testing.T) {
	p, err := openPushReceiver(0)
	require.NoError(t, err)
	defer p.close()

	cur := p.feed.Attach()
	defer cur.Close()

	sender := dialPushSocket(t, p)

	// A datagram without the terminator must be dropped without killing
	// the receive loop.
	_, err = sender.Write([]byte("chassis push attitude 0.1"))
	require.NoError(t, err)

	_, err = sender.Write([]byte("chassis push attitude 0.1 0.2 0.3;"))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	resp, err := cur.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, "chassis push attitude 0.1 0.2 0.3", resp.String())
}

func TestPushReceiverBindError(t *testing.T) {
	p, err := openPushReceiver(0)
	require.NoError(t, err)
	defer p.close()

	taken := p.conn.LocalAddr().(*net.UDPAddr).Port
	_, err = openPushReceiver(taken)

	var bind *BindError
	require.ErrorAs(t, err, &bind)
	assert.Equal(t, taken, bind.Port)
}

func TestPushReceiverCloseStopsReceiveLoop(t *testing.T) {
	p, err := openPushReceiver(0)
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		defer close(done)
		assert.NoError(t, p.close())
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("close did not return")
	}
}
