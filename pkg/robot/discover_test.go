package robot

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listenDiscovery(t *testing.T) (*net.UDPConn, *net.UDPConn) {
	t.Helper()
	conn, err := net.ListenUDP("udp", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 0})
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	sender, err := net.DialUDP("udp", nil, conn.LocalAddr().(*net.UDPAddr))
	require.NoError(t, err)
	t.Cleanup(func() { sender.Close() })
	return conn, sender
}

func TestAwaitBroadcastReturnsAnnouncedIP(t *testing.T) {
	conn, sender := listenDiscovery(t)

	go func() {
		// Noise on the port must be skipped, not fatal.
		sender.Write([]byte("hello"))
		sender.Write([]byte("robot hello;"))
		sender.Write([]byte("robot ip 192.168.2.1;"))
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	ip, err := awaitBroadcast(ctx, conn)
	require.NoError(t, err)
	assert.Equal(t, "192.168.2.1", ip)
}

func TestAwaitBroadcastHonoursContext(t *testing.T) {
	conn, _ := listenDiscovery(t)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := awaitBroadcast(ctx, conn)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
