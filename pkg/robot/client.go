// Package robot provides a client for the RoboMaster EP plaintext SDK:
// serialized commands over the TCP control channel and typed telemetry
// feeds demultiplexed from the UDP push channel.
package robot

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"sync"
	"time"

	"github.com/sbhs-robotics/go-robomaster/internal/log"
	"github.com/sbhs-robotics/go-robomaster/pkg/feed"
	"github.com/sbhs-robotics/go-robomaster/pkg/protocol"
)

// DirectConnectIP is the robot's address when the host is joined directly
// to the robot's own WiFi network rather than a shared router.
const DirectConnectIP = "192.168.2.1"

// Well-known ports on the robot's host. Video, audio and event channels
// also exist but carry no plaintext-SDK traffic.
const (
	controlPort   = 40923
	pushPort      = 40924
	discoveryPort = 40926
)

const quitTimeout = 2 * time.Second

// Client is a connected RoboMaster robot. The exported feeds carry push
// telemetry; each must be enabled first with the matching push-rate or
// recognition setter. Attach a cursor (or wrap in a feed.DroppingView) to
// consume them.
type Client struct {
	// Position streams chassis position pushes.
	// Enable with SetPositionPushRate.
	Position *feed.Feed[protocol.ChassisPosition]

	// Attitude streams chassis attitude pushes.
	// Enable with SetAttitudePushRate.
	Attitude *feed.Feed[protocol.ChassisAttitude]

	// Status streams chassis status flag pushes.
	// Enable with SetStatusPushRate.
	Status *feed.Feed[protocol.ChassisStatus]

	// Line streams line-recognition results. Enable with
	// SetLineRecognitionEnabled after SetLineRecognitionColour.
	Line *feed.Feed[protocol.Line]

	channel *commandChannel
	push    *pushReceiver
	cancel  context.CancelFunc

	closeOnce sync.Once
	closeErr  error
}

// Connect dials the robot's control port, binds the telemetry port, starts
// the dispatch loop and switches the robot into SDK mode.
func Connect(ctx context.Context, ip string) (*Client, error) {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", net.JoinHostPort(ip, strconv.Itoa(controlPort)))
	if err != nil {
		return nil, &TransportError{Op: "dial control", Err: err}
	}

	push, err := openPushReceiver(pushPort)
	if err != nil {
		conn.Close()
		return nil, err
	}

	c := newClient(conn, push)
	if _, err := c.Do(ctx, "command"); err != nil {
		c.Close()
		return nil, fmt.Errorf("enter sdk mode: %w", err)
	}
	return c, nil
}

// newClient assembles a client over an established control connection and
// push receiver, and starts the dispatcher.
func newClient(conn net.Conn, push *pushReceiver) *Client {
	ctx, cancel := context.WithCancel(context.Background())
	c := &Client{
		Position: feed.New[protocol.ChassisPosition](),
		Attitude: feed.New[protocol.ChassisAttitude](),
		Status:   feed.New[protocol.ChassisStatus](),
		Line:     feed.New[protocol.Line](),
		channel:  newCommandChannel(conn),
		push:     push,
		cancel:   cancel,
	}
	go c.dispatch(ctx, push.feed.Attach())
	return c
}

// Do sends one low-level command and returns its response. Every typed
// method on Client goes through here. Arguments are serialized per
// protocol.NewCommand; the exclusive channel lock guarantees the response
// belongs to this command.
func (c *Client) Do(ctx context.Context, args ...any) (protocol.Response, error) {
	cmd, err := protocol.NewCommand(args...)
	if err != nil {
		return protocol.Response{}, err
	}
	return c.channel.send(ctx, cmd)
}

// GetVersion returns the robot's SDK version string.
func (c *Client) GetVersion(ctx context.Context) (string, error) {
	resp, err := c.Do(ctx, "version")
	if err != nil {
		return "", err
	}
	return resp.Str(0)
}

// Close tears the client down: a best-effort quit command, then the
// exiting gate so no further command can start, then the dispatcher, the
// push receiver and finally the control socket. Close is idempotent.
func (c *Client) Close() error {
	c.closeOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), quitTimeout)
		defer cancel()
		if _, err := c.Do(ctx, "quit"); err != nil {
			log.Warn("quit command failed during teardown", "err", err)
		}

		c.channel.markExiting()
		c.cancel()

		if err := c.push.close(); err != nil && c.closeErr == nil {
			c.closeErr = err
		}
		if err := c.channel.close(); err != nil && c.closeErr == nil {
			c.closeErr = err
		}
	})
	return c.closeErr
}
