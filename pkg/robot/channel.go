package robot

import (
	"bufio"
	"context"
	"net"
	"sync/atomic"
	"time"

	"github.com/sbhs-robotics/go-robomaster/pkg/protocol"
)

// commandChannel owns the TCP control connection. A capacity-1 semaphore
// serializes round trips: command N's write-then-read strictly precedes
// command N+1's write, so command bytes never interleave and responses pair
// with requests in FIFO order. The protocol has no request ids — this lock
// is what makes the pairing correct.
type commandChannel struct {
	conn    net.Conn
	r       *bufio.Reader
	sem     chan struct{}
	exiting atomic.Bool

	// broken is set on the first transport failure. A failed round trip
	// leaves the stream in an unknown state — the reply may still arrive
	// later and would pair with the NEXT command's read — so the channel
	// refuses further sends instead of mispairing silently.
	broken atomic.Bool
}

func newCommandChannel(conn net.Conn) *commandChannel {
	return &commandChannel{
		conn: conn,
		r:    bufio.NewReader(conn),
		sem:  make(chan struct{}, 1),
	}
}

// send writes one serialized command and reads the terminated response.
// Once the exiting flag is set it fails immediately with ErrClientExiting
// without touching the socket; once a transport failure has broken the
// channel it fails with ErrChannelBroken. A ctx deadline is applied to the
// socket; ctx cancellation is also observed while waiting for the
// semaphore.
func (c *commandChannel) send(ctx context.Context, cmd protocol.Command) (protocol.Response, error) {
	if c.exiting.Load() {
		return protocol.Response{}, ErrClientExiting
	}
	if c.broken.Load() {
		return protocol.Response{}, ErrChannelBroken
	}

	select {
	case c.sem <- struct{}{}:
	case <-ctx.Done():
		return protocol.Response{}, ctx.Err()
	}
	defer func() { <-c.sem }()

	// Re-check under the lock: teardown or a failed round trip may have
	// happened while waiting.
	if c.exiting.Load() {
		return protocol.Response{}, ErrClientExiting
	}
	if c.broken.Load() {
		return protocol.Response{}, ErrChannelBroken
	}

	if deadline, ok := ctx.Deadline(); ok {
		c.conn.SetDeadline(deadline)
	} else {
		c.conn.SetDeadline(time.Time{})
	}

	if _, err := c.conn.Write(cmd.Bytes()); err != nil {
		c.broken.Store(true)
		return protocol.Response{}, &TransportError{Op: "write command", Err: err}
	}

	raw, err := c.r.ReadBytes(protocol.Terminator)
	if err != nil {
		// The command went out but its reply never (fully) came back. If
		// it arrives later it would be read as the next command's reply,
		// so the channel must not be reused.
		c.broken.Store(true)
		return protocol.Response{}, &TransportError{Op: "read response", Err: err}
	}

	return protocol.ParseMessage(raw)
}

// markExiting flips the exiting gate. New sends fail fast from here on.
func (c *commandChannel) markExiting() {
	c.exiting.Store(true)
}

func (c *commandChannel) close() error {
	return c.conn.Close()
}
