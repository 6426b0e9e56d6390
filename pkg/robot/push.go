package robot

import (
	"log/slog"
	"net"

	"github.com/sbhs-robotics/go-robomaster/internal/log"
	"github.com/sbhs-robotics/go-robomaster/pkg/feed"
	"github.com/sbhs-robotics/go-robomaster/pkg/protocol"
)

// pushReceiver owns the UDP telemetry socket. Each inbound datagram is
// decoded into a Response and republished onto the receiver's feed for the
// dispatcher. Malformed datagrams are logged and dropped — a bad datagram
// must never kill telemetry for the rest of the session.
type pushReceiver struct {
	conn   *net.UDPConn
	feed   *feed.Feed[protocol.Response]
	done   chan struct{}
	logger *slog.Logger
}

// openPushReceiver binds a UDP socket on all interfaces at port and starts
// the receive loop. Port 0 binds an ephemeral port.
func openPushReceiver(port int) (*pushReceiver, error) {
	conn, err := net.ListenUDP("udp", &net.UDPAddr{IP: net.IPv4zero, Port: port})
	if err != nil {
		return nil, &BindError{Port: port, Err: err}
	}
	p := &pushReceiver{
		conn:   conn,
		feed:   feed.New[protocol.Response](),
		done:   make(chan struct{}),
		logger: log.Component("push"),
	}
	go p.receive()
	return p, nil
}

func (p *pushReceiver) receive() {
	defer close(p.done)
	buf := make([]byte, 2048)
	for {
		n, _, err := p.conn.ReadFromUDP(buf)
		if err != nil {
			// Socket closed during teardown, or unrecoverable.
			return
		}
		resp, err := protocol.ParseMessage(buf[:n])
		if err != nil {
			p.logger.Warn("dropping malformed datagram", "err", err, "bytes", n)
			continue
		}
		p.feed.Feed(resp)
	}
}

// close releases the socket and waits for the receive loop to exit.
// In-flight datagrams may be lost; there is no drain guarantee.
func (p *pushReceiver) close() error {
	err := p.conn.Close()
	<-p.done
	return err
}
