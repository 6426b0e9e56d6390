package robot

import (
	"context"
	"net"

	"github.com/sbhs-robotics/go-robomaster/pkg/protocol"
)

// FindRobotIP waits for the robot's discovery broadcast and returns its IP
// address. A powered-on robot broadcasts "robot ip <ip>;" on UDP port
// 40926 roughly once a second; give ctx a deadline to bound the wait.
func FindRobotIP(ctx context.Context) (string, error) {
	conn, err := net.ListenUDP("udp", &net.UDPAddr{IP: net.IPv4zero, Port: discoveryPort})
	if err != nil {
		return "", &BindError{Port: discoveryPort, Err: err}
	}
	defer conn.Close()
	return awaitBroadcast(ctx, conn)
}

// awaitBroadcast reads discovery datagrams from conn until a well-formed
// announcement arrives. Anything else on the port is ignored.
func awaitBroadcast(ctx context.Context, conn *net.UDPConn) (string, error) {
	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()

	buf := make([]byte, 256)
	for {
		n, _, err := conn.ReadFromUDP(buf)
		if err != nil {
			if ctx.Err() != nil {
				return "", ctx.Err()
			}
			return "", &TransportError{Op: "read discovery broadcast", Err: err}
		}
		resp, err := protocol.ParseMessage(buf[:n])
		if err != nil || resp.Len() < 3 {
			continue
		}
		if tok, _ := resp.Str(0); tok != "robot" {
			continue
		}
		if tok, _ := resp.Str(1); tok != "ip" {
			continue
		}
		ip, _ := resp.Str(2)
		return ip, nil
	}
}
