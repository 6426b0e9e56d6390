package robot

import (
	"context"

	"github.com/sbhs-robotics/go-robomaster/internal/log"
	"github.com/sbhs-robotics/go-robomaster/pkg/feed"
	"github.com/sbhs-robotics/go-robomaster/pkg/protocol"
)

// dispatch consumes the push receiver's feed and republishes each message
// onto the typed telemetry feed selected by its topic and subject tokens.
// Token 1 is the wire format's push-enable marker and carries no routing
// information. Unrecognized or unparsable messages are logged and dropped;
// the loop only exits when ctx is cancelled at client teardown.
func (c *Client) dispatch(ctx context.Context, cur *feed.Cursor[protocol.Response]) {
	defer cur.Close()
	logger := log.Component("dispatch")

	for {
		resp, err := cur.Next(ctx)
		if err != nil {
			return
		}
		if resp.Len() < 3 {
			logger.Warn("dropping short push message", "message", resp.String())
			continue
		}

		topic, _ := resp.Str(0)
		subject, _ := resp.Str(2)
		payload := resp.Slice(3)

		switch topic {
		case "chassis":
			switch subject {
			case "position":
				pos, err := protocol.ParseChassisPosition(payload)
				if err != nil {
					logger.Warn("bad chassis position push", "err", err)
					continue
				}
				c.Position.Feed(pos)
			case "attitude":
				att, err := protocol.ParseChassisAttitude(payload)
				if err != nil {
					logger.Warn("bad chassis attitude push", "err", err)
					continue
				}
				c.Attitude.Feed(att)
			case "status":
				status, err := protocol.ParseChassisStatus(payload)
				if err != nil {
					logger.Warn("bad chassis status push", "err", err)
					continue
				}
				c.Status.Feed(status)
			default:
				logger.Warn("unknown chassis subject", "subject", subject)
			}
		case "AI":
			switch subject {
			case "line":
				line, err := protocol.ParseLine(payload)
				if err != nil {
					logger.Warn("bad line push", "err", err)
					continue
				}
				c.Line.Feed(line)
			default:
				logger.Warn("unknown AI subject", "subject", subject)
			}
		default:
			logger.Warn("unknown push topic", "topic", topic)
		}
	}
}
