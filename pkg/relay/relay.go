// Package relay uplinks robot telemetry to a remote websocket collector,
// reconnecting with backoff when the link drops. Frames that arrive while
// the link is down or the send queue is full are dropped: the collector
// wants fresh telemetry, not a replay.
package relay

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/sbhs-robotics/go-robomaster/internal/log"
	"github.com/sbhs-robotics/go-robomaster/pkg/feed"
)

const (
	keepaliveInterval  = 20 * time.Second
	writeTimeout       = 10 * time.Second
	reconnectBaseDelay = 1 * time.Second
	reconnectMaxDelay  = 30 * time.Second
	sendQueueSize      = 256
)

// Frame is one uplinked telemetry sample.
type Frame struct {
	Topic   string          `json:"topic"`
	TS      int64           `json:"ts"`
	Session string          `json:"session"`
	Data    json.RawMessage `json:"data"`
}

// Relay maintains the uplink connection and the outbound frame queue.
type Relay struct {
	url       string
	sessionID string
	logger    *slog.Logger

	send    chan []byte
	dropped atomic.Uint64

	cancel context.CancelFunc
	done   chan struct{}
}

// New creates a relay targeting the given websocket URL. Each relay gets a
// fresh session id, sent as the X-Session-ID header and stamped on every
// frame.
func New(url string) *Relay {
	sessionID := uuid.NewString()
	return &Relay{
		url:       url,
		sessionID: sessionID,
		logger:    log.Component("relay").With("session", sessionID),
		send:      make(chan []byte, sendQueueSize),
		done:      make(chan struct{}),
	}
}

// Start runs the uplink loop in the background until Close is called.
func (r *Relay) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	go r.run(ctx)
}

// Publish queues one telemetry value for uplink. It never blocks; if the
// queue is full the frame is dropped and counted.
func (r *Relay) Publish(topic string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	frame, err := json.Marshal(Frame{
		Topic:   topic,
		TS:      time.Now().UnixMilli(),
		Session: r.sessionID,
		Data:    data,
	})
	if err != nil {
		return err
	}
	select {
	case r.send <- frame:
	default:
		if n := r.dropped.Add(1); n%100 == 1 {
			r.logger.Warn("uplink queue full, dropping frames", "dropped", n)
		}
	}
	return nil
}

// Dropped returns how many frames have been discarded so far.
func (r *Relay) Dropped() uint64 {
	return r.dropped.Load()
}

// Close stops the uplink loop and waits for it to exit. A relay that was
// never started closes immediately.
func (r *Relay) Close() {
	if r.cancel == nil {
		return
	}
	r.cancel()
	<-r.done
}

// run dials, pumps frames, and redials with exponential backoff on failure.
func (r *Relay) run(ctx context.Context) {
	defer close(r.done)

	delay := reconnectBaseDelay
	for {
		conn, err := r.dial(ctx)
		if err != nil {
			r.logger.Warn("uplink dial failed", "err", err, "retry_in", delay)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return
			}
			delay = min(delay*2, reconnectMaxDelay)
			continue
		}

		r.logger.Info("uplink connected", "url", r.url)
		delay = reconnectBaseDelay

		if err := r.pump(ctx, conn); err != nil {
			r.logger.Warn("uplink lost", "err", err)
		}
		conn.Close()

		if ctx.Err() != nil {
			return
		}
	}
}

func (r *Relay) dial(ctx context.Context) (*websocket.Conn, error) {
	headers := http.Header{}
	headers.Set("X-Session-ID", r.sessionID)
	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, r.url, headers)
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	return conn, err
}

// pump writes queued frames and keepalive pings until the connection or
// ctx fails. A reader goroutine drains the connection so pongs and close
// frames are processed.
func (r *Relay) pump(ctx context.Context, conn *websocket.Conn) error {
	readErr := make(chan error, 1)
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				readErr <- err
				return
			}
		}
	}()

	ticker := time.NewTicker(keepaliveInterval)
	defer ticker.Stop()

	for {
		select {
		case frame := <-r.send:
			conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				return err
			}

		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return err
			}

		case err := <-readErr:
			return err

		case <-ctx.Done():
			conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return ctx.Err()
		}
	}
}

// Forward pumps every value from a feed into the relay until ctx is done.
// Run it in a goroutine, one per telemetry topic.
func Forward[T any](ctx context.Context, r *Relay, topic string, f *feed.Feed[T]) {
	cur := f.Attach()
	defer cur.Close()
	for {
		v, err := cur.Next(ctx)
		if err != nil {
			return
		}
		if err := r.Publish(topic, v); err != nil {
			r.logger.Warn("publish failed", "topic", topic, "err", err)
		}
	}
}
