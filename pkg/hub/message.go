// Package hub provides a thread-safe websocket broadcast hub for telemetry
// streaming, using the channel-based fan-out pattern: a feed pump publishes
// once and every connected dashboard client gets its own queued copy.
package hub

import (
	"encoding/json"
	"time"
)

// Envelope is the JSON frame sent to websocket clients: a telemetry topic,
// a millisecond timestamp and the topic-specific payload.
type Envelope struct {
	Topic string          `json:"topic"`
	TS    int64           `json:"ts"`
	Data  json.RawMessage `json:"data"`
}

// NewEnvelope encodes a telemetry value into a broadcastable frame.
func NewEnvelope(topic string, v any) (Envelope, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return Envelope{}, err
	}
	return Envelope{Topic: topic, TS: time.Now().UnixMilli(), Data: data}, nil
}

// Bytes returns the JSON-encoded frame.
func (e Envelope) Bytes() ([]byte, error) {
	return json.Marshal(e)
}
