package web

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"github.com/sbhs-robotics/go-robomaster/pkg/hub"
)

// FeedInfo describes one telemetry topic for /api/feeds.
type FeedInfo struct {
	Topic     string `json:"topic"`
	Consumers int    `json:"consumers"`
}

// handleStatus returns the latest telemetry snapshot.
func (s *Server) handleStatus(c *fiber.Ctx) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return c.JSON(s.snap)
}

// handleFeeds lists the telemetry topics and who is consuming them.
func (s *Server) handleFeeds(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"clients": s.hub.ClientCount(),
		"feeds": []FeedInfo{
			{Topic: "position", Consumers: s.feeds.Position.ConsumerCount()},
			{Topic: "attitude", Consumers: s.feeds.Attitude.ConsumerCount()},
			{Topic: "status", Consumers: s.feeds.Status.ConsumerCount()},
			{Topic: "line", Consumers: s.feeds.Line.ConsumerCount()},
		},
	})
}

// handleTelemetryWS streams telemetry envelopes to one websocket client.
func (s *Server) handleTelemetryWS(c *websocket.Conn) {
	client := hub.NewClient(s.hub, c)
	client.Run()
}
