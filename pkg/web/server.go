// Package web provides a real-time telemetry dashboard for a RoboMaster
// client: REST endpoints for the latest telemetry snapshot plus a websocket
// stream of every push as it arrives.
package web

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"

	"github.com/sbhs-robotics/go-robomaster/internal/log"
	"github.com/sbhs-robotics/go-robomaster/pkg/feed"
	"github.com/sbhs-robotics/go-robomaster/pkg/hub"
	"github.com/sbhs-robotics/go-robomaster/pkg/protocol"
)

// Feeds collects the typed telemetry feeds the dashboard streams from.
// Build it from a robot.Client's exported feeds.
type Feeds struct {
	Position *feed.Feed[protocol.ChassisPosition]
	Attitude *feed.Feed[protocol.ChassisAttitude]
	Status   *feed.Feed[protocol.ChassisStatus]
	Line     *feed.Feed[protocol.Line]
}

// Snapshot is the most recent value seen on each telemetry topic. Topics
// the robot has not pushed yet are omitted.
type Snapshot struct {
	Position  *protocol.ChassisPosition `json:"position,omitempty"`
	Attitude  *protocol.ChassisAttitude `json:"attitude,omitempty"`
	Status    *protocol.ChassisStatus   `json:"status,omitempty"`
	Line      *protocol.Line            `json:"line,omitempty"`
	UpdatedAt int64                     `json:"updated_at,omitempty"`
}

// Server is the telemetry dashboard server.
type Server struct {
	app    *fiber.App
	port   string
	feeds  Feeds
	hub    *hub.Hub
	logger *slog.Logger

	mu   sync.RWMutex
	snap Snapshot

	cancel context.CancelFunc
}

// NewServer creates a dashboard server for the given telemetry feeds.
func NewServer(port string, feeds Feeds) *Server {
	s := &Server{
		port:   port,
		feeds:  feeds,
		hub:    hub.New("telemetry"),
		logger: log.Component("web"),
	}

	app := fiber.New(fiber.Config{
		AppName:               "RoboMaster Dashboard",
		DisableStartupMessage: true,
	})

	// CORS for local development
	app.Use(cors.New())

	api := app.Group("/api")
	api.Get("/status", s.handleStatus)
	api.Get("/feeds", s.handleFeeds)

	// WebSocket upgrade middleware
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/telemetry", websocket.New(s.handleTelemetryWS))

	s.app = app
	return s
}

// Start runs the hub, attaches the feed pumps and serves until Shutdown.
func (s *Server) Start() error {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	go s.hub.Run(ctx)
	go pump(ctx, s, s.feeds.Position, "position", func(snap *Snapshot, v protocol.ChassisPosition) { snap.Position = &v })
	go pump(ctx, s, s.feeds.Attitude, "attitude", func(snap *Snapshot, v protocol.ChassisAttitude) { snap.Attitude = &v })
	go pump(ctx, s, s.feeds.Status, "status", func(snap *Snapshot, v protocol.ChassisStatus) { snap.Status = &v })
	go pump(ctx, s, s.feeds.Line, "line", func(snap *Snapshot, v protocol.Line) { snap.Line = &v })

	s.logger.Info("dashboard listening", "port", s.port)
	return s.app.Listen(":" + s.port)
}

// StartAsync starts the server in a goroutine.
func (s *Server) StartAsync() {
	go func() {
		if err := s.Start(); err != nil {
			s.logger.Error("dashboard server failed", "err", err)
		}
	}()
}

// Shutdown stops the pumps, the hub and the fiber app.
func (s *Server) Shutdown() error {
	if s.cancel != nil {
		s.cancel()
	}
	return s.app.Shutdown()
}

// pump forwards one telemetry feed into the snapshot and the websocket hub
// until ctx is done.
func pump[T any](ctx context.Context, s *Server, f *feed.Feed[T], topic string, set func(*Snapshot, T)) {
	cur := f.Attach()
	defer cur.Close()
	for {
		v, err := cur.Next(ctx)
		if err != nil {
			return
		}
		s.mu.Lock()
		set(&s.snap, v)
		s.snap.UpdatedAt = time.Now().UnixMilli()
		s.mu.Unlock()

		if err := s.hub.BroadcastEnvelope(topic, v); err != nil {
			s.logger.Warn("broadcast failed", "topic", topic, "err", err)
		}
	}
}
