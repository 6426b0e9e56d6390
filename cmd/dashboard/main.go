// Dashboard - serve the web telemetry dashboard for a robot, optionally
// uplinking the same telemetry to a remote collector.
package main

import (
	"context"
	"flag"
	"fmt"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"

	"github.com/sbhs-robotics/go-robomaster/internal/config"
	"github.com/sbhs-robotics/go-robomaster/internal/log"
	"github.com/sbhs-robotics/go-robomaster/pkg/protocol"
	"github.com/sbhs-robotics/go-robomaster/pkg/relay"
	"github.com/sbhs-robotics/go-robomaster/pkg/robot"
	"github.com/sbhs-robotics/go-robomaster/pkg/web"
)

func main() {
	robotIP := flag.String("robot", config.RobotIP(robot.DirectConnectIP), "Robot IP address")
	port := flag.String("port", config.DashboardPort(), "Dashboard listen port")
	relayURL := flag.String("relay", config.RelayURL(), "Telemetry collector websocket URL (optional)")
	freq := flag.Int("freq", 10, "Push rate in Hz (1, 5, 10, 20, 30 or 50)")
	flag.Parse()

	log.Init(config.LogLevel())

	fmt.Println("🤖 RoboMaster dashboard")
	fmt.Printf("   Robot:     %s @ %dHz\n", *robotIP, *freq)
	fmt.Printf("   Dashboard: http://localhost:%s\n", *port)
	if *relayURL != "" {
		fmt.Printf("   Relay:     %s\n", *relayURL)
	}
	fmt.Println()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	client, err := robot.Connect(ctx, *robotIP)
	if err != nil {
		stdlog.Fatalf("Failed to connect to robot: %v", err)
	}
	defer client.Close()

	rate := protocol.Frequency(*freq)
	if err := client.SetPositionPushRate(ctx, rate); err != nil {
		stdlog.Fatalf("Failed to enable position push: %v", err)
	}
	if err := client.SetAttitudePushRate(ctx, rate); err != nil {
		stdlog.Fatalf("Failed to enable attitude push: %v", err)
	}
	if err := client.SetStatusPushRate(ctx, rate); err != nil {
		stdlog.Fatalf("Failed to enable status push: %v", err)
	}

	server := web.NewServer(*port, web.Feeds{
		Position: client.Position,
		Attitude: client.Attitude,
		Status:   client.Status,
		Line:     client.Line,
	})
	server.StartAsync()
	defer server.Shutdown()

	if *relayURL != "" {
		uplink := relay.New(*relayURL)
		uplink.Start()
		defer uplink.Close()

		go relay.Forward(ctx, uplink, "position", client.Position)
		go relay.Forward(ctx, uplink, "attitude", client.Attitude)
		go relay.Forward(ctx, uplink, "status", client.Status)
		go relay.Forward(ctx, uplink, "line", client.Line)
	}

	fmt.Println("✅ Running - Ctrl+C to stop")
	<-sigChan
	fmt.Println("\n👋 Shutting down...")
}
