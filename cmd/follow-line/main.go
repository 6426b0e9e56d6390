// Follow-line - steer the robot along a coloured line using the
// line-recognition feed. Demonstrates consuming telemetry through a
// DroppingView so a slow control loop always acts on fresh data.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"

	"github.com/sbhs-robotics/go-robomaster/internal/config"
	"github.com/sbhs-robotics/go-robomaster/internal/log"
	"github.com/sbhs-robotics/go-robomaster/pkg/feed"
	"github.com/sbhs-robotics/go-robomaster/pkg/protocol"
	"github.com/sbhs-robotics/go-robomaster/pkg/robot"
)

const (
	forwardSpeed = 0.2 // m/s
	steerGain    = 90  // degrees/s per unit of horizontal offset
)

func main() {
	robotIP := flag.String("robot", config.RobotIP(robot.DirectConnectIP), "Robot IP address")
	colour := flag.String("colour", "red", "Line colour: red, blue or green")
	flag.Parse()

	log.Init(config.LogLevel())

	fmt.Println("🤖 RoboMaster line follower")
	fmt.Printf("   Robot:  %s\n", *robotIP)
	fmt.Printf("   Colour: %s\n", *colour)
	fmt.Println()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\n👋 Stopping...")
		cancel()
	}()

	client, err := robot.Connect(ctx, *robotIP)
	if err != nil {
		stdlog.Fatalf("Failed to connect to robot: %v", err)
	}
	defer client.Close()

	if err := client.SetLineRecognitionColour(ctx, protocol.LineColour(*colour)); err != nil {
		stdlog.Fatalf("Failed to set line colour: %v", err)
	}
	if err := client.SetLineRecognitionEnabled(ctx, true); err != nil {
		stdlog.Fatalf("Failed to enable line recognition: %v", err)
	}
	fmt.Println("✅ Following line - Ctrl+C to stop")

	view := feed.NewDroppingFeed(client.Line)
	defer view.Close()

	for {
		line, err := view.Latest(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				break
			}
			stdlog.Fatalf("Line feed failed: %v", err)
		}

		if line.Type == protocol.LineNone || len(line.Points) == 0 {
			if err := client.SetSpeed(ctx, 0, 0, 0); err != nil {
				stdlog.Fatalf("Stop failed: %v", err)
			}
			continue
		}

		// Steer towards the nearest waypoint. X is normalized across the
		// image, 0.5 being straight ahead.
		offset := line.Points[0].X - 0.5
		if err := client.SetSpeed(ctx, forwardSpeed, 0, offset*steerGain); err != nil {
			stdlog.Fatalf("Steer failed: %v", err)
		}
	}
}
