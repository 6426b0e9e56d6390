// Drive - move the robot in a square and report its position
package main

import (
	"context"
	"flag"
	"fmt"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sbhs-robotics/go-robomaster/internal/config"
	"github.com/sbhs-robotics/go-robomaster/internal/log"
	"github.com/sbhs-robotics/go-robomaster/pkg/protocol"
	"github.com/sbhs-robotics/go-robomaster/pkg/robot"
)

func main() {
	robotIP := flag.String("robot", config.RobotIP(robot.DirectConnectIP), "Robot IP address")
	side := flag.Float64("side", 0.5, "Square side length in metres")
	flag.Parse()

	log.Init(config.LogLevel())

	fmt.Println("🤖 RoboMaster square drive")
	fmt.Printf("   Robot: %s\n", *robotIP)
	fmt.Printf("   Side:  %.2fm\n", *side)
	fmt.Println()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\n👋 Shutting down...")
		cancel()
	}()

	client, err := robot.Connect(ctx, *robotIP)
	if err != nil {
		stdlog.Fatalf("Failed to connect to robot: %v", err)
	}
	defer client.Close()

	version, err := client.GetVersion(ctx)
	if err != nil {
		stdlog.Fatalf("Failed to query version: %v", err)
	}
	fmt.Printf("✅ Connected (SDK %s)\n", version)

	if err := client.SetStatusPushRate(ctx, protocol.Frequency10Hz); err != nil {
		stdlog.Fatalf("Failed to enable status push: %v", err)
	}

	for i := 0; i < 4; i++ {
		fmt.Printf("➡️  Side %d\n", i+1)
		if err := client.Move(ctx, *side, 0, 0); err != nil {
			stdlog.Fatalf("Move failed: %v", err)
		}
		time.Sleep(3 * time.Second)

		if err := client.RotateUntilStatic(ctx, 90, 10*time.Second); err != nil {
			stdlog.Fatalf("Rotate failed: %v", err)
		}
	}

	pos, err := client.GetPosition(ctx)
	if err != nil {
		stdlog.Fatalf("Failed to query position: %v", err)
	}
	fmt.Printf("🏁 Finished at x=%.2fm y=%.2fm\n", pos.X, pos.Y)
}
