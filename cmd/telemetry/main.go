// Telemetry - enable chassis pushes and print everything that arrives.
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
	"github.com/sbhs-robotics/go-robomaster/pkg/feed"
	"github.com/sbhs-robotics/go-robomaster/pkg/protocol"
	"github.com/sbhs-robotics/go-robomaster/pkg/robot"
)

func main() {
	robotIP := flag.String("robot", config.RobotIP(robot.DirectConnectIP), "Robot IP address")
	freq := flag.Int("freq", 5, "Push rate in Hz (1, 5, 10, 20, 30 or 50)")
	flag.Parse()

	log.Init(config.LogLevel())

	fmt.Println("🤖 RoboMaster telemetry monitor")
	fmt.Printf("   Robot: %s @ %dHz\n\n", *robotIP, *freq)

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
	fmt.Println("✅ Listening - Ctrl+C to stop")

	go printFeed(ctx, client.Position, func(p protocol.ChassisPosition) string {
		return fmt.Sprintf("position x=%.3f y=%.3f", p.X, p.Y)
	})
	go printFeed(ctx, client.Attitude, func(a protocol.ChassisAttitude) string {
		return fmt.Sprintf("attitude pitch=%.1f roll=%.1f yaw=%.1f", a.Pitch, a.Roll, a.Yaw)
	})
	printFeed(ctx, client.Status, func(s protocol.ChassisStatus) string {
		return fmt.Sprintf("status static=%v pick_up=%v slip=%v", s.Static, s.PickUp, s.Slip)
	})
}

// printFeed prints every value from one feed until ctx is done.
func printFeed[T any](ctx context.Context, f *feed.Feed[T], format func(T) string) {
	cur := f.Attach()
	defer cur.Close()
	for {
		v, err := cur.Next(ctx)
		if err != nil {
			return
		}
		fmt.Println(format(v))
	}
}
