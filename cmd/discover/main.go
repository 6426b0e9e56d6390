// Discover - wait for a robot's IP broadcast and print its address.
package main

import (
	"context"
	"flag"
	"fmt"
	stdlog "log"
	"time"

	"github.com/sbhs-robotics/go-robomaster/internal/config"
	"github.com/sbhs-robotics/go-robomaster/internal/log"
	"github.com/sbhs-robotics/go-robomaster/pkg/robot"
)

func main() {
	timeout := flag.Duration("timeout", 10*time.Second, "How long to wait for a broadcast")
	flag.Parse()

	log.Init(config.LogLevel())

	fmt.Printf("🔍 Waiting up to %s for a robot broadcast...\n", *timeout)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	ip, err := robot.FindRobotIP(ctx)
	if err != nil {
		stdlog.Fatalf("No robot found: %v", err)
	}
	fmt.Printf("✅ Robot at %s\n", ip)
}
