// Package config provides configuration helpers for go-robomaster commands.
package config

import "os"

// Defaults for the dashboard and logging.
const (
	DefaultDashboardPort = "8080"
	DefaultLogLevel      = "info"
)

// RobotIP returns the robot IP from the ROBOT_IP env var.
// Falls back to the provided default if not set.
func RobotIP(defaultIP string) string {
	if ip := os.Getenv("ROBOT_IP"); ip != "" {
		return ip
	}
	return defaultIP
}

// DashboardPort returns the dashboard listen port from DASH_PORT or default.
func DashboardPort() string {
	if port := os.Getenv("DASH_PORT"); port != "" {
		return port
	}
	return DefaultDashboardPort
}

// RelayURL returns the telemetry relay websocket URL from RELAY_URL.
// Empty means the relay is disabled.
func RelayURL() string {
	return os.Getenv("RELAY_URL")
}

// LogLevel returns the log level from LOG_LEVEL or default.
func LogLevel() string {
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		return level
	}
	return DefaultLogLevel
}
