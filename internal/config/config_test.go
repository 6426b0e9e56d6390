package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRobotIP(t *testing.T) {
	t.Setenv("ROBOT_IP", "")
	assert.Equal(t, "192.168.2.1", RobotIP("192.168.2.1"))

	t.Setenv("ROBOT_IP", "10.0.0.7")
	assert.Equal(t, "10.0.0.7", RobotIP("192.168.2.1"))
}

func TestDashboardPort(t *testing.T) {
	t.Setenv("DASH_PORT", "")
	assert.Equal(t, DefaultDashboardPort, DashboardPort())

	t.Setenv("DASH_PORT", "9090")
	assert.Equal(t, "9090", DashboardPort())
}

func TestRelayURL(t *testing.T) {
	t.Setenv("RELAY_URL", "")
	assert.Empty(t, RelayURL())

	t.Setenv("RELAY_URL", "ws://collector:8443/uplink")
	assert.Equal(t, "ws://collector:8443/uplink", RelayURL())
}

func TestLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	assert.Equal(t, DefaultLogLevel, LogLevel())

	t.Setenv("LOG_LEVEL", "debug")
	assert.Equal(t, "debug", LogLevel())
}
