package robot

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions.
var (
	// ErrClientExiting is returned when a command is attempted after
	// teardown has begun. The socket is never touched in that case.
	ErrClientExiting = errors.New("robot: client is exiting")

	// ErrTimeout is returned when a convenience helper gives up waiting
	// for the robot to reach the requested state.
	ErrTimeout = errors.New("robot: timed out waiting for robot")

	// ErrChannelBroken is returned once an earlier send failed on the
	// wire. The reply to that command may still arrive and sit in the TCP
	// buffer, so reusing the connection would pair it with the wrong
	// command; the caller must reconnect.
	ErrChannelBroken = errors.New("robot: control channel broken, reconnect required")
)

// TransportError reports a failed read or write on the control or
// telemetry socket. Transport failures are never retried internally.
type TransportError struct {
	// Op names the operation that failed ("dial control", "write command",
	// "read response", ...).
	Op string

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("robot: %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// BindError reports a failure to bind a UDP listening socket.
type BindError struct {
	Port int
	Err  error
}

// Error implements the error interface.
func (e *BindError) Error() string {
	return fmt.Sprintf("robot: bind udp port %d: %v", e.Port, e.Err)
}

// Unwrap returns the underlying error.
func (e *BindError) Unwrap() error {
	return e.Err
}
