// Package protocol implements the RoboMaster EP plaintext SDK wire format:
// space-joined token messages terminated by a semicolon, travelling over the
// TCP control channel and the UDP push-telemetry channel.
//
// A request is built with NewCommand from atomic Go values; a reply or push
// datagram is parsed into a Response whose accessors convert individual
// tokens to typed values.
package protocol

import (
	"strconv"
	"strings"
)

// Terminator ends every message on the wire, in both directions.
const Terminator byte = ';'

// Arg is implemented by protocol enumerations. Token returns the exact
// token the value serializes to on the wire.
type Arg interface {
	Token() string
}

// Command is one control-channel request: an ordered list of tokens that is
// space-joined and terminated before transmission.
type Command struct {
	tokens []string
}

// NewCommand builds a Command from atomic values. Accepted types are string,
// bool, int, int64, float32, float64 and any Arg (protocol enum). Booleans
// serialize as "on"/"off", never "1"/"0". An unsupported value fails with
// *InvalidArgumentError before any I/O happens.
func NewCommand(args ...any) (Command, error) {
	tokens := make([]string, len(args))
	for i, arg := range args {
		tok, ok := argToken(arg)
		if !ok {
			return Command{}, &InvalidArgumentError{Index: i, Value: arg}
		}
		tokens[i] = tok
	}
	return Command{tokens: tokens}, nil
}

func argToken(arg any) (string, bool) {
	switch v := arg.(type) {
	case string:
		return v, true
	case bool:
		if v {
			return "on", true
		}
		return "off", true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case Arg:
		return v.Token(), true
	}
	return "", false
}

// String returns the full wire form, terminator included.
func (c Command) String() string {
	return strings.Join(c.tokens, " ") + string(Terminator)
}

// Bytes returns the wire form ready to be written to the control socket.
func (c Command) Bytes() []byte {
	return []byte(c.String())
}

// Len returns the number of tokens in the command.
func (c Command) Len() int {
	return len(c.tokens)
}
