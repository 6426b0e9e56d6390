package protocol

import (
	"errors"
	"fmt"
)

// ErrBadTerminator is returned when a wire message does not end with ';'.
var ErrBadTerminator = errors.New("protocol: message missing ';' terminator")

// ParseError reports a token that failed its requested type conversion, or
// an index with no token behind it.
type ParseError struct {
	// Index is the token position that was requested.
	Index int

	// Token is the offending token. Empty when Index was out of range.
	Token string

	// Want names the requested type ("int", "float", "bool", an enum name).
	Want string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("protocol: no %s token at index %d", e.Want, e.Index)
	}
	return fmt.Sprintf("protocol: token %d %q is not a valid %s", e.Index, e.Token, e.Want)
}

// InvalidArgumentError reports a command argument whose type has no wire
// representation. It is raised before any I/O is attempted.
type InvalidArgumentError struct {
	// Index is the argument position passed to NewCommand.
	Index int

	// Value is the offending argument.
	Value any
}

// Error implements the error interface.
func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("protocol: command argument %d has unsupported type %T", e.Index, e.Value)
}
