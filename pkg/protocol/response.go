package protocol

import (
	"strconv"
	"strings"
)

// Response is one parsed reply or push message: an ordered, immutable
// sequence of string tokens. It is constructed fresh per message and
// discarded once the caller has extracted its typed fields.
type Response struct {
	tokens []string
}

// NewResponse wraps pre-split tokens in a Response.
func NewResponse(tokens []string) Response {
	return Response{tokens: tokens}
}

// ParseMessage decodes one terminated wire message into a Response. The
// message must end with the ';' terminator; anything else is malformed.
func ParseMessage(data []byte) (Response, error) {
	if len(data) == 0 || data[len(data)-1] != Terminator {
		return Response{}, ErrBadTerminator
	}
	body := strings.TrimSpace(string(data[:len(data)-1]))
	return Response{tokens: strings.Split(body, " ")}, nil
}

// Len returns the number of tokens.
func (r Response) Len() int {
	return len(r.tokens)
}

// Tokens returns a copy of the raw tokens.
func (r Response) Tokens() []string {
	out := make([]string, len(r.tokens))
	copy(out, r.tokens)
	return out
}

// Slice returns a new Response holding the tokens from index from onward.
// Used by the dispatcher to re-wrap a push message's payload.
func (r Response) Slice(from int) Response {
	if from >= len(r.tokens) {
		return Response{}
	}
	return Response{tokens: r.tokens[from:]}
}

// String returns the tokens space-joined, without the terminator.
func (r Response) String() string {
	return strings.Join(r.tokens, " ")
}

// Str returns token i as a string.
func (r Response) Str(i int) (string, error) {
	if i < 0 || i >= len(r.tokens) {
		return "", &ParseError{Index: i, Want: "string"}
	}
	return r.tokens[i], nil
}

// Int returns token i converted to an int.
func (r Response) Int(i int) (int, error) {
	if i < 0 || i >= len(r.tokens) {
		return 0, &ParseError{Index: i, Want: "int"}
	}
	v, err := strconv.Atoi(r.tokens[i])
	if err != nil {
		return 0, &ParseError{Index: i, Token: r.tokens[i], Want: "int"}
	}
	return v, nil
}

// Float returns token i converted to a float64.
func (r Response) Float(i int) (float64, error) {
	if i < 0 || i >= len(r.tokens) {
		return 0, &ParseError{Index: i, Want: "float"}
	}
	v, err := strconv.ParseFloat(r.tokens[i], 64)
	if err != nil {
		return 0, &ParseError{Index: i, Token: r.tokens[i], Want: "float"}
	}
	return v, nil
}

// Bool returns token i converted to a bool. The robot reports booleans as
// "on"/"off" in replies and as "1"/"0" in push telemetry; both are accepted.
func (r Response) Bool(i int) (bool, error) {
	if i < 0 || i >= len(r.tokens) {
		return false, &ParseError{Index: i, Want: "bool"}
	}
	switch r.tokens[i] {
	case "on", "1":
		return true, nil
	case "off", "0":
		return false, nil
	}
	return false, &ParseError{Index: i, Token: r.tokens[i], Want: "bool"}
}
