package api

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel kinds matched with errors.Is.
var (
	ErrNetwork  = errors.New("network error")
	ErrProtocol = errors.New("protocol error")
	ErrFormat   = errors.New("format error")
	ErrTimeout  = errors.New("timeout")
)

// NetworkError means no HTTP response reached the client.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: cannot reach server: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// Is matches ErrNetwork.
func (e *NetworkError) Is(target error) bool { return target == ErrNetwork }

// ProtocolError means the server answered with a non-success status code.
type ProtocolError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *ProtocolError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: HTTP status %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("%s: HTTP status %d: %s", e.Op, e.StatusCode, e.Body)
}

// Is matches ErrProtocol.
func (e *ProtocolError) Is(target error) bool { return target == ErrProtocol }

// FormatError means the response body could not be parsed into the expected shape.
type FormatError struct {
	Op  string
	Err error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: unexpected response body: %v", e.Op, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// Is matches ErrFormat.
func (e *FormatError) Is(target error) bool { return target == ErrFormat }

// TimeoutError means the health probe did not answer within its bound.
type TimeoutError struct {
	Op      string
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s: no answer within %s", e.Op, e.Timeout)
}

// Is matches ErrTimeout.
func (e *TimeoutError) Is(target error) bool { return target == ErrTimeout }

// UserMessage turns a client error into a short message for display.
func UserMessage(err error) string {
	var (
		netErr   *NetworkError
		protoErr *ProtocolError
		fmtErr   *FormatError
		toErr    *TimeoutError
	)
	switch {
	case err == nil:
		return ""
	case errors.As(err, &protoErr):
		return fmt.Sprintf("Server returned HTTP %d", protoErr.StatusCode)
	case errors.As(err, &fmtErr):
		return "Server sent a response that could not be read"
	case errors.As(err, &toErr):
		return fmt.Sprintf("Server did not answer within %s", toErr.Timeout)
	case errors.As(err, &netErr):
		return "Cannot connect to the leaderboard server"
	default:
		return err.Error()
	}
}
