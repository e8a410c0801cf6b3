package sdk

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidArgument is returned when a required request config is missing
	// or cannot be used to build the endpoint path
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrSerialization is returned when a request config cannot be encoded.
	// The transport is not contacted.
	ErrSerialization = errors.New("serialization failed")
	// ErrTransport wraps network failures, timeouts and non-2xx statuses
	ErrTransport = errors.New("transport failed")
	// ErrDeserialization is returned when a response body is not well-formed
	// or does not match the expected result
	ErrDeserialization = errors.New("deserialization failed")
	// ErrUnknownOperation is returned for an operation missing from the endpoint table
	ErrUnknownOperation = errors.New("unknown operation")
	// ErrConfigRequired is returned by NewConnection when no config is given
	ErrConfigRequired = errors.New("config is required")
)

// ErrorMode selects how transport and deserialization failures reach the caller
type ErrorMode int

const (
	// ErrorModeStrict returns transport and deserialization failures as errors.
	// An empty response body is still a nil result with a nil error.
	ErrorModeStrict ErrorMode = iota
	// ErrorModeLenient reports failures by returning no result and a nil
	// error. The failure is logged and kept in LastError.
	ErrorModeLenient
)

func (m ErrorMode) String() string {
	switch m {
	case ErrorModeStrict:
		return "strict"
	case ErrorModeLenient:
		return "lenient"
	default:
		return fmt.Sprintf("ErrorMode(%d)", int(m))
	}
}

// ParseErrorMode parses "strict" or "lenient". The empty string is strict.
func ParseErrorMode(s string) (ErrorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "strict":
		return ErrorModeStrict, nil
	case "lenient":
		return ErrorModeLenient, nil
	default:
		return ErrorModeStrict, fmt.Errorf("unknown error mode %q", s)
	}
}

// alwaysReturned reports whether err is a programmer error that is never
// collapsed into an empty result
func alwaysReturned(err error) bool {
	return errors.Is(err, ErrInvalidArgument) ||
		errors.Is(err, ErrSerialization) ||
		errors.Is(err, ErrUnknownOperation)
}
