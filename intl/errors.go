package intl

import (
	"errors"
	"fmt"
)

// Sentinel errors for option parsing.
var (
	// ErrUnknownStyle indicates a style name that ParseStyle does not know.
	ErrUnknownStyle = errors.New("intl: unknown style")

	// ErrUnknownCalendar indicates a calendar name that ParseCalendar does not know.
	ErrUnknownCalendar = errors.New("intl: unknown calendar")
)

// ErrorCode is the status of the last formatter operation.
type ErrorCode int

const (
	ZeroError ErrorCode = iota
	IllegalArgumentError
	ParseError
	UnsupportedError
)

func (c ErrorCode) String() string {
	switch c {
	case ZeroError:
		return "U_ZERO_ERROR"
	case IllegalArgumentError:
		return "U_ILLEGAL_ARGUMENT_ERROR"
	case ParseError:
		return "U_PARSE_ERROR"
	case UnsupportedError:
		return "U_UNSUPPORTED_ERROR"
	default:
		return fmt.Sprintf("U_ERROR(%d)", int(c))
	}
}

// IsFailure reports whether code denotes a failed operation.
func IsFailure(code ErrorCode) bool {
	return code > ZeroError
}

// Error is returned by formatter construction and operations.
type Error struct {
	Op      string // create|parse|pattern|format
	Code    ErrorCode
	Message string
	Err     error
}

func (e *Error) Error() string {
	msg := "intl: " + e.Op + ": " + e.Message
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}
