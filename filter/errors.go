package filter

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is matched by every error Filter returns.
var ErrInvalidInput = errors.New("filter: invalid input")

// InvalidInputError reports a value the filter could not transform. Err is
// the underlying locale-service or fingerprint failure.
type InvalidInputError struct {
	Value string
	Err   error
}

func (e *InvalidInputError) Error() string {
	if e.Err == nil {
		return ErrInvalidInput.Error()
	}
	return fmt.Sprintf("%s: %v", ErrInvalidInput, e.Err)
}

func (e *InvalidInputError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrInvalidInput) true.
func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

func invalidInput(value string, err error) error {
	return &InvalidInputError{Value: value, Err: err}
}
