package kata

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is the kind of every precondition violation.
	ErrInvalidInput = errors.New("kata: invalid input")

	// ErrNotImplemented marks a path left unimplemented on purpose.
	ErrNotImplemented = errors.New("kata: not implemented")
)

// NotImplemented returns an error wrapping ErrNotImplemented for the named feature.
func NotImplemented(feature string) error {
	return fmt.Errorf("%w: %s", ErrNotImplemented, feature)
}

// Invalid returns an error of kind ErrInvalidInput carrying msg.
// Packages use it to declare their own input sentinels.
func Invalid(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, msg)
}
