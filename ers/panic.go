package ers

import (
	"fmt"
)

// ParsePanic converts a panic to an error, if it is not, and attaching
// the ErrRecoveredPanic error to that error. If no panic is
// detected, ParsePanic returns nil.
func ParsePanic(r any) error {
	if r == nil {
		return nil
	}

	switch err := r.(type) {
	case error:
		return Classify(err, ErrRecoveredPanic)
	case string:
		return Classify(New(err), ErrRecoveredPanic)
	default:
		return Classify(fmt.Errorf("[%T]: %v", err, err), ErrRecoveredPanic)
	}
}

// WithRecoverCall runs a function and, if the function panics,
// converts the panic into an error.
func WithRecoverCall(fn func() error) (err error) {
	defer func() {
		if perr := ParsePanic(recover()); perr != nil {
			err = Join(err, perr)
		}
	}()
	return fn()
}

// NewInvariantViolation builds the value used for panics when a
// position contract is broken.
func NewInvariantViolation(err error) error {
	if err == nil {
		return ErrInvariantViolation
	}
	return Classify(err, ErrInvariantViolation)
}
