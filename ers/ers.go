package ers

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
	pkgerrors "github.com/pkg/errors"
)

// When returns the error if the conditional is true, and nil
// otherwise.
func When(cond bool, err error) error {
	if !cond {
		return nil
	}

	return err
}

// Whenf constructs an error (using fmt.Errorf) IF the conditional is
// true, and returns nil otherwise.
func Whenf(cond bool, tmpl string, args ...any) error {
	if !cond {
		return nil
	}

	return fmt.Errorf(tmpl, args...)
}

// Is returns true if the error is one of the target errors, (or one
// of it's constituent (wrapped) errors is a target error. ers.Is uses
// errors.Is.
func Is(err error, targets ...error) bool {
	for _, target := range targets {
		if err == nil && target != nil {
			continue
		}
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// Ok returns true when the error is nil.
func Ok(err error) bool { return err == nil }

// Wrap annotates the error with a message, and records the call
// site. Nil errors remain nil.
func Wrap(err error, msg string) error { return pkgerrors.Wrap(err, msg) }

// Wrapf annotates the error with a formatted message. Nil errors
// remain nil.
func Wrapf(err error, tmpl string, args ...any) error {
	return pkgerrors.Wrapf(err, tmpl, args...)
}

// Join aggregates the non-nil errors. It returns nil when there are
// no errors, and the error itself when there is only one.
func Join(errs ...error) error {
	var merr *multierror.Error
	for _, err := range errs {
		if err != nil {
			merr = multierror.Append(merr, err)
		}
	}

	switch {
	case merr == nil:
		return nil
	case len(merr.Errors) == 1:
		return merr.Errors[0]
	default:
		return merr
	}
}

// Classify ties a specific error to the broader class it belongs
// to: the result is both the error and the class for the purposes of
// errors.Is.
func Classify(err, class error) error {
	if err == nil {
		return nil
	}
	return &classified{err: err, class: class}
}

type classified struct {
	err   error
	class error
}

func (c *classified) Error() string        { return fmt.Sprintf("%v: %v", c.class, c.err) }
func (c *classified) Is(target error) bool { return errors.Is(c.class, target) }
func (c *classified) Unwrap() error        { return c.err }
