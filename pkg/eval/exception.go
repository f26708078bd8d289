package eval

import (
	"errors"

	"github.com/nickdrozd/right-to-leftsp/pkg/diag"
)

// Exception is an error raised while executing an Op. It wraps the underlying
// reason together with the range of the innermost expression being executed
// when the error occurred.
type Exception struct {
	reason  error
	Context diag.Context
}

// Reason returns the reason of err if it is an *Exception. Otherwise it returns
// err itself.
func Reason(err error) error {
	var exc *Exception
	if errors.As(err, &exc) {
		return exc.reason
	}
	return err
}

// Reason returns the underlying reason of the exception.
func (exc *Exception) Reason() error { return exc.reason }

// Error returns the message of the reason of the exception.
func (exc *Exception) Error() string { return exc.reason.Error() }

// Unwrap returns the reason, so that errors.As can match its type.
func (exc *Exception) Unwrap() error { return exc.reason }

// Range returns the range of the culprit expression.
func (exc *Exception) Range() diag.Ranging { return exc.Context.Ranging }

// Show shows the exception together with the culprit expression.
func (exc *Exception) Show(indent string) string {
	return "\033[31;1mException: " + exc.reason.Error() + "\033[m\n" +
		indent + "  " + exc.Context.Show(indent+"  ")
}
