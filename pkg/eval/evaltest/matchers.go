package evaltest

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/nickdrozd/right-to-leftsp/pkg/eval"
	"github.com/nickdrozd/right-to-leftsp/pkg/eval/vals"
	"github.com/nickdrozd/right-to-leftsp/pkg/parse"
)

type errorMatcher interface{ matchError(error) bool }

// An errorMatcher for compilation errors.
type compilationError struct {
	msgs []string
}

func (e compilationError) Error() string {
	if len(e.msgs) == 0 {
		return "any compilation error"
	}
	return fmt.Sprintf("compilation error with message %v", e.msgs[0])
}

func (e compilationError) matchError(e2 error) bool {
	ce := eval.GetCompilationError(e2)
	return ce != nil && (len(e.msgs) == 0 || e.msgs[0] == ce.Message)
}

// An errorMatcher for exceptions.
type exc struct {
	reason error
}

func (e exc) Error() string {
	return fmt.Sprintf("exception with reason %v", e.reason)
}

func (e exc) matchError(e2 error) bool {
	var exc *eval.Exception
	if errors.As(e2, &exc) {
		return matchErr(e.reason, exc.Reason())
	}
	return false
}

type anyParseError struct{}

func (anyParseError) Error() string           { return "any parse error" }
func (anyParseError) matchError(e error) bool { return parse.GetError(e) != nil }

// ErrorWithType returns an error that can be passed to the Case.Throws to match
// any error with the same type as the argument.
func ErrorWithType(v error) error { return errWithType{v} }

// An errorMatcher for any error with the given type.
type errWithType struct{ v error }

func (e errWithType) Error() string { return fmt.Sprintf("error with type %T", e.v) }

func (e errWithType) matchError(e2 error) bool {
	return reflect.TypeOf(e.v) == reflect.TypeOf(e2)
}

// ErrorWithMessage returns an error that can be passed to Case.Throws to match
// any error with the given message.
func ErrorWithMessage(msg string) error { return errWithMessage{msg} }

// An errorMatcher for any error with the given message.
type errWithMessage struct{ msg string }

func (e errWithMessage) Error() string { return "error with message " + e.msg }

func (e errWithMessage) matchError(e2 error) bool {
	return e2 != nil && e.msg == e2.Error()
}

// ValueMatcher is a value that can be passed to Case.Puts and has its own
// matching semantics.
type ValueMatcher interface{ matchValue(any) bool }

// AnyValue is a ValueMatcher that matches any value.
var AnyValue ValueMatcher = anyValue{}

type anyValue struct{}

func (anyValue) matchValue(any) bool { return true }

// Kind returns a ValueMatcher that matches any value of the given kind.
func Kind(kind string) ValueMatcher { return ofKind{kind} }

type ofKind struct{ kind string }

func (m ofKind) matchValue(v any) bool { return vals.Kind(v) == m.kind }

// Repr returns a ValueMatcher that matches any value whose representation is
// s. It is useful for matching lists and functions.
func Repr(s string) ValueMatcher { return withRepr{s} }

type withRepr struct{ s string }

func (m withRepr) matchValue(v any) bool { return vals.Repr(v) == m.s }
