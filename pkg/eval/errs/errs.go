// Package errs declares error types used as exception reasons.
package errs

import (
	"fmt"
	"strconv"
)

// UnboundVariable is returned when looking up or assigning a name that is not
// bound in any frame of the environment chain.
type UnboundVariable struct {
	Name string
}

func (e UnboundVariable) Error() string {
	return "unbound variable: " + e.Name
}

// ArityMismatch encodes an error where the expected number of values is out of
// the valid range.
type ArityMismatch struct {
	What      string
	ValidLow  int
	ValidHigh int
	Actual    int
}

func (e ArityMismatch) Error() string {
	switch {
	case e.ValidHigh == e.ValidLow:
		return fmt.Sprintf("arity mismatch: %v must be %v, but is %v",
			e.What, nValues(e.ValidLow), nValues(e.Actual))
	case e.ValidHigh == -1:
		return fmt.Sprintf("arity mismatch: %v must be %v or more values, but is %v",
			e.What, e.ValidLow, nValues(e.Actual))
	default:
		return fmt.Sprintf("arity mismatch: %v must be %v to %v values, but is %v",
			e.What, e.ValidLow, e.ValidHigh, nValues(e.Actual))
	}
}

func nValues(n int) string {
	if n == 1 {
		return "1 value"
	}
	return strconv.Itoa(n) + " values"
}

// ApplicationType is returned when the operator of an application is neither a
// function nor a primitive.
type ApplicationType struct {
	Kind string
}

func (e ApplicationType) Error() string {
	return "application type error: cannot apply a value of kind " + e.Kind
}

// WrongType is returned when a primitive is given an argument of the wrong
// kind.
type WrongType struct {
	What   string
	Want   string
	Actual string
}

func (e WrongType) Error() string {
	return fmt.Sprintf("wrong type: %s must be %s, but is %s", e.What, e.Want, e.Actual)
}

// StackOverflow is returned when nested applications exceed the maximum call
// depth.
type StackOverflow struct {
	Depth int
}

func (e StackOverflow) Error() string {
	return fmt.Sprintf("stack overflow: more than %d nested applications", e.Depth)
}
