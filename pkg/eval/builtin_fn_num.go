package eval

import (
	"strconv"

	"github.com/nickdrozd/right-to-leftsp/pkg/eval/errs"
	"github.com/nickdrozd/right-to-leftsp/pkg/eval/vals"
)

// Numerical operations.

func init() {
	addBuiltinFns(
		// Arithmetic
		NewPrimitive("+", 0, -1, add),
		NewPrimitive("-", 1, -1, sub),
		NewPrimitive("*", 0, -1, mul),
		NewPrimitive("/", 1, -1, div),

		// Comparison
		NewPrimitive("<", 2, 2, compare("<", func(a, b float64) bool { return a < b })),
		NewPrimitive(">", 2, 2, compare(">", func(a, b float64) bool { return a > b })),
		NewPrimitive("<=", 2, 2, compare("<=", func(a, b float64) bool { return a <= b })),
		NewPrimitive(">=", 2, 2, compare(">=", func(a, b float64) bool { return a >= b })),
		NewPrimitive("=", 2, 2, eq),
	)
}

func nums(name string, args []any) ([]float64, error) {
	fs := make([]float64, len(args))
	for i, arg := range args {
		f, ok := arg.(float64)
		if !ok {
			return nil, errs.WrongType{
				What:   "argument " + strconv.Itoa(i+1) + " of " + name,
				Want:   "number",
				Actual: vals.Kind(arg)}
		}
		fs[i] = f
	}
	return fs, nil
}

func add(args []any) (any, error) {
	fs, err := nums("+", args)
	if err != nil {
		return nil, err
	}
	sum := 0.0
	for _, f := range fs {
		sum += f
	}
	return sum, nil
}

func mul(args []any) (any, error) {
	fs, err := nums("*", args)
	if err != nil {
		return nil, err
	}
	prod := 1.0
	for _, f := range fs {
		prod *= f
	}
	return prod, nil
}

// With one argument, negates it. Otherwise subtracts the rest of the arguments
// from the first.
func sub(args []any) (any, error) {
	fs, err := nums("-", args)
	if err != nil {
		return nil, err
	}
	if len(fs) == 1 {
		return -fs[0], nil
	}
	diff := fs[0]
	for _, f := range fs[1:] {
		diff -= f
	}
	return diff, nil
}

// With one argument, returns its reciprocal. Otherwise divides the first
// argument by the rest. Division by zero follows IEEE 754.
func div(args []any) (any, error) {
	fs, err := nums("/", args)
	if err != nil {
		return nil, err
	}
	if len(fs) == 1 {
		return 1 / fs[0], nil
	}
	quot := fs[0]
	for _, f := range fs[1:] {
		quot /= f
	}
	return quot, nil
}

func compare(name string, f func(a, b float64) bool) func([]any) (any, error) {
	return func(args []any) (any, error) {
		fs, err := nums(name, args)
		if err != nil {
			return nil, err
		}
		return f(fs[0], fs[1]), nil
	}
}

// Equality works on values of all kinds.
func eq(args []any) (any, error) {
	return vals.Equal(args[0], args[1]), nil
}
