// Package evaltest provides a framework for testing code evaluation.
//
// The entry point for the framework is the Test function, which accepts a
// *testing.T and any number of test cases.
//
// Test cases are constructed using the That function, followed by method calls
// that add additional information to it.
//
// Example:
//
//	Test(t,
//	    That("(+ 1 2)").Puts(3.0),
//	    That("x").Throws(errs.UnboundVariable{Name: "x"}))
//
// If some setup is needed, use the TestWithSetup function instead.
package evaltest

import (
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/nickdrozd/right-to-leftsp/pkg/eval"
	"github.com/nickdrozd/right-to-leftsp/pkg/eval/vals"
	"github.com/nickdrozd/right-to-leftsp/pkg/parse"
)

// Case is a test case that can be used in Test.
type Case struct {
	codes  []string
	setup  func(ev *eval.Evaler)
	verify func(t *testing.T, ev *eval.Evaler)
	want   result
}

type result struct {
	ValueOut []any

	ParseError       error
	CompilationError error
	Exception        error
}

// That returns a new Case with the specified source code. Multiple arguments
// are joined with newlines. To specify multiple pieces of code that are
// executed separately, use the Then method to append code pieces.
//
// When combined with subsequent method calls, a test case reads like English.
// For example, a test for the fact that "(+ 1 2)" evaluates to 3 reads:
//
//	That("(+ 1 2)").Puts(3.0)
func That(lines ...string) Case {
	return Case{codes: []string{strings.Join(lines, "\n")}}
}

// Then returns a new Case that executes the given code in addition. Multiple
// arguments are joined with newlines.
func (c Case) Then(lines ...string) Case {
	c.codes = append(c.codes, strings.Join(lines, "\n"))
	return c
}

// WithSetup returns a new Case with the given setup function executed on the
// Evaler before the code is executed.
func (c Case) WithSetup(f func(*eval.Evaler)) Case {
	c.setup = f
	return c
}

// Passes returns an altered Case that runs an additional verification function
// on the Evaler after the code is executed.
func (c Case) Passes(f func(t *testing.T, ev *eval.Evaler)) Case {
	c.verify = f
	return c
}

// Puts returns an altered Case that requires the top-level expressions of the
// source code to evaluate to the specified values, in order.
func (c Case) Puts(vs ...any) Case {
	c.want.ValueOut = vs
	return c
}

// Throws returns an altered Case that requires the source code to throw an
// exception with the given reason. The reason supports special matcher values
// constructed by functions like ErrorWithMessage.
func (c Case) Throws(reason error) Case {
	c.want.Exception = exc{reason}
	return c
}

// DoesNotCompile returns an altered Case that requires the source code to fail
// analysis. If msg is given, the message of the compilation error must equal
// it.
func (c Case) DoesNotCompile(msg ...string) Case {
	c.want.CompilationError = compilationError{msg}
	return c
}

// DoesNotParse returns an altered Case that requires the source code to fail
// reading.
func (c Case) DoesNotParse() Case {
	c.want.ParseError = anyParseError{}
	return c
}

// Test runs test cases. For each test case, a new Evaler is created with
// NewEvaler.
func Test(t *testing.T, tests ...Case) {
	t.Helper()
	TestWithSetup(t, func(*eval.Evaler) {}, tests...)
}

// TestWithSetup runs test cases. For each test case, a new Evaler is created
// with NewEvaler and passed to the setup function.
func TestWithSetup(t *testing.T, setup func(*eval.Evaler), tests ...Case) {
	t.Helper()
	for _, tc := range tests {
		t.Run(strings.Join(tc.codes, "\n"), func(t *testing.T) {
			t.Helper()
			ev := eval.NewEvaler()
			setup(ev)
			if tc.setup != nil {
				tc.setup(ev)
			}

			r := evalAndCollect(ev, tc.codes)

			if tc.verify != nil {
				tc.verify(t, ev)
			}
			if !matchOut(tc.want.ValueOut, r.ValueOut) {
				t.Errorf("got value out (-want +got):\n%s",
					cmp.Diff(reprs(tc.want.ValueOut), reprs(r.ValueOut)))
			}
			if !matchErr(tc.want.ParseError, r.ParseError) {
				t.Errorf("got parse error %v, want %v",
					r.ParseError, tc.want.ParseError)
			}
			if !matchErr(tc.want.CompilationError, r.CompilationError) {
				t.Errorf("got compilation error %v, want %v",
					r.CompilationError, tc.want.CompilationError)
			}
			if !matchErr(tc.want.Exception, r.Exception) {
				t.Errorf("unexpected exception")
				t.Logf("got: %T: %v", eval.Reason(r.Exception), r.Exception)
				t.Errorf("want: %v", tc.want.Exception)
			}
		})
	}
}

func evalAndCollect(ev *eval.Evaler, texts []string) result {
	var r result
	for _, text := range texts {
		values, err := ev.Eval(parse.Source{Name: "[test]", Code: text})
		r.ValueOut = append(r.ValueOut, values...)

		if parse.GetError(err) != nil {
			r.ParseError = err
		} else if eval.GetCompilationError(err) != nil {
			// NOTE: If multiple code pieces have compilation errors, only the
			// last one compilation error is saved.
			r.CompilationError = err
		} else if err != nil {
			// NOTE: If multiple code pieces throw exceptions, only the last one
			// is saved.
			r.Exception = err
		}
	}
	return r
}

func reprs(vs []any) []string {
	s := make([]string, len(vs))
	for i, v := range vs {
		s[i] = vals.Repr(v)
	}
	return s
}

func matchOut(want, got []any) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if !match(got[i], want[i]) {
			return false
		}
	}
	return true
}

func match(got, want any) bool {
	if matcher, ok := want.(ValueMatcher); ok {
		return matcher.matchValue(got)
	}
	// Special-case float64 to correctly handle NaN.
	if got, ok := got.(float64); ok {
		if want, ok := want.(float64); ok {
			return got == want || (math.IsNaN(got) && math.IsNaN(want))
		}
	}
	return vals.Equal(got, want)
}

func matchErr(want, got error) bool {
	if want == nil {
		return got == nil
	}
	if matcher, ok := want.(errorMatcher); ok {
		return matcher.matchError(got)
	}
	return reflect.DeepEqual(want, got)
}
