package errs

import "testing"

var errorMessageTests = []struct {
	err     error
	wantMsg string
}{
	{
		UnboundVariable{Name: "foo"},
		"unbound variable: foo",
	},
	{
		ArityMismatch{What: "arguments", ValidLow: 2, ValidHigh: 2, Actual: 3},
		"arity mismatch: arguments must be 2 values, but is 3 values",
	},
	{
		ArityMismatch{What: "arguments", ValidLow: 1, ValidHigh: 1, Actual: 0},
		"arity mismatch: arguments must be 1 value, but is 0 values",
	},
	{
		ArityMismatch{What: "arguments", ValidLow: 2, ValidHigh: -1, Actual: 1},
		"arity mismatch: arguments must be 2 or more values, but is 1 value",
	},
	{
		ArityMismatch{What: "arguments", ValidLow: 2, ValidHigh: 3, Actual: 1},
		"arity mismatch: arguments must be 2 to 3 values, but is 1 value",
	},
	{
		ApplicationType{Kind: "number"},
		"application type error: cannot apply a value of kind number",
	},
	{
		WrongType{What: "argument 1 of +", Want: "number", Actual: "symbol"},
		"wrong type: argument 1 of + must be number, but is symbol",
	},
	{
		StackOverflow{Depth: 100},
		"stack overflow: more than 100 nested applications",
	},
}

func TestErrorMessages(t *testing.T) {
	for _, test := range errorMessageTests {
		if gotMsg := test.err.Error(); gotMsg != test.wantMsg {
			t.Errorf("got message %v, want %v", gotMsg, test.wantMsg)
		}
	}
}
