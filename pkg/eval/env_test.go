package eval

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/nickdrozd/right-to-leftsp/pkg/eval/errs"
	"github.com/nickdrozd/right-to-leftsp/pkg/eval/vals"
	"github.com/xiaq/persistent/hashmap"
)

func testBuiltins() hashmap.Map {
	return hashmap.New(vals.Equal, vals.Hash).
		Assoc(vals.Symbol("one"), 1.0).
		Assoc(vals.Symbol("two"), 2.0)
}

func TestEnv_Lookup(t *testing.T) {
	base := NewBaseEnv(testBuiltins(), 0)
	global := NewGlobalEnv(base)
	global.Define("x", 10.0)
	inner, err := Extend([]string{"x", "y"}, []any{20.0, 30.0}, global)
	if err != nil {
		t.Fatalf("Extend returned error %v", err)
	}

	for name, want := range map[string]any{"x": 20.0, "y": 30.0, "one": 1.0} {
		v, err := inner.Lookup(name)
		if v != want || err != nil {
			t.Errorf("Lookup(%q) -> (%v, %v), want (%v, nil)", name, v, err, want)
		}
	}
	if v, _ := global.Lookup("x"); v != 10.0 {
		t.Errorf("outer x shadowed: got %v", v)
	}
	_, err = inner.Lookup("z")
	if err != (errs.UnboundVariable{Name: "z"}) {
		t.Errorf("Lookup(z) -> %v, want unbound variable", err)
	}
}

func TestEnv_Assign(t *testing.T) {
	global := NewGlobalEnv(NewBaseEnv(testBuiltins(), 0))
	global.Define("x", 1.0)
	inner, _ := Extend(nil, nil, global)

	if err := inner.Assign("x", 2.0); err != nil {
		t.Errorf("Assign(x) -> %v", err)
	}
	if v, _ := global.Lookup("x"); v != 2.0 {
		t.Errorf("Assign did not update the enclosing frame, x = %v", v)
	}
	if err := inner.Assign("z", 2.0); err != (errs.UnboundVariable{Name: "z"}) {
		t.Errorf("Assign(z) -> %v, want unbound variable", err)
	}
	if _, err := inner.Lookup("z"); err == nil {
		t.Errorf("Assign to unbound variable created a binding")
	}
}

func TestEnv_Define(t *testing.T) {
	global := NewGlobalEnv(NewBaseEnv(testBuiltins(), 0))
	global.Define("x", 1.0)
	global.Define("x", 2.0)
	if v, _ := global.Lookup("x"); v != 2.0 {
		t.Errorf("redefinition: x = %v, want 2", v)
	}
	// Defining shadows the base environment without changing it.
	global.Define("one", 100.0)
	if v, _ := global.Enclosure().Lookup("one"); v != 1.0 {
		t.Errorf("base one = %v, want 1", v)
	}
}

func TestExtend_ArityMismatch(t *testing.T) {
	_, err := Extend([]string{"x"}, []any{1.0, 2.0}, EmptyEnv)
	want := errs.ArityMismatch{What: "arguments", ValidLow: 1, ValidHigh: 1, Actual: 2}
	if err != want {
		t.Errorf("got %v, want %v", err, want)
	}
}

func TestEmptyEnv(t *testing.T) {
	if !EmptyEnv.IsEmpty() {
		t.Errorf("EmptyEnv is not empty")
	}
	if _, err := EmptyEnv.Lookup("x"); err == nil {
		t.Errorf("Lookup in EmptyEnv succeeded")
	}
	if names := EmptyEnv.Names(); len(names) != 0 {
		t.Errorf("EmptyEnv has names %v", names)
	}
}

func TestEnv_Names(t *testing.T) {
	global := NewGlobalEnv(NewBaseEnv(testBuiltins(), 0))
	global.Define("x", 1.0)
	global.Define("one", 1.0)
	want := []string{"one", "two", "x"}
	if diff := cmp.Diff(want, global.Names()); diff != "" {
		t.Errorf("Names (-want +got):\n%s", diff)
	}
}

func TestBuiltins(t *testing.T) {
	b := Builtins()
	for _, name := range []string{"+", "-", "*", "/", "<", ">", "=", "<=", ">=",
		"nil", "cons", "car", "cdr", "list", "null?",
		"number?", "symbol?", "boolean?", "list?", "procedure?", "not"} {
		if _, ok := b.Index(vals.Symbol(name)); !ok {
			t.Errorf("builtin %s missing", name)
		}
	}
	if Builtins() != b {
		t.Errorf("Builtins returned a different table on second call")
	}
}
