package eval

import (
	"github.com/nickdrozd/right-to-leftsp/pkg/eval/errs"
	"github.com/nickdrozd/right-to-leftsp/pkg/eval/vals"
)

// List operations.

func init() {
	addBuiltinFns(
		NewPrimitive("list", 0, -1, list),
		NewPrimitive("cons", 2, 2, cons),
		NewPrimitive("car", 1, 1, car),
		NewPrimitive("cdr", 1, 1, cdr),
		NewPrimitive("null?", 1, 1, isNull),
	)
}

func list(args []any) (any, error) {
	return vals.MakeListSlice(args), nil
}

// Returns a new list with the first argument in front of the elements of the
// second. When the second argument is not a list, returns the pair list of the
// two arguments.
func cons(args []any) (any, error) {
	tail, ok := args[1].(vals.List)
	if !ok {
		return vals.MakeList(args[0], args[1]), nil
	}
	l := vals.MakeList(args[0])
	for it := tail.Iterator(); it.HasElem(); it.Next() {
		l = l.Cons(it.Elem())
	}
	return l, nil
}

func nonEmptyList(name string, v any) (vals.List, error) {
	l, ok := v.(vals.List)
	if !ok {
		return nil, errs.WrongType{
			What: "argument 1 of " + name, Want: "non-empty list", Actual: vals.Kind(v)}
	}
	if l.Len() == 0 {
		return nil, errs.WrongType{
			What: "argument 1 of " + name, Want: "non-empty list", Actual: "empty list"}
	}
	return l, nil
}

func car(args []any) (any, error) {
	l, err := nonEmptyList("car", args[0])
	if err != nil {
		return nil, err
	}
	v, _ := l.Index(0)
	return v, nil
}

func cdr(args []any) (any, error) {
	l, err := nonEmptyList("cdr", args[0])
	if err != nil {
		return nil, err
	}
	return l.SubVector(1, l.Len()), nil
}

// Only the empty list is null.
func isNull(args []any) (any, error) {
	l, ok := args[0].(vals.List)
	return ok && l.Len() == 0, nil
}
