package eval

import "github.com/nickdrozd/right-to-leftsp/pkg/eval/vals"

// Predicates.

func init() {
	addBuiltinFns(
		NewPrimitive("not", 1, 1, not),
		kindPredicate("number?", "number"),
		kindPredicate("symbol?", "symbol"),
		kindPredicate("boolean?", "boolean"),
		kindPredicate("list?", "list"),
		kindPredicate("procedure?", "fun"),
	)
}

func not(args []any) (any, error) {
	return !vals.Bool(args[0]), nil
}

func kindPredicate(name, kind string) *Primitive {
	return NewPrimitive(name, 1, 1, func(args []any) (any, error) {
		return vals.Kind(args[0]) == kind, nil
	})
}
