// Package vals contains basic facilities for manipulating values used in the
// interpreter.
//
// Values are represented by plain Go values: float64 for numbers, bool for
// booleans, Symbol for symbols and List for lists. Functions are defined in
// the eval package and participate through the Kinder, Reprer and Equaler
// interfaces.
package vals

import "github.com/xiaq/persistent/vector"

// Symbol is the type of symbol atoms, which name variables and keywords.
type Symbol string

// List is an alias for the underlying type used for lists. Lists are
// immutable once created.
type List = vector.Vector

// EmptyList is an empty list.
var EmptyList = vector.Empty

// MakeList creates a new List from values.
func MakeList(vs ...any) List {
	return MakeListSlice(vs)
}

// MakeListSlice creates a new List from a slice.
func MakeListSlice[T any](vs []T) List {
	vec := vector.Empty
	for _, v := range vs {
		vec = vec.Cons(v)
	}
	return vec
}

// ListSlice returns the elements of a List as a slice.
func ListSlice(l List) []any {
	s := make([]any, 0, l.Len())
	for it := l.Iterator(); it.HasElem(); it.Next() {
		s = append(s, it.Elem())
	}
	return s
}
