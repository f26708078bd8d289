package vals

import "fmt"

// Kinder wraps the Kind method.
type Kinder interface {
	Kind() string
}

// Kind returns the "kind" of the value, used in error messages and by the
// type predicates. It is implemented for numbers, booleans, symbols and lists,
// and types satisfying the Kinder interface. For other types, it returns the
// Go type name of the argument preceded by "!!".
func Kind(v any) string {
	switch v := v.(type) {
	case float64:
		return "number"
	case bool:
		return "boolean"
	case Symbol:
		return "symbol"
	case List:
		return "list"
	case Kinder:
		return v.Kind()
	default:
		return fmt.Sprintf("!!%T", v)
	}
}
