package vals

// Bool converts a value to bool for use in conditionals. Only the false
// boolean is false; every other value, including 0 and the empty list, is
// true.
func Bool(v any) bool {
	b, ok := v.(bool)
	return !ok || b
}
