package vals

// Equaler wraps the Equal method.
type Equaler interface {
	// Equal compares the receiver to another value.
	Equal(other any) bool
}

// Equal returns whether two values are equal. Numbers, booleans and symbols
// are compared by value and lists element by element. Types satisfying the
// Equaler interface use their Equal method; all other values are compared with
// ==.
func Equal(x, y any) bool {
	switch x := x.(type) {
	case float64:
		return x == y
	case bool:
		return x == y
	case Symbol:
		return x == y
	case List:
		if yy, ok := y.(List); ok {
			return equalList(x, yy)
		}
		return false
	case Equaler:
		return x.Equal(y)
	default:
		return x == y
	}
}

func equalList(x, y List) bool {
	if x.Len() != y.Len() {
		return false
	}
	ix := x.Iterator()
	iy := y.Iterator()
	for ix.HasElem() && iy.HasElem() {
		if !Equal(ix.Elem(), iy.Elem()) {
			return false
		}
		ix.Next()
		iy.Next()
	}
	return true
}
