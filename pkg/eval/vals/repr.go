package vals

import (
	"fmt"
	"strings"
)

// Reprer wraps the Repr method.
type Reprer interface {
	// Repr returns a string that represents a value. The string is either a
	// literal that reads back to an equal value (like `(a b c)` for a list),
	// or a string enclosed in "<>" describing the value (like `<fun (x)>`).
	Repr() string
}

// Repr returns the representation for a value. It is implemented for numbers,
// booleans, symbols and lists, and types satisfying the Reprer interface. For
// other types, it uses fmt.Sprint with the format "<unknown %v>".
func Repr(v any) string {
	switch v := v.(type) {
	case float64:
		return FormatNum(v)
	case bool:
		if v {
			return "#t"
		}
		return "#f"
	case Symbol:
		return string(v)
	case List:
		var sb strings.Builder
		sb.WriteByte('(')
		for i, elem := range ListSlice(v) {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(Repr(elem))
		}
		sb.WriteByte(')')
		return sb.String()
	case Reprer:
		return v.Repr()
	default:
		return fmt.Sprintf("<unknown %v>", v)
	}
}

// PrettyRepr is like Repr, but breaks lists whose representation is wider
// than width into one element per line, indenting nested elements. A width
// of 0 or less disables breaking.
func PrettyRepr(v any, width int) string {
	var sb strings.Builder
	prettyRepr(&sb, v, width, 0)
	return sb.String()
}

func prettyRepr(sb *strings.Builder, v any, width, indent int) {
	plain := Repr(v)
	l, ok := v.(List)
	if !ok || width <= 0 || indent+len(plain) <= width || l.Len() == 0 {
		sb.WriteString(plain)
		return
	}
	sb.WriteByte('(')
	first := true
	for it := l.Iterator(); it.HasElem(); it.Next() {
		if !first {
			sb.WriteByte('\n')
			sb.WriteString(strings.Repeat(" ", indent+1))
		}
		first = false
		prettyRepr(sb, it.Elem(), width, indent+1)
	}
	sb.WriteByte(')')
}
