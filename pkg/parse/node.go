package parse

import (
	"github.com/nickdrozd/right-to-leftsp/pkg/diag"
	"github.com/nickdrozd/right-to-leftsp/pkg/eval/vals"
)

// Node is an expression tree node: either an *Atom or a *List. Every node
// records the range of source text it was read from.
type Node interface {
	diag.Ranger
	isNode()
}

// Atom is an indivisible expression. Its Value is a float64, a bool or a
// vals.Symbol.
type Atom struct {
	diag.Ranging
	Value any
}

// List is a parenthesized sequence of expressions.
type List struct {
	diag.Ranging
	Elems []Node
	// Whether the list was read with the reversal marker.
	Reversed bool
	// Whether the list was produced by the quote marker. Such lists keep the
	// (quote X) order when reversed.
	QuoteMacro bool
}

func (*Atom) isNode() {}
func (*List) isNode() {}

// NewSymbol returns an Atom holding a symbol.
func NewSymbol(r diag.Ranger, name string) *Atom {
	return &Atom{r.Range(), vals.Symbol(name)}
}

// NewList returns a List with the given elements.
func NewList(r diag.Ranger, elems ...Node) *List {
	return &List{Ranging: r.Range(), Elems: elems}
}

// Symbol returns the symbol held by n and true if n is a symbol atom.
func Symbol(n Node) (vals.Symbol, bool) {
	if a, ok := n.(*Atom); ok {
		s, ok := a.Value.(vals.Symbol)
		return s, ok
	}
	return "", false
}

// HeadSymbol returns the first element of n and true if n is a list whose
// first element is a symbol.
func HeadSymbol(n Node) (vals.Symbol, bool) {
	if l, ok := n.(*List); ok && len(l.Elems) > 0 {
		return Symbol(l.Elems[0])
	}
	return "", false
}

// DeepReverse returns a copy of n with the order of the elements of every list
// reversed. Atoms are returned unchanged, and lists produced by the quote
// marker keep the quote keyword in front while their quoted expression is
// still reversed. DeepReverse is an involution.
func DeepReverse(n Node) Node {
	l, ok := n.(*List)
	if !ok {
		return n
	}
	elems := make([]Node, len(l.Elems))
	if l.QuoteMacro && len(l.Elems) == 2 {
		elems[0], elems[1] = l.Elems[0], DeepReverse(l.Elems[1])
	} else {
		for i, elem := range l.Elems {
			elems[len(elems)-1-i] = DeepReverse(elem)
		}
	}
	return &List{l.Ranging, elems, l.Reversed, l.QuoteMacro}
}

// Datum converts an expression tree to the value it denotes when quoted.
// Atoms become their values and lists become vals.List values.
func Datum(n Node) any {
	switch n := n.(type) {
	case *Atom:
		return n.Value
	case *List:
		elems := make([]any, len(n.Elems))
		for i, elem := range n.Elems {
			elems[i] = Datum(elem)
		}
		return vals.MakeListSlice(elems)
	}
	return nil
}

// String returns the canonical left-to-right representation of n.
func String(n Node) string {
	return vals.Repr(Datum(n))
}
