package eval

import (
	"sync"

	"github.com/nickdrozd/right-to-leftsp/pkg/eval/vals"
	"github.com/xiaq/persistent/hashmap"
)

var builtinValues = map[vals.Symbol]any{
	"nil": vals.EmptyList,
}

func addBuiltinFns(fns ...*Primitive) {
	for _, fn := range fns {
		builtinValues[vals.Symbol(fn.Name)] = fn
	}
}

var (
	builtinsOnce sync.Once
	builtins     hashmap.Map
)

// Builtins returns the table of primitive bindings, keyed by vals.Symbol. The
// table is immutable and shared by all interpreters.
func Builtins() hashmap.Map {
	builtinsOnce.Do(func() {
		m := hashmap.New(vals.Equal, vals.Hash)
		for name, v := range builtinValues {
			m = m.Assoc(name, v)
		}
		builtins = m
	})
	return builtins
}
