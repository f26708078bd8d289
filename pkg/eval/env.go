package eval

import (
	"sort"

	"github.com/nickdrozd/right-to-leftsp/pkg/eval/errs"
	"github.com/nickdrozd/right-to-leftsp/pkg/eval/vals"
	"github.com/xiaq/persistent/hashmap"
)

// Frame is a mutable mapping from names to values.
type Frame map[string]any

// Env is a chain of frames. Lookup and assignment walk the chain from the
// innermost frame outwards.
type Env struct {
	frame     Frame
	enclosure *Env
	state     *execState
}

// Per-interpreter execution state, shared by all environments descending from
// the same base environment.
type execState struct {
	depth    int
	maxDepth int
	debug    bool
}

// EmptyEnv is the environment with no frames.
var EmptyEnv = &Env{}

// IsEmpty returns whether e is the empty environment.
func (e *Env) IsEmpty() bool { return e == nil || e.frame == nil }

// Enclosure returns the environment e extends.
func (e *Env) Enclosure() *Env {
	if e.IsEmpty() {
		return EmptyEnv
	}
	return e.enclosure
}

// Lookup returns the value bound to name in the innermost frame that binds
// it.
func (e *Env) Lookup(name string) (any, error) {
	for env := e; !env.IsEmpty(); env = env.enclosure {
		if v, ok := env.frame[name]; ok {
			return v, nil
		}
	}
	return nil, errs.UnboundVariable{Name: name}
}

// Define binds name in the innermost frame of e, replacing any existing
// binding in that frame. e must not be EmptyEnv.
func (e *Env) Define(name string, v any) {
	e.frame[name] = v
}

// Assign replaces the value of name in the innermost frame that binds it.
func (e *Env) Assign(name string, v any) error {
	for env := e; !env.IsEmpty(); env = env.enclosure {
		if _, ok := env.frame[name]; ok {
			env.frame[name] = v
			return nil
		}
	}
	return errs.UnboundVariable{Name: name}
}

// Names returns all names visible from e, sorted.
func (e *Env) Names() []string {
	seen := make(map[string]bool)
	var names []string
	for env := e; !env.IsEmpty(); env = env.enclosure {
		for name := range env.frame {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	sort.Strings(names)
	return names
}

// Extend returns a new environment whose innermost frame binds params to args
// pairwise, enclosed by base.
func Extend(params []string, args []any, base *Env) (*Env, error) {
	if len(params) != len(args) {
		return nil, errs.ArityMismatch{
			What:     "arguments",
			ValidLow: len(params), ValidHigh: len(params), Actual: len(args)}
	}
	frame := make(Frame, len(params))
	for i, param := range params {
		frame[param] = args[i]
	}
	return &Env{frame, base, base.execState()}, nil
}

func (e *Env) execState() *execState {
	if e.IsEmpty() {
		return nil
	}
	return e.state
}

// NewBaseEnv returns an environment with one frame holding the entries of
// builtins, enclosed by EmptyEnv. The keys of builtins must be vals.Symbol
// values. Applications nested more deeply than maxDepth in environments
// descending from the result fail with errs.StackOverflow; a maxDepth of 0 or
// less disables the check.
func NewBaseEnv(builtins hashmap.Map, maxDepth int) *Env {
	frame := make(Frame, builtins.Len())
	for it := builtins.Iterator(); it.HasElem(); it.Next() {
		k, v := it.Elem()
		frame[string(k.(vals.Symbol))] = v
	}
	return &Env{frame, EmptyEnv, &execState{maxDepth: maxDepth}}
}

// NewGlobalEnv returns an environment with a fresh empty frame enclosed by
// base.
func NewGlobalEnv(base *Env) *Env {
	return &Env{Frame{}, base, base.execState()}
}
