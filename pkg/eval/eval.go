// Package eval implements the analyzer and executor.
//
// Expressions read by the parse package are first analyzed into Op values,
// classifying every list as a special form or an application once. Ops are
// then executed against an Env, a chain of mutable frames.
package eval

import "github.com/nickdrozd/right-to-leftsp/pkg/parse"

// DefaultMaxCallDepth is the default maximum number of nested applications.
const DefaultMaxCallDepth = 10000

// Evaler provides methods for evaluating code, and maintains state that is
// persisted between evaluations. An Evaler is not safe for concurrent use.
type Evaler struct {
	// Base environment, holding the primitives.
	Base *Env
	// Global environment, where top-level definitions go.
	Global *Env
}

// NewEvaler creates a new Evaler with a fresh global environment over the
// primitives.
func NewEvaler() *Evaler {
	base := NewBaseEnv(Builtins(), DefaultMaxCallDepth)
	return &Evaler{base, NewGlobalEnv(base)}
}

// SetMaxCallDepth sets the maximum number of nested applications. A value of
// 0 or less disables the limit.
func (ev *Evaler) SetMaxCallDepth(n int) { ev.Base.state.maxDepth = n }

// SetDebug turns tracing of analysis and applications on or off. Traces are
// written to the "[eval] " logger.
func (ev *Evaler) SetDebug(b bool) { ev.Base.state.debug = b }

// Debug returns whether tracing is on.
func (ev *Evaler) Debug() bool { return ev.Base.state.debug }

// AddBuiltin binds name in the base environment. It is used to add primitives
// that depend on the environment of the interpreter.
func (ev *Evaler) AddBuiltin(name string, v any) { ev.Base.Define(name, v) }

// EvalNode analyzes n, read from src, and executes it in env.
func (ev *Evaler) EvalNode(src parse.Source, n parse.Node, env *Env) (any, error) {
	if ev.Debug() {
		logger.Printf("analyze %s", parse.String(n))
	}
	op, err := Analyze(src, n)
	if err != nil {
		return nil, err
	}
	return op.Exec(env)
}

// Eval reads src and evaluates every top-level expression in the global
// environment in order. It stops at the first error, and returns the values
// of the expressions evaluated until then.
func (ev *Evaler) Eval(src parse.Source) ([]any, error) {
	nodes, err := parse.Parse(src)
	if err != nil {
		return nil, err
	}
	values := make([]any, 0, len(nodes))
	for _, n := range nodes {
		v, err := ev.EvalNode(src, n, ev.Global)
		if err != nil {
			return values, err
		}
		values = append(values, v)
	}
	return values, nil
}

// Check parses and analyzes src without executing it, returning the parse
// error, or the first compilation error.
func (ev *Evaler) Check(src parse.Source) (parseErr *parse.Error, compileErr *CompilationError) {
	nodes, err := parse.Parse(src)
	if err != nil {
		return parse.GetError(err), nil
	}
	for _, n := range nodes {
		if _, err := Analyze(src, n); err != nil {
			return nil, GetCompilationError(err)
		}
	}
	return nil, nil
}

// Names returns the names visible in the global environment.
func (ev *Evaler) Names() []string { return ev.Global.Names() }
