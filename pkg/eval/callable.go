package eval

import (
	"strings"

	"github.com/nickdrozd/right-to-leftsp/pkg/eval/errs"
	"github.com/nickdrozd/right-to-leftsp/pkg/eval/vals"
	"github.com/nickdrozd/right-to-leftsp/pkg/logutil"
)

var logger = logutil.GetLogger("[eval] ")

// Closure is a user-defined function: a parameter list and an analyzed body,
// together with the environment in which the function expression was
// evaluated.
type Closure struct {
	Params []string
	Body   Op
	Env    *Env
}

// Kind returns "fun".
func (*Closure) Kind() string { return "fun" }

// Repr returns an opaque representation showing the parameters.
func (c *Closure) Repr() string {
	return "<fun (" + strings.Join(c.Params, " ") + ")>"
}

// Apply binds the parameters of c to args in a new frame extending the
// captured environment, and executes the body there.
func (c *Closure) Apply(args []any) (any, error) {
	st := c.Env.execState()
	if st != nil {
		if st.debug {
			logger.Printf("apply %s to %s", c.Repr(), vals.Repr(vals.MakeListSlice(args)))
		}
		st.depth++
		defer func() { st.depth-- }()
		if st.maxDepth > 0 && st.depth > st.maxDepth {
			return nil, errs.StackOverflow{Depth: st.maxDepth}
		}
	}
	env, err := Extend(c.Params, args, c.Env)
	if err != nil {
		return nil, err
	}
	return c.Body.Exec(env)
}

// Primitive is a function implemented in Go.
type Primitive struct {
	Name string
	// Minimum and maximum number of arguments. A negative maximum means that
	// there is no upper bound.
	MinArgs, MaxArgs int
	impl             func(args []any) (any, error)
}

// NewPrimitive creates a new Primitive accepting between minArgs and maxArgs
// arguments.
func NewPrimitive(name string, minArgs, maxArgs int, impl func([]any) (any, error)) *Primitive {
	return &Primitive{name, minArgs, maxArgs, impl}
}

// Kind returns "fun".
func (*Primitive) Kind() string { return "fun" }

// Repr returns an opaque representation showing the name.
func (p *Primitive) Repr() string { return "<primitive " + p.Name + ">" }

// Call checks the number of arguments and calls the Go implementation.
func (p *Primitive) Call(args []any) (any, error) {
	if len(args) < p.MinArgs || (p.MaxArgs >= 0 && len(args) > p.MaxArgs) {
		return nil, errs.ArityMismatch{
			What:     "arguments of " + p.Name,
			ValidLow: p.MinArgs, ValidHigh: p.MaxArgs, Actual: len(args)}
	}
	return p.impl(args)
}

// Apply applies f to args. f must be a *Closure or a *Primitive.
func Apply(f any, args []any) (any, error) {
	switch f := f.(type) {
	case *Primitive:
		return f.Call(args)
	case *Closure:
		return f.Apply(args)
	default:
		return nil, errs.ApplicationType{Kind: vals.Kind(f)}
	}
}
