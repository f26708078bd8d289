package eval

import (
	"errors"

	"github.com/nickdrozd/right-to-leftsp/pkg/diag"
	"github.com/nickdrozd/right-to-leftsp/pkg/eval/vals"
	"github.com/nickdrozd/right-to-leftsp/pkg/parse"
)

// Op is an analyzed expression, ready to be executed any number of times in
// any environment.
type Op struct {
	body opBody
	src  *parse.Source
	diag.Ranging
}

type opBody interface {
	invoke(env *Env) (any, error)
}

// Exec executes the Op in env. Errors that are not already an *Exception are
// wrapped in one whose context is the range of this Op.
func (op Op) Exec(env *Env) (any, error) {
	v, err := op.body.invoke(env)
	if err != nil {
		return nil, op.wrap(err)
	}
	return v, nil
}

func (op Op) wrap(err error) error {
	var exc *Exception
	if errors.As(err, &exc) {
		return err
	}
	return &Exception{err, *diag.NewContext(op.src.Name, op.src.Code, op)}
}

type constOp struct{ value any }

func (op constOp) invoke(*Env) (any, error) { return op.value, nil }

type varOp struct{ name string }

func (op varOp) invoke(env *Env) (any, error) { return env.Lookup(op.name) }

type ifOp struct{ test, then, els Op }

func (op *ifOp) invoke(env *Env) (any, error) {
	test, err := op.test.Exec(env)
	if err != nil {
		return nil, err
	}
	if vals.Bool(test) {
		return op.then.Exec(env)
	}
	return op.els.Exec(env)
}

var errDefineInEmptyEnv = errors.New("cannot define in the empty environment")

type defOp struct {
	name  string
	value Op
}

func (op *defOp) invoke(env *Env) (any, error) {
	if env.IsEmpty() {
		return nil, errDefineInEmptyEnv
	}
	v, err := op.value.Exec(env)
	if err != nil {
		return nil, err
	}
	env.Define(op.name, v)
	return v, nil
}

type setOp struct {
	name  string
	value Op
}

func (op *setOp) invoke(env *Env) (any, error) {
	v, err := op.value.Exec(env)
	if err != nil {
		return nil, err
	}
	if err := env.Assign(op.name, v); err != nil {
		return nil, err
	}
	return v, nil
}

type funOp struct {
	params []string
	body   Op
}

func (op *funOp) invoke(env *Env) (any, error) {
	return &Closure{op.params, op.body, env}, nil
}

// Executes its ops in order and evaluates to the value of the last one. There
// is always at least one op.
type seqOp struct{ ops []Op }

func (op seqOp) invoke(env *Env) (any, error) {
	var v any
	for _, sub := range op.ops {
		var err error
		v, err = sub.Exec(env)
		if err != nil {
			return nil, err
		}
	}
	return v, nil
}

type applyOp struct {
	fn   Op
	args []Op
}

func (op *applyOp) invoke(env *Env) (any, error) {
	f, err := op.fn.Exec(env)
	if err != nil {
		return nil, err
	}
	args := make([]any, len(op.args))
	for i, argOp := range op.args {
		args[i], err = argOp.Exec(env)
		if err != nil {
			return nil, err
		}
	}
	return Apply(f, args)
}
