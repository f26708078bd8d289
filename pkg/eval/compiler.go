package eval

import (
	"fmt"

	"github.com/nickdrozd/right-to-leftsp/pkg/diag"
	"github.com/nickdrozd/right-to-leftsp/pkg/eval/vals"
	"github.com/nickdrozd/right-to-leftsp/pkg/parse"
)

// compiler maintains the states needed when analyzing expressions from a
// single source.
type compiler struct {
	src *parse.Source
}

// CompilationError is the type of errors found during analysis.
type CompilationError = diag.Error

const compilationErrorType = "compilation error"

// Analyze compiles n, read from src, into an Op. Malformed special forms are
// reported as a *CompilationError.
func Analyze(src parse.Source, n parse.Node) (op Op, err error) {
	cp := &compiler{&src}
	defer func() {
		r := recover()
		if r == nil {
			return
		} else if e := GetCompilationError(r); e != nil {
			// Save the compilation error and stop the panic.
			err = e
		} else {
			// Resume the panic; it is not supposed to be handled here.
			panic(r)
		}
	}()
	return cp.compile(n), nil
}

func (cp *compiler) errorpf(r diag.Ranger, format string, args ...any) {
	// The panic is caught by the recover in Analyze.
	panic(&diag.Error{
		Type:    compilationErrorType,
		Message: fmt.Sprintf(format, args...),
		Context: *diag.NewContext(cp.src.Name, cp.src.Code, r)})
}

// GetCompilationError returns a *CompilationError if the given value is a
// compilation error. Otherwise it returns nil.
func GetCompilationError(e any) *CompilationError {
	if e, ok := e.(*diag.Error); ok && e.Type == compilationErrorType {
		return e
	}
	return nil
}

func (cp *compiler) op(r diag.Ranger, body opBody) Op {
	return Op{body, cp.src, r.Range()}
}

func (cp *compiler) compile(n parse.Node) Op {
	switch n := n.(type) {
	case *parse.Atom:
		if name, ok := n.Value.(vals.Symbol); ok {
			return cp.op(n, varOp{string(name)})
		}
		return cp.op(n, constOp{n.Value})
	case *parse.List:
		if len(n.Elems) == 0 {
			return cp.op(n, constOp{vals.EmptyList})
		}
		if head, ok := parse.HeadSymbol(n); ok {
			if compileSpecial, ok := builtinSpecials[head]; ok {
				return compileSpecial(cp, n)
			}
		}
		return cp.applyOp(n)
	}
	panic(fmt.Sprintf("unknown node type %T", n))
}

func (cp *compiler) compileAll(ns []parse.Node) []Op {
	ops := make([]Op, len(ns))
	for i, n := range ns {
		ops[i] = cp.compile(n)
	}
	return ops
}

func (cp *compiler) applyOp(l *parse.List) Op {
	return cp.op(l, &applyOp{cp.compile(l.Elems[0]), cp.compileAll(l.Elems[1:])})
}

// Compiles a non-empty sequence of expressions. A single expression is
// compiled on its own.
func (cp *compiler) seqOp(r diag.Ranger, ns []parse.Node) Op {
	if len(ns) == 1 {
		return cp.compile(ns[0])
	}
	return cp.op(r, seqOp{cp.compileAll(ns)})
}
