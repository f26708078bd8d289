package eval

// Special forms. A list whose head is the name of a special form is analyzed
// by the corresponding function below instead of being compiled to an
// application. Special forms take precedence over variables of the same name.
//
// The "and", "or" and "delay" forms are rewritten to other special forms
// before analysis.

import (
	"github.com/nickdrozd/right-to-leftsp/pkg/eval/vals"
	"github.com/nickdrozd/right-to-leftsp/pkg/parse"
)

type compileBuiltin func(*compiler, *parse.List) Op

var builtinSpecials map[vals.Symbol]compileBuiltin

// IsBuiltinSpecial is the set of all names of special forms. It is intended
// for external consumption, e.g. completion in the language server.
var IsBuiltinSpecial = map[string]bool{}

func init() {
	// Needed to avoid initialization loop
	builtinSpecials = map[vals.Symbol]compileBuiltin{
		"quote": compileQuote,
		"if":    compileIf,
		"and":   compileAnd,
		"or":    compileOr,
		"def":   compileDef,
		"set!":  compileSet,
		"fun":   compileFun,
		"begin": compileBegin,
		"delay": compileDelay,
	}
	for name := range builtinSpecials {
		IsBuiltinSpecial[string(name)] = true
	}
}

// QuoteForm = '(' 'quote' Expression ')'
func compileQuote(cp *compiler, l *parse.List) Op {
	if len(l.Elems) != 2 {
		cp.errorpf(l, "quote needs exactly 1 expression, got %d", len(l.Elems)-1)
	}
	return cp.op(l, constOp{parse.Datum(l.Elems[1])})
}

// IfForm = '(' 'if' Test Then [ Else ] ')'
func compileIf(cp *compiler, l *parse.List) Op {
	if len(l.Elems) != 3 && len(l.Elems) != 4 {
		cp.errorpf(l, "if needs 2 or 3 expressions, got %d", len(l.Elems)-1)
	}
	els := cp.op(l, constOp{false})
	if len(l.Elems) == 4 {
		els = cp.compile(l.Elems[3])
	}
	return cp.op(l, &ifOp{cp.compile(l.Elems[1]), cp.compile(l.Elems[2]), els})
}

// (and) is #t; (and E rest...) is (if E (and rest...) #f).
func compileAnd(cp *compiler, l *parse.List) Op {
	return cp.compile(rewriteAnd(l, l.Elems[1:]))
}

func rewriteAnd(l *parse.List, args []parse.Node) parse.Node {
	if len(args) == 0 {
		return &parse.Atom{Ranging: l.Range(), Value: true}
	}
	return parse.NewList(l, parse.NewSymbol(l, "if"),
		args[0], rewriteAnd(l, args[1:]), &parse.Atom{Ranging: l.Range(), Value: false})
}

// (or) is #f; (or E rest...) is (if E #t (or rest...)).
func compileOr(cp *compiler, l *parse.List) Op {
	return cp.compile(rewriteOr(l, l.Elems[1:]))
}

func rewriteOr(l *parse.List, args []parse.Node) parse.Node {
	if len(args) == 0 {
		return &parse.Atom{Ranging: l.Range(), Value: false}
	}
	return parse.NewList(l, parse.NewSymbol(l, "if"),
		args[0], &parse.Atom{Ranging: l.Range(), Value: true}, rewriteOr(l, args[1:]))
}

// DefForm = '(' 'def' Symbol Expression ')'
func compileDef(cp *compiler, l *parse.List) Op {
	name := cp.bindingForm(l)
	return cp.op(l, &defOp{name, cp.compile(l.Elems[2])})
}

// SetForm = '(' 'set!' Symbol Expression ')'
func compileSet(cp *compiler, l *parse.List) Op {
	name := cp.bindingForm(l)
	return cp.op(l, &setOp{name, cp.compile(l.Elems[2])})
}

func (cp *compiler) bindingForm(l *parse.List) string {
	head, _ := parse.HeadSymbol(l)
	if len(l.Elems) != 3 {
		cp.errorpf(l, "%s needs a symbol and an expression, got %d expressions",
			head, len(l.Elems)-1)
	}
	name, ok := parse.Symbol(l.Elems[1])
	if !ok {
		cp.errorpf(l.Elems[1], "%s needs a symbol, got %s", head, parse.String(l.Elems[1]))
	}
	return string(name)
}

// FunForm = '(' 'fun' '(' { Symbol } ')' Expression { Expression } ')'
func compileFun(cp *compiler, l *parse.List) Op {
	if len(l.Elems) < 3 {
		cp.errorpf(l, "fun needs a parameter list and a body")
	}
	paramList, ok := l.Elems[1].(*parse.List)
	if !ok {
		cp.errorpf(l.Elems[1], "parameters of fun must be a list, got %s", parse.String(l.Elems[1]))
	}
	params := make([]string, len(paramList.Elems))
	seen := make(map[vals.Symbol]bool)
	for i, p := range paramList.Elems {
		name, ok := parse.Symbol(p)
		if !ok {
			cp.errorpf(p, "parameter must be a symbol, got %s", parse.String(p))
		}
		if seen[name] {
			cp.errorpf(p, "duplicate parameter %s", name)
		}
		seen[name] = true
		params[i] = string(name)
	}
	return cp.op(l, &funOp{params, cp.seqOp(l, l.Elems[2:])})
}

// BeginForm = '(' 'begin' { Expression } ')'
func compileBegin(cp *compiler, l *parse.List) Op {
	if len(l.Elems) == 1 {
		return cp.op(l, constOp{false})
	}
	return cp.seqOp(l, l.Elems[1:])
}

// (delay E) is (fun () E).
func compileDelay(cp *compiler, l *parse.List) Op {
	if len(l.Elems) != 2 {
		cp.errorpf(l, "delay needs exactly 1 expression, got %d", len(l.Elems)-1)
	}
	return cp.compile(parse.NewList(l,
		parse.NewSymbol(l, "fun"), parse.NewList(l), l.Elems[1]))
}
