package eval_test

import (
	"math"
	"testing"

	"github.com/nickdrozd/right-to-leftsp/pkg/eval"
	"github.com/nickdrozd/right-to-leftsp/pkg/eval/errs"
	. "github.com/nickdrozd/right-to-leftsp/pkg/eval/evaltest"
	"github.com/nickdrozd/right-to-leftsp/pkg/eval/vals"
)

func TestEval_ReversalExamples(t *testing.T) {
	Test(t,
		That("(* (+ 3 4) (+ 5 6))").Puts(77.0),
		That("$((6 5 +) (4 3 +) *)").Puts(77.0),
		That("(* (+ 3 4) $(6 5 +))").Puts(77.0),
		That("[* {+ 3 4} (+ 5 6)]").Puts(77.0),
		That("$(3 ((x x *) (x) fun))").Puts(9.0),
	)
}

func TestEval_Atoms(t *testing.T) {
	Test(t,
		That("1 -2.5 0x10").Puts(1.0, -2.5, 16.0),
		That("#t #f").Puts(true, false),
		That("()").Puts(Repr("()")),
		That("+").Puts(Repr("<primitive +>")),
		That("nil").Puts(Repr("()")),
	)
}

func TestQuote(t *testing.T) {
	Test(t,
		That("(quote x)").Puts(vals.Symbol("x")),
		That("'x").Puts(vals.Symbol("x")),
		That("'(a (b 1))").Puts(Repr("(a (b 1))")),
		That("'$(1 2)").Puts(Repr("(2 1)")),
		That("(quote)").DoesNotCompile("quote needs exactly 1 expression, got 0"),
		That("(quote a b)").DoesNotCompile(),
	)
}

func TestIf(t *testing.T) {
	Test(t,
		That("(if #t 1 2)").Puts(1.0),
		That("(if #f 1 2)").Puts(2.0),
		// Only #f is false.
		That("(if 0 1 2)").Puts(1.0),
		That("(if () 1 2)").Puts(1.0),
		That("(if 'x 1 2)").Puts(1.0),
		That("(if #f 1)").Puts(false),
		// Only the chosen branch is evaluated.
		That("(if #t 1 undefined)").Puts(1.0),
		That("(if)").DoesNotCompile("if needs 2 or 3 expressions, got 0"),
		That("(if 1 2 3 4)").DoesNotCompile(),
	)
}

func TestAndOr(t *testing.T) {
	Test(t,
		That("(and)").Puts(true),
		That("(or)").Puts(false),
		That("(and 1 2)").Puts(true),
		That("(and 1 #f)").Puts(false),
		That("(or #f 3)").Puts(true),
		That("(or #f #f)").Puts(false),
		That("(and #f (def sideeffect 1))", "sideeffect").
			Puts(false).Throws(errs.UnboundVariable{Name: "sideeffect"}),
		That("(or #t (def sideeffect 1))", "sideeffect").
			Puts(true).Throws(errs.UnboundVariable{Name: "sideeffect"}),
	)
}

func TestDefSet(t *testing.T) {
	Test(t,
		That("(def x 1)", "x").Puts(1.0, 1.0),
		That("(def x 1) (def x 2) x").Puts(1.0, 2.0, 2.0),
		That("(def x 1) (set! x 2) x").Puts(1.0, 2.0, 2.0),
		That("(set! y 1)").Throws(errs.UnboundVariable{Name: "y"}),
		That("y").Throws(errs.UnboundVariable{Name: "y"}),
		That("(def x 5) (def f (fun () x)) (set! x 6) (f)").
			Puts(5.0, Repr("<fun ()>"), 6.0, 6.0),
		// set! updates the frame where the name is found.
		That("(def x 1) (def f (fun () (set! x 2))) (f) x").
			Puts(1.0, AnyValue, 2.0, 2.0),
		// def inside a function body binds locally.
		That("(def x 1) (def f (fun () (begin (def x 2) x))) (f) x").
			Puts(1.0, AnyValue, 2.0, 1.0),
		That("(def 1 2)").DoesNotCompile("def needs a symbol, got 1"),
		// Tokens with digit separators are symbols.
		That("1_000").Throws(errs.UnboundVariable{Name: "1_000"}),
		That("(def 0x1_0 5) 0x1_0").Puts(5.0, 5.0),
		That("(def x)").DoesNotCompile(),
		That("(set! x 1 2)").DoesNotCompile(),
	)
}

func TestFun(t *testing.T) {
	Test(t,
		That("(fun (x y) x)").Puts(Repr("<fun (x y)>")),
		That("((fun (x y) (- x y)) 5 3)").Puts(2.0),
		That("((fun () 1 2 3))").Puts(3.0),
		That("(def add (fun (n) (fun (x) (+ x n)))) ((add 2) 3)").
			Puts(AnyValue, 5.0),
		That("((fun (x) x))").Throws(errs.ArityMismatch{
			What: "arguments", ValidLow: 1, ValidHigh: 1, Actual: 0}),
		That("(fun x x)").DoesNotCompile("parameters of fun must be a list, got x"),
		That("(fun (x 1) x)").DoesNotCompile("parameter must be a symbol, got 1"),
		That("(fun (x x) x)").DoesNotCompile("duplicate parameter x"),
		That("(fun (x))").DoesNotCompile("fun needs a parameter list and a body"),
	)
}

func TestBeginDelay(t *testing.T) {
	Test(t,
		That("(begin)").Puts(false),
		That("(begin 1 2 3)").Puts(3.0),
		That("((delay (+ 1 2)))").Puts(3.0),
		That("(def p (delay undefined)) 1").Puts(AnyValue, 1.0),
		That("(delay)").DoesNotCompile(),
	)
}

func TestApplication(t *testing.T) {
	Test(t,
		That("(1 2)").Throws(errs.ApplicationType{Kind: "number"}),
		That("('(1) 2)").Throws(errs.ApplicationType{Kind: "list"}),
		// Keywords take precedence over variables.
		That("(def if 3) (if #f 1 2)").Puts(3.0, 2.0),
		// The operator is dispatched on its value, not its name.
		That("(def + (fun (a b) 0)) (+ 1 2)").Puts(AnyValue, 0.0),
		That("(def add +) (add 1 2)").Puts(Repr("<primitive +>"), 3.0),
		That("((if #t * +) 2 3)").Puts(6.0),
		// Evaluation stops at the first error.
		That("1 x 2").Puts(1.0).Throws(errs.UnboundVariable{Name: "x"}),
	)
}

func TestY(t *testing.T) {
	Test(t,
		That(
			"(def Y (fun (f) ((fun (x) (f (fun (y) ((x x) y))))",
			"                 (fun (x) (f (fun (y) ((x x) y)))))))",
			"(def tri (fun (t) (fun (n) (if (< n 1) 0 (+ n (t (- n 1)))))))",
			"((Y tri) 9)").
			Puts(AnyValue, AnyValue, 45.0),
	)
}

func TestStackOverflow(t *testing.T) {
	Test(t,
		That("(def f (fun (n) (f n))) (f 1)").
			WithSetup(func(ev *eval.Evaler) { ev.SetMaxCallDepth(100) }).
			Puts(AnyValue).Throws(errs.StackOverflow{Depth: 100}),
		// The depth is restored after an error.
		That("(def f (fun (n) (if (< n 1) 0 (+ 1 (f (- n 1))))))", "(f 200)").
			Then("(f 50)").
			WithSetup(func(ev *eval.Evaler) { ev.SetMaxCallDepth(100) }).
			Puts(AnyValue, 50.0).Throws(errs.StackOverflow{Depth: 100}),
	)
}

func TestBuiltinFnNum(t *testing.T) {
	Test(t,
		That("(+) (+ 1) (+ 1 2 3)").Puts(0.0, 1.0, 6.0),
		That("(*) (* 2 3 4)").Puts(1.0, 24.0),
		That("(- 5) (- 10 1 2)").Puts(-5.0, 7.0),
		That("(/ 2) (/ 12 2 3)").Puts(0.5, 2.0),
		That("(/ 1 0)").Puts(math.Inf(1)),
		That("(< 1 2) (> 1 2) (<= 2 2) (>= 1 2)").Puts(true, false, true, false),
		That("(= 1 1) (= 'a 'a) (= '(1 2) '(1 2)) (= 1 'a)").
			Puts(true, true, true, false),
		That("(-)").Throws(errs.ArityMismatch{
			What: "arguments of -", ValidLow: 1, ValidHigh: -1, Actual: 0}),
		That("(< 1)").Throws(errs.ArityMismatch{
			What: "arguments of <", ValidLow: 2, ValidHigh: 2, Actual: 1}),
		That("(+ 1 'a)").Throws(errs.WrongType{
			What: "argument 2 of +", Want: "number", Actual: "symbol"}),
	)
}

func TestBuiltinFnList(t *testing.T) {
	Test(t,
		That("(list) (list 1 '(2))").Puts(Repr("()"), Repr("(1 (2))")),
		That("(cons 1 '(2 3))").Puts(Repr("(1 2 3)")),
		That("(cons 1 nil)").Puts(Repr("(1)")),
		That("(cons 1 2)").Puts(Repr("(1 2)")),
		That("(car '(1 2)) (cdr '(1 2 3))").Puts(1.0, Repr("(2 3)")),
		That("(cdr '(1))").Puts(Repr("()")),
		That("(car nil)").Throws(errs.WrongType{
			What: "argument 1 of car", Want: "non-empty list", Actual: "empty list"}),
		That("(cdr 1)").Throws(errs.WrongType{
			What: "argument 1 of cdr", Want: "non-empty list", Actual: "number"}),
		That("(null? nil) (null? '(1)) (null? 0)").Puts(true, false, false),
	)
}

func TestBuiltinFnPred(t *testing.T) {
	Test(t,
		That("(number? 1) (number? 'a)").Puts(true, false),
		That("(symbol? 'a) (boolean? #f) (list? nil)").Puts(true, true, true),
		That("(procedure? +) (procedure? (fun () 1)) (procedure? '+)").
			Puts(true, true, false),
		That("(not #f) (not 0) (not nil)").Puts(true, false, false),
	)
}

func TestEval_ParseError(t *testing.T) {
	Test(t,
		That("(+ 1").DoesNotParse(),
		That(")").DoesNotParse(),
	)
}
