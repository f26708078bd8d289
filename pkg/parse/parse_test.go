package parse

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/nickdrozd/right-to-leftsp/pkg/eval/vals"
)

func mustParse(t *testing.T, code string) []Node {
	t.Helper()
	nodes, err := Parse(Source{Name: "[test]", Code: code})
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", code, err)
	}
	return nodes
}

func reprs(nodes []Node) []string {
	s := make([]string, len(nodes))
	for i, n := range nodes {
		s[i] = String(n)
	}
	return s
}

var readTests = []struct {
	code string
	want []string
}{
	{"", []string{}},
	{"x", []string{"x"}},
	{"1 2.5 -3 #t #f", []string{"1", "2.5", "-3", "#t", "#f"}},
	{"(+ 1 2)", []string{"(+ 1 2)"}},
	{"()", []string{"()"}},
	{"(a (b (c)) d)", []string{"(a (b (c)) d)"}},
	{"(def x 1) (set! x 2) x", []string{"(def x 1)", "(set! x 2)", "x"}},
	{"$(a b c)", []string{"(c b a)"}},
	{"$(a (b c) d)", []string{"(d (c b) a)"}},
	{"$()", []string{"()"}},
	{"(x $(y z))", []string{"(x (z y))"}},
	{"'x", []string{"(quote x)"}},
	{"'(1 2)", []string{"(quote (1 2))"}},
	{"''x", []string{"(quote (quote x))"}},
	{"(car '(1 2))", []string{"(car (quote (1 2)))"}},
	{"'$(1 2)", []string{"(quote (2 1))"}},
	{"$('(1 2) car)", []string{"(car (quote (2 1)))"}},
	// The quote marker stays in front under reversal; a written-out quote
	// list is reversed like any other.
	{"$('x)", []string{"((quote x))"}},
	{"$((quote x))", []string{"((x quote))"}},
	{"$((6 5 +) (4 3 +) *)", []string{"(* (+ 3 4) (+ 5 6))"}},
	{"(* (+ 3 4) $(6 5 +))", []string{"(* (+ 3 4) (+ 5 6))"}},
}

func TestRead(t *testing.T) {
	for _, test := range readTests {
		got := reprs(mustParse(t, test.code))
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Parse(%q) (-want +got):\n%s", test.code, diff)
		}
	}
}

func TestRead_AtomKinds(t *testing.T) {
	nodes := mustParse(t, "42 #t #f foo 0x10 -")
	want := []any{42.0, true, false, vals.Symbol("foo"), 16.0, vals.Symbol("-")}
	for i, n := range nodes {
		a, ok := n.(*Atom)
		if !ok {
			t.Fatalf("node %d is %T, want *Atom", i, n)
		}
		if a.Value != want[i] {
			t.Errorf("node %d has value %v (%T), want %v (%T)", i, a.Value, a.Value, want[i], want[i])
		}
	}
}

func TestRead_BracketFamiliesAreInterchangeable(t *testing.T) {
	canonical := reprs(mustParse(t, "(+ 1 (* 2 3))"))
	for _, code := range []string{
		"[+ 1 [* 2 3]]",
		"{+ 1 {* 2 3}}",
		"{+ 1 [* 2 3)}",
		"(+ 1 (* 2 3]]",
		"[+ 1 {* 2 3)}",
	} {
		got := reprs(mustParse(t, code))
		if diff := cmp.Diff(canonical, got); diff != "" {
			t.Errorf("Parse(%q) (-canonical +got):\n%s", code, diff)
		}
	}
}

func TestDeepReverse_IsInvolution(t *testing.T) {
	for _, code := range []string{
		"(a b c)",
		"((a b) (c (d e)) f)",
		"(x '(1 2) y)",
		"()",
		"atom",
	} {
		plain := mustParse(t, code)[0]
		if strings.HasPrefix(code, "(") {
			reversed := mustParse(t, "$"+code)
			if got, want := String(DeepReverse(reversed[0])), String(plain); got != want {
				t.Errorf("DeepReverse($%s) -> %s, want %s", code, got, want)
			}
		}
		if got, want := String(DeepReverse(DeepReverse(plain))), String(plain); got != want {
			t.Errorf("DeepReverse twice of %s -> %s", want, got)
		}
	}
}

func TestRead_Ranges(t *testing.T) {
	nodes := mustParse(t, "(a $(b c) 'd)")
	l := nodes[0].(*List)
	if r := l.Range(); r.From != 0 || r.To != 13 {
		t.Errorf("outer list range %v", r)
	}
	rev := l.Elems[1].(*List)
	if r := rev.Range(); r.From != 3 || r.To != 9 || !rev.Reversed {
		t.Errorf("reversed list range %v, reversed %v", r, rev.Reversed)
	}
	q := l.Elems[2].(*List)
	if r := q.Range(); r.From != 10 || r.To != 12 || !q.QuoteMacro {
		t.Errorf("quote list range %v, quote macro %v", r, q.QuoteMacro)
	}
}

var errorTests = []struct {
	code    string
	wantMsg string
	from    int
}{
	{"(a b", "brackets unbalanced: 1 opening, 0 closing", 0},
	{"(a (b", "brackets unbalanced: 2 opening, 0 closing", 3},
	{"(a (b)", "brackets unbalanced: 2 opening, 1 closing", 0},
	{"a)", "brackets unbalanced: 0 opening, 1 closing", 1},
	{")(", "unexpected closing bracket", 0},
	{"$x", "reversal marker must be followed by a list", 0},
	{"($ x)", "reversal marker must be followed by a list", 1},
	{"$", "reversal marker must be followed by a list", 0},
	{"'", "quote marker must be followed by an expression", 0},
	{"(a ')", "quote marker must be followed by an expression", 3},
	{"$'(a)", "reversal marker must be followed by a list", 0},
}

func TestParse_Errors(t *testing.T) {
	for _, test := range errorTests {
		_, err := Parse(Source{Name: "[test]", Code: test.code})
		perr := GetError(err)
		if perr == nil {
			t.Errorf("Parse(%q) returns error %v, want syntax error", test.code, err)
			continue
		}
		if perr.Message != test.wantMsg || perr.Range().From != test.from {
			t.Errorf("Parse(%q) returns %q at %d, want %q at %d",
				test.code, perr.Message, perr.Range().From, test.wantMsg, test.from)
		}
	}
}

func TestRead_UnterminatedList(t *testing.T) {
	src := Source{Name: "[test]", Code: "(a (b"}
	_, err := Read(src, Tokenize(src.Code))
	perr := GetError(err)
	if perr == nil || perr.Message != "unterminated list" || perr.Range().From != 0 {
		t.Errorf("Read returns %v, want unterminated list at 0", err)
	}
}

func TestHeadSymbol(t *testing.T) {
	nodes := mustParse(t, "(def x 1) ((f) 2) () x")
	wants := []struct {
		sym vals.Symbol
		ok  bool
	}{{"def", true}, {"", false}, {"", false}, {"", false}}
	for i, n := range nodes {
		sym, ok := HeadSymbol(n)
		if sym != wants[i].sym || ok != wants[i].ok {
			t.Errorf("HeadSymbol(%s) -> %q, %v", String(n), sym, ok)
		}
	}
}
