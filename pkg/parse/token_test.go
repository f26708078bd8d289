package parse

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/nickdrozd/right-to-leftsp/pkg/diag"
)

func tok(t TokenType, text string, from int) Token {
	return Token{t, text, diag.Ranging{From: from, To: from + len(text)}}
}

var tokenizeTests = []struct {
	code string
	want []Token
}{
	{"", nil},
	{"  \n\t", nil},
	{"(+ 1 2)", []Token{
		tok(Open, "(", 0), tok(Literal, "+", 1), tok(Literal, "1", 3),
		tok(Literal, "2", 5), tok(Close, ")", 6)}},
	{"[a]{b}", []Token{
		tok(Open, "[", 0), tok(Literal, "a", 1), tok(Close, "]", 2),
		tok(Open, "{", 3), tok(Literal, "b", 4), tok(Close, "}", 5)}},
	{"$(x)", []Token{
		tok(Reverse, "$", 0), tok(Open, "(", 1), tok(Literal, "x", 2), tok(Close, ")", 3)}},
	{"'foo", []Token{tok(Quote, "'", 0), tok(Literal, "foo", 1)}},
	{"a$b'c", []Token{
		tok(Literal, "a", 0), tok(Reverse, "$", 1), tok(Literal, "b", 2),
		tok(Quote, "'", 3), tok(Literal, "c", 4)}},
	// Offsets are in bytes; U+00A0 takes two.
	{"set! #t\u00a0λx", []Token{
		tok(Literal, "set!", 0), tok(Literal, "#t", 5), tok(Literal, "λx", 9)}},
	{"λ (λ)", []Token{
		tok(Literal, "λ", 0), tok(Open, "(", 3), tok(Literal, "λ", 4), tok(Close, ")", 6)}},
}

func TestTokenize(t *testing.T) {
	for _, test := range tokenizeTests {
		got := Tokenize(test.code)
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Tokenize(%q) (-want +got):\n%s", test.code, diff)
		}
	}
}

func TestTokenType_String(t *testing.T) {
	for typ, want := range map[TokenType]string{
		Literal: "literal", Open: "opening bracket", Close: "closing bracket",
		Reverse: "reversal marker", Quote: "quote marker", TokenType(42): "unknown token",
	} {
		if got := typ.String(); got != want {
			t.Errorf("%d.String() -> %q, want %q", typ, got, want)
		}
	}
}

func TestIsDelimiter(t *testing.T) {
	for _, r := range " \t\n()[]{}$'" {
		if !IsDelimiter(r) {
			t.Errorf("IsDelimiter(%q) = false, want true", r)
		}
	}
	for _, r := range "a+?#-1." {
		if IsDelimiter(r) {
			t.Errorf("IsDelimiter(%q) = true, want false", r)
		}
	}
}
