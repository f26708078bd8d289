package parse

import (
	"strings"
	"unicode"

	"github.com/nickdrozd/right-to-leftsp/pkg/diag"
)

// TokenType is the type of a Token.
type TokenType int

// Possible values for TokenType.
const (
	Literal TokenType = iota
	Open
	Close
	Reverse
	Quote
)

func (t TokenType) String() string {
	switch t {
	case Literal:
		return "literal"
	case Open:
		return "opening bracket"
	case Close:
		return "closing bracket"
	case Reverse:
		return "reversal marker"
	case Quote:
		return "quote marker"
	default:
		return "unknown token"
	}
}

// Characters with special meaning to the tokenizer. The three bracket families
// are interchangeable.
const (
	openers      = "([{"
	closers      = ")]}"
	reverserChar = '$'
	quoterChar   = '\''
)

// IsOpener reports whether r opens a list.
func IsOpener(r rune) bool { return strings.ContainsRune(openers, r) }

// IsCloser reports whether r closes a list.
func IsCloser(r rune) bool { return strings.ContainsRune(closers, r) }

// Token is a unit of source text. Tokens never carry nested structure.
type Token struct {
	Type TokenType
	Text string
	diag.Ranging
}

// Tokenize splits source code into tokens. Every bracket and reader macro
// character becomes a token of its own, maximal runs of other non-whitespace
// characters become literal tokens, and whitespace is discarded. Malformed
// nesting is not detected here.
func Tokenize(code string) []Token {
	var tokens []Token
	literalStart := -1
	flushLiteral := func(end int) {
		if literalStart != -1 {
			tokens = append(tokens, Token{Literal, code[literalStart:end],
				diag.Ranging{From: literalStart, To: end}})
			literalStart = -1
		}
	}
	for i, r := range code {
		t, special := specialTokenType(r)
		switch {
		case special:
			flushLiteral(i)
			// Special characters are all ASCII.
			tokens = append(tokens, Token{t, code[i : i+1],
				diag.Ranging{From: i, To: i + 1}})
		case unicode.IsSpace(r):
			flushLiteral(i)
		case literalStart == -1:
			literalStart = i
		}
	}
	flushLiteral(len(code))
	return tokens
}

// IsDelimiter reports whether r ends a literal.
func IsDelimiter(r rune) bool {
	_, special := specialTokenType(r)
	return special || unicode.IsSpace(r)
}

func specialTokenType(r rune) (TokenType, bool) {
	switch {
	case IsOpener(r):
		return Open, true
	case IsCloser(r):
		return Close, true
	case r == reverserChar:
		return Reverse, true
	case r == quoterChar:
		return Quote, true
	}
	return Literal, false
}
