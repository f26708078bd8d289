// Package parse implements the reader.
//
// Reading happens in two steps. Tokenize splits source text into tokens,
// normalizing the three bracket families and the reader macro markers into
// tokens of their own. Read then assembles the tokens into expression trees,
// applying the reversal ($) and quote (') macros as it goes.
package parse

import (
	"errors"
	"fmt"

	"github.com/nickdrozd/right-to-leftsp/pkg/diag"
	"github.com/nickdrozd/right-to-leftsp/pkg/eval/vals"
)

const syntaxErrorType = "syntax error"

// Error is a syntax error.
type Error = diag.Error

// GetError returns the *Error if the given error is or wraps a syntax error.
// Otherwise it returns nil.
func GetError(e error) *Error {
	var err *Error
	if errors.As(e, &err) && err.Type == syntaxErrorType {
		return err
	}
	return nil
}

func newError(src Source, r diag.Ranger, format string, args ...any) *Error {
	return &Error{
		Type:    syntaxErrorType,
		Message: fmt.Sprintf(format, args...),
		Context: *diag.NewContext(src.Name, src.Code, r)}
}

// Parse reads all top-level expressions in src. It checks that the brackets
// are balanced by count before reading anything. The returned error, if not
// nil, is always an *Error.
func Parse(src Source) ([]Node, error) {
	if err := CheckBalance(src); err != nil {
		return nil, err
	}
	return Read(src, Tokenize(src.Code))
}

// CheckBalance checks that src has as many opening brackets as closing
// brackets. Bracket families are not distinguished.
func CheckBalance(src Source) error {
	var opens []int
	nOpen, nClose, firstExtraClose := 0, 0, -1
	for i, r := range src.Code {
		switch {
		case IsOpener(r):
			nOpen++
			opens = append(opens, i)
		case IsCloser(r):
			nClose++
			if len(opens) > 0 {
				opens = opens[:len(opens)-1]
			} else if firstExtraClose == -1 {
				firstExtraClose = i
			}
		}
	}
	switch {
	case nOpen > nClose:
		return newError(src, diag.Ranging{From: opens[len(opens)-1], To: len(src.Code)},
			"brackets unbalanced: %d opening, %d closing", nOpen, nClose)
	case nOpen < nClose:
		return newError(src, diag.Ranging{From: firstExtraClose, To: firstExtraClose + 1},
			"brackets unbalanced: %d opening, %d closing", nOpen, nClose)
	}
	return nil
}

// Read assembles tokens into a sequence of top-level expressions. It returns
// an empty sequence for an empty token sequence. The source is only used for
// error messages.
func Read(src Source, tokens []Token) ([]Node, error) {
	rd := &reader{src, tokens}
	nodes, err := rd.readSeq(0, len(tokens))
	if err != nil {
		return nil, err
	}
	if nodes == nil {
		nodes = []Node{}
	}
	return nodes, nil
}

type reader struct {
	src    Source
	tokens []Token
}

// Reads expressions from tokens[from:to] until the range is exhausted.
func (rd *reader) readSeq(from, to int) ([]Node, error) {
	var nodes []Node
	for i := from; i < to; {
		n, next, err := rd.readOne(i, to)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
		i = next
	}
	return nodes, nil
}

// Reads one expression starting at tokens[i], not going past tokens[to-1]. It
// returns the expression and the index of the token following it.
func (rd *reader) readOne(i, to int) (Node, int, error) {
	tok := rd.tokens[i]
	switch tok.Type {
	case Literal:
		return makeAtom(tok), i + 1, nil
	case Reverse:
		if i+1 >= to || rd.tokens[i+1].Type != Open {
			return nil, 0, newError(rd.src, tok, "%s must be followed by a list", tok.Type)
		}
		l, next, err := rd.readList(i+1, to)
		if err != nil {
			return nil, 0, err
		}
		rev := DeepReverse(l).(*List)
		rev.From = tok.From
		rev.Reversed = true
		return rev, next, nil
	case Quote:
		if i+1 >= to {
			return nil, 0, newError(rd.src, tok, "%s must be followed by an expression", tok.Type)
		}
		quoted, next, err := rd.readOne(i+1, to)
		if err != nil {
			return nil, 0, err
		}
		q := NewList(diag.MixedRanging(tok, quoted), NewSymbol(tok, "quote"), quoted)
		q.QuoteMacro = true
		return q, next, nil
	case Open:
		return rd.readList(i, to)
	default:
		return nil, 0, newError(rd.src, tok, "unexpected %s", tok.Type)
	}
}

// Reads the list opened at tokens[open].
func (rd *reader) readList(open, to int) (*List, int, error) {
	end := sublistEnd(rd.tokens[open:to])
	if end == -1 {
		return nil, 0, newError(rd.src, rd.tokens[open], "unterminated list")
	}
	closeAt := open + end
	elems, err := rd.readSeq(open+1, closeAt)
	if err != nil {
		return nil, 0, err
	}
	if elems == nil {
		elems = []Node{}
	}
	return NewList(diag.MixedRanging(rd.tokens[open], rd.tokens[closeAt]), elems...), closeAt + 1, nil
}

// Returns the index of the token closing the list opened by tokens[0], or -1
// if the tokens run out first. Any closer matches any opener.
func sublistEnd(tokens []Token) int {
	depth := 1
	for i := 1; i < len(tokens); i++ {
		switch tokens[i].Type {
		case Open:
			depth++
		case Close:
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func makeAtom(tok Token) *Atom {
	switch tok.Text {
	case "#t":
		return &Atom{tok.Ranging, true}
	case "#f":
		return &Atom{tok.Ranging, false}
	}
	if f, ok := vals.ParseNum(tok.Text); ok {
		return &Atom{tok.Ranging, f}
	}
	return &Atom{tok.Ranging, vals.Symbol(tok.Text)}
}
