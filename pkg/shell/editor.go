package shell

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/nickdrozd/right-to-leftsp/pkg/eval"
	"github.com/nickdrozd/right-to-leftsp/pkg/parse"
	"github.com/peterh/liner"
)

// This type is the interface that the line editor has to satisfy.
type editor interface {
	ReadCode(prompt string) (string, error)
	AddHistory(code string)
	Close() error
}

// The editor used when the input is not a terminal. It reads one line at a
// time and writes the prompt to out.
type minEditor struct {
	in  *bufio.Reader
	out io.Writer
}

func newMinEditor(in, out *os.File) *minEditor {
	return &minEditor{bufio.NewReader(in), out}
}

func (ed *minEditor) ReadCode(prompt string) (string, error) {
	fmt.Fprint(ed.out, prompt)
	line, err := ed.in.ReadString('\n')
	if err == io.EOF && line != "" {
		// The last line has no line ending; io.EOF is returned again on the
		// next call.
		err = nil
	}
	return strings.TrimRight(line, "\r\n"), err
}

func (ed *minEditor) AddHistory(string) {}

func (ed *minEditor) Close() error { return nil }

// The editor used when the input is a terminal, with history and completion
// of names.
type lineEditor struct {
	*liner.State
}

func newLineEditor(ev *eval.Evaler, history []string) *lineEditor {
	st := liner.NewLiner()
	st.SetCtrlCAborts(true)
	st.SetTabCompletionStyle(liner.TabPrints)
	st.SetWordCompleter(completer(ev))
	for _, code := range history {
		st.AppendHistory(code)
	}
	return &lineEditor{st}
}

func (ed *lineEditor) ReadCode(prompt string) (string, error) {
	return ed.Prompt(prompt)
}

func (ed *lineEditor) AddHistory(code string) { ed.AppendHistory(code) }

// Returns a word completer for liner that completes special forms and the
// names visible in the global environment of ev.
func completer(ev *eval.Evaler) liner.WordCompleter {
	return func(line string, pos int) (string, []string, string) {
		// pos counts codepoints.
		runes := []rune(line)
		head, tail := string(runes[:pos]), string(runes[pos:])
		start := wordStart(head)
		word := head[start:]
		return head[:start], complete(ev, word), tail
	}
}

func complete(ev *eval.Evaler, prefix string) []string {
	var candidates []string
	for name := range eval.IsBuiltinSpecial {
		if strings.HasPrefix(name, prefix) {
			candidates = append(candidates, name)
		}
	}
	for _, name := range ev.Names() {
		if strings.HasPrefix(name, prefix) && !eval.IsBuiltinSpecial[name] {
			candidates = append(candidates, name)
		}
	}
	sort.Strings(candidates)
	return candidates
}

// Returns the index where the word ending at the end of s starts.
func wordStart(s string) int {
	return strings.LastIndexFunc(s, parse.IsDelimiter) + 1
}
