package shell

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nickdrozd/right-to-leftsp/pkg/diag"
	"github.com/nickdrozd/right-to-leftsp/pkg/eval"
	"github.com/nickdrozd/right-to-leftsp/pkg/fsutil"
	"github.com/nickdrozd/right-to-leftsp/pkg/parse"
	"github.com/nickdrozd/right-to-leftsp/pkg/store"
	"github.com/nickdrozd/right-to-leftsp/pkg/store/storedefs"
	"github.com/nickdrozd/right-to-leftsp/pkg/sys"
	"github.com/peterh/liner"
)

// Prompt shown while the brackets of the input are not yet balanced.
const continuationPrompt = "... "

// Number of history entries loaded into the line editor.
const historySize = 1000

// InteractConfig keeps configuration for the interactive mode.
type InteractConfig struct {
	Evaler *eval.Evaler
	Prompt string
	// Path of the history database. Empty disables history.
	History string
}

// Interact runs an interactive REPL session until the input is exhausted.
func Interact(fds [3]*os.File, cfg *InteractConfig) {
	ev := cfg.Evaler
	st := openHistory(fds[2], cfg.History)
	if st != nil {
		defer st.Close()
	}

	var ed editor
	if sys.IsATTY(fds[0].Fd()) {
		ed = newLineEditor(ev, recentCmds(st, historySize))
	} else {
		ed = newMinEditor(fds[0], fds[2])
	}
	defer func() { ed.Close() }()

	cooldown := time.Second
	cmdNum := 0
	pending := ""

	for {
		prompt := cfg.Prompt
		if pending != "" {
			prompt = continuationPrompt
		}
		line, err := ed.ReadCode(prompt)

		if err == io.EOF {
			if pending != "" {
				// Show the bracket error for the incomplete input.
				cmdNum++
				runCode(ev, fds, cmdNum, pending)
			}
			break
		} else if errors.Is(err, liner.ErrPromptAborted) {
			pending = ""
			continue
		} else if err != nil {
			fmt.Fprintln(fds[2], "Editor error:", err)
			if _, isMinEditor := ed.(*minEditor); !isMinEditor {
				fmt.Fprintln(fds[2], "Falling back to basic line editor")
				ed.Close()
				ed = newMinEditor(fds[0], fds[2])
			} else {
				fmt.Fprintln(fds[2], "Restarting editor in", cooldown)
				time.Sleep(cooldown)
				if cooldown < time.Minute {
					cooldown *= 2
				}
			}
			continue
		}

		// No error; reset cooldown.
		cooldown = time.Second

		if pending == "" && strings.TrimSpace(line) == "" {
			continue
		}
		code := line
		if pending != "" {
			code = pending + "\n" + line
		}
		if unclosed(code) {
			pending = code
			continue
		}
		pending = ""

		cmdNum++
		ed.AddHistory(code)
		if st != nil {
			addCmd(st, code)
		}
		runCode(ev, fds, cmdNum, code)
	}
}

func runCode(ev *eval.Evaler, fds [3]*os.File, cmdNum int, code string) {
	src := parse.Source{Name: fmt.Sprintf("[tty %v]", cmdNum), Code: code}
	if err := evalAndShow(ev, fds, src); err != nil {
		diag.ShowError(fds[2], err)
	}
}

// Reports whether code has more opening brackets than closing ones, in which
// case the REPL keeps reading.
func unclosed(code string) bool {
	depth := 0
	for _, r := range code {
		if parse.IsOpener(r) {
			depth++
		} else if parse.IsCloser(r) {
			depth--
		}
	}
	return depth > 0
}

// Opens the history database at path, creating its directory if needed. It
// returns nil if path is empty or the database can't be opened.
func openHistory(stderr io.Writer, path string) store.DBStore {
	if path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		fmt.Fprintf(stderr, "Warning: cannot create directory for history %s: %v\n",
			fsutil.TildeAbbr(filepath.Dir(path)), err)
		return nil
	}
	st, err := store.NewStore(path)
	if err != nil {
		fmt.Fprintf(stderr, "Warning: cannot open history %s: %v\n",
			fsutil.TildeAbbr(path), err)
		return nil
	}
	return st
}

// Adds code to st, unless it repeats the last input.
func addCmd(st storedefs.Store, code string) {
	if last, err := st.PrevCmd(math.MaxInt, ""); err == nil && last.Text == code {
		return
	}
	if _, err := st.AddCmd(code); err != nil {
		logger.Println("cannot add input to history:", err)
	}
}

// Returns the texts of the last n inputs in st, oldest first.
func recentCmds(st storedefs.Store, n int) []string {
	if st == nil {
		return nil
	}
	next, err := st.NextCmdSeq()
	if err != nil {
		logger.Println("cannot read history:", err)
		return nil
	}
	cmds, err := st.CmdsWithSeq(max(next-n, 0), next)
	if err != nil {
		logger.Println("cannot read history:", err)
		return nil
	}
	texts := make([]string, len(cmds))
	for i, cmd := range cmds {
		texts[i] = cmd.Text
	}
	return texts
}
