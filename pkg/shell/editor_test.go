package shell

import (
	"slices"
	"testing"

	"github.com/nickdrozd/right-to-leftsp/pkg/eval"
	"github.com/nickdrozd/right-to-leftsp/pkg/store"
	. "github.com/nickdrozd/right-to-leftsp/pkg/tt"
)

func TestWordStart(t *testing.T) {
	Test(t, Fn("wordStart", wordStart), Table{
		Args("").Rets(0),
		Args("car").Rets(0),
		Args("(car").Rets(1),
		Args("(+ 1 fo").Rets(5),
		Args("$(x 'sy").Rets(5),
		Args("[a {b").Rets(4),
		Args("(a ").Rets(3),
	})
}

func TestUnclosed(t *testing.T) {
	Test(t, Fn("unclosed", unclosed), Table{
		Args("").Rets(false),
		Args("(+ 1 2)").Rets(false),
		Args("(+ 1").Rets(true),
		Args("[{(").Rets(true),
		Args("(a))").Rets(false),
		Args("(def x\n  (fun (y)").Rets(true),
	})
}

func TestCompleter(t *testing.T) {
	ev := eval.NewEvaler()
	ev.Global.Define("defun", 1.0)
	complete := completer(ev)

	head, completions, tail := complete("(de x)", 3)
	if head != "(" || tail != " x)" {
		t.Errorf("got head %q tail %q", head, tail)
	}
	want := []string{"def", "defun", "delay"}
	if !slices.Equal(completions, want) {
		t.Errorf("got completions %v, want %v", completions, want)
	}

	_, completions, _ = complete("(nu", 3)
	if !slices.Equal(completions, []string{"null?", "number?"}) {
		t.Errorf("got completions %v", completions)
	}

	_, completions, _ = complete("(zzz", 4)
	if len(completions) != 0 {
		t.Errorf("got completions %v, want none", completions)
	}
}

func TestRecentCmds(t *testing.T) {
	if cmds := recentCmds(nil, 10); cmds != nil {
		t.Errorf("got %v from nil store", cmds)
	}

	st := store.MustTempStore(t)
	for _, code := range []string{"1", "2", "3"} {
		st.AddCmd(code)
	}
	if cmds := recentCmds(st, 2); !slices.Equal(cmds, []string{"2", "3"}) {
		t.Errorf("got %v, want [2 3]", cmds)
	}
	if cmds := recentCmds(st, 10); !slices.Equal(cmds, []string{"1", "2", "3"}) {
		t.Errorf("got %v, want [1 2 3]", cmds)
	}
}

func TestAddCmd(t *testing.T) {
	st := store.MustTempStore(t)
	for _, code := range []string{"1", "1", "(+ 1\n2)", "1", "1"} {
		addCmd(st, code)
	}
	if cmds := recentCmds(st, 10); !slices.Equal(cmds, []string{"1", "(+ 1\n2)", "1"}) {
		t.Errorf("got %v, want repeated inputs stored once", cmds)
	}
}
