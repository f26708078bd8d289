//go:build unix

package sys

import (
	"testing"

	"github.com/creack/pty"
	"github.com/nickdrozd/right-to-leftsp/pkg/must"
)

func TestIsATTY(t *testing.T) {
	p, tty, err := pty.Open()
	if err != nil {
		t.Skip("cannot open pty:", err)
	}
	defer p.Close()
	defer tty.Close()

	if !IsATTY(tty.Fd()) {
		t.Errorf("IsATTY(tty) -> false")
	}

	r, w := must.Pipe()
	defer r.Close()
	defer w.Close()
	if IsATTY(r.Fd()) {
		t.Errorf("IsATTY(pipe) -> true")
	}
}

func TestWinSize(t *testing.T) {
	p, tty, err := pty.Open()
	if err != nil {
		t.Skip("cannot open pty:", err)
	}
	defer p.Close()
	defer tty.Close()

	must.OK(pty.Setsize(tty, &pty.Winsize{Rows: 30, Cols: 100}))
	if row, col := WinSize(tty); row != 30 || col != 100 {
		t.Errorf("WinSize(tty) -> (%d, %d), want (30, 100)", row, col)
	}
	if w := TermWidth(tty); w != 100 {
		t.Errorf("TermWidth(tty) -> %d, want 100", w)
	}

	r, w := must.Pipe()
	defer r.Close()
	defer w.Close()
	if row, col := WinSize(r); row != -1 || col != -1 {
		t.Errorf("WinSize(pipe) -> (%d, %d), want (-1, -1)", row, col)
	}
	if w := TermWidth(r); w != 0 {
		t.Errorf("TermWidth(pipe) -> %d, want 0", w)
	}
}
