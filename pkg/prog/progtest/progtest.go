// Package progtest contains utilities for testing [prog.Program]
// implementations.
//
// Test cases are constructed with That, which takes the command-line
// arguments (not including the program name), followed by method calls
// describing the expected outcome:
//
//	Test(t, program,
//	    That("-c", "(+ 1 2)").WritesStdout("▶ 3\n"),
//	    That("-bad-flag").ExitsWith(2).WritesStderrContaining("bad-flag"))
package progtest

import (
	"io"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/nickdrozd/right-to-leftsp/pkg/must"
	"github.com/nickdrozd/right-to-leftsp/pkg/prog"
)

// Case is a test case that can be used in Test.
type Case struct {
	args  []string
	stdin string
	want  result
}

type result struct {
	exitCode int
	stdout   output
	stderr   output
}

type output struct {
	content string
	partial bool
	noCheck bool
}

func (o output) String() string {
	if o.partial {
		return "text containing " + quote(o.content)
	}
	return quote(o.content)
}

func (o output) matches(s string) bool {
	if o.noCheck {
		return true
	} else if o.partial {
		return strings.Contains(s, o.content)
	}
	return s == o.content
}

// That returns a new Case with the given command-line arguments. By default,
// the Case expects the program to exit with 0 and write nothing to stdout or
// stderr.
func That(args ...string) Case {
	return Case{args: args}
}

// WithStdin returns an altered Case that provides the given input to the
// program.
func (c Case) WithStdin(s string) Case {
	c.stdin = s
	return c
}

// ExitsWith returns an altered Case that requires the program to return with
// the given exit code.
func (c Case) ExitsWith(code int) Case {
	c.want.exitCode = code
	return c
}

// WritesStdout returns an altered Case that requires the program to write
// exactly the given text to stdout.
func (c Case) WritesStdout(s string) Case {
	c.want.stdout = output{content: s}
	return c
}

// WritesStdoutContaining returns an altered Case that requires the program to
// write output to stdout that contains the given text as a substring.
func (c Case) WritesStdoutContaining(s string) Case {
	c.want.stdout = output{content: s, partial: true}
	return c
}

// WritesStderr returns an altered Case that requires the program to write
// exactly the given text to stderr.
func (c Case) WritesStderr(s string) Case {
	c.want.stderr = output{content: s}
	return c
}

// WritesStderrContaining returns an altered Case that requires the program to
// write output to stderr that contains the given text as a substring.
func (c Case) WritesStderrContaining(s string) Case {
	c.want.stderr = output{content: s, partial: true}
	return c
}

// IgnoresStderr returns an altered Case that does not check stderr.
func (c Case) IgnoresStderr() Case {
	c.want.stderr = output{noCheck: true}
	return c
}

// Test runs test cases against a given program.
func Test(t *testing.T, p prog.Program, cases ...Case) {
	t.Helper()
	for _, c := range cases {
		t.Run(strings.Join(c.args, " "), func(t *testing.T) {
			t.Helper()
			exit, stdout, stderr := Run(p, c.stdin, c.args...)
			if exit != c.want.exitCode {
				t.Errorf("got exit code %v, want %v", exit, c.want.exitCode)
			}
			if !c.want.stdout.matches(stdout) {
				t.Errorf("got stdout %v, want %v", quote(stdout), c.want.stdout)
			}
			if !c.want.stderr.matches(stderr) {
				t.Errorf("got stderr %v, want %v", quote(stderr), c.want.stderr)
			}
		})
	}
}

// Run runs a Program with the given stdin and arguments, and returns its exit
// code, stdout and stderr.
func Run(p prog.Program, stdin string, args ...string) (exit int, stdout, stderr string) {
	r0, w0 := must.Pipe()
	r1, w1 := must.Pipe()
	r2, w2 := must.Pipe()

	go func() {
		io.WriteString(w0, stdin)
		w0.Close()
	}()
	outCh := readAllAsync(r1)
	errCh := readAllAsync(r2)

	exit = prog.Run([3]*os.File{r0, w1, w2}, append([]string{"rtlsp"}, args...), p)
	r0.Close()
	w1.Close()
	w2.Close()
	return exit, <-outCh, <-errCh
}

func readAllAsync(r *os.File) <-chan string {
	ch := make(chan string, 1)
	go func() {
		ch <- string(must.OK1(io.ReadAll(r)))
		r.Close()
	}()
	return ch
}

func quote(s string) string { return strconv.Quote(s) }
