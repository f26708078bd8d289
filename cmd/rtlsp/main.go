// Rtlsp is an interpreter for a small Lisp that can be written right to left.
// Lists prefixed with $ are read in reverse. It runs scripts, an interactive
// REPL and a language server.
package main

import (
	"os"

	"github.com/nickdrozd/right-to-leftsp/pkg/buildinfo"
	"github.com/nickdrozd/right-to-leftsp/pkg/lsp"
	"github.com/nickdrozd/right-to-leftsp/pkg/prog"
	"github.com/nickdrozd/right-to-leftsp/pkg/shell"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		prog.Composite(buildinfo.Program, &lsp.Program{}, &shell.Program{})))
}
