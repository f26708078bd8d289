// Package lib contains the example library, a collection of programs that can
// be preloaded into an interpreter.
package lib

import (
	"embed"

	"github.com/nickdrozd/right-to-leftsp/pkg/eval"
	"github.com/nickdrozd/right-to-leftsp/pkg/parse"
)

//go:embed *.rtl
var files embed.FS

// Names of the library files, in the order they are loaded.
var Names = []string{"arithmetic.rtl", "recursion.rtl", "church.rtl"}

// Source returns the source of a library file.
func Source(name string) (parse.Source, error) {
	code, err := files.ReadFile(name)
	if err != nil {
		return parse.Source{}, err
	}
	return parse.Source{Name: "[lib/" + name + "]", Code: string(code)}, nil
}

// Load evaluates all library files in the global environment of ev.
func Load(ev *eval.Evaler) error {
	for _, name := range Names {
		src, err := Source(name)
		if err != nil {
			return err
		}
		if _, err := ev.Eval(src); err != nil {
			return err
		}
	}
	return nil
}
