package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/nickdrozd/right-to-leftsp/pkg/diag"
	"github.com/nickdrozd/right-to-leftsp/pkg/eval"
	"github.com/nickdrozd/right-to-leftsp/pkg/lib"
	"github.com/nickdrozd/right-to-leftsp/pkg/parse"
	"github.com/nickdrozd/right-to-leftsp/pkg/rc"
)

// InitRuntime creates an Evaler set up according to cfg, with the debug
// primitive, the example library and the preloaded files. Errors from loading
// files are shown on stderr and do not stop the initialization.
func InitRuntime(stderr io.Writer, cfg rc.Config) *eval.Evaler {
	ev := eval.NewEvaler()
	ev.SetMaxCallDepth(cfg.MaxCallDepth)
	ev.SetDebug(cfg.Debug)
	ev.AddBuiltin("debug", debugFn(ev))

	if cfg.Library {
		if err := lib.Load(ev); err != nil {
			diag.ShowError(stderr, err)
		}
	}
	for _, path := range cfg.Preload {
		if err := sourceFile(ev, path); err != nil {
			diag.ShowError(stderr, err)
		}
	}
	return ev
}

// Flips tracing and returns the new state.
func debugFn(ev *eval.Evaler) *eval.Primitive {
	return eval.NewPrimitive("debug", 0, 0, func([]any) (any, error) {
		ev.SetDebug(!ev.Debug())
		logger.Println("debug set to", ev.Debug())
		return ev.Debug(), nil
	})
}

func sourceFile(ev *eval.Evaler, path string) error {
	src, err := readSource(path)
	if err != nil {
		return err
	}
	_, err = ev.Eval(src)
	return err
}

func readSource(path string) (parse.Source, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return parse.Source{}, fmt.Errorf("cannot get full path of %q: %w", path, err)
	}
	code, err := readFileUTF8(absPath)
	if err != nil {
		return parse.Source{}, fmt.Errorf("cannot read %q: %w", absPath, err)
	}
	return parse.Source{Name: absPath, Code: code, IsFile: true}, nil
}

var errSourceNotUTF8 = errors.New("source is not UTF-8")

func readFileUTF8(fname string) (string, error) {
	bytes, err := os.ReadFile(fname)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(bytes) {
		return "", errSourceNotUTF8
	}
	return string(bytes), nil
}
