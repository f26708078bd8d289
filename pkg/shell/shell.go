// Package shell is the entry point for the terminal interface of rtlsp: the
// script runner and the REPL.
package shell

import (
	"fmt"
	"os"

	"github.com/nickdrozd/right-to-leftsp/pkg/eval"
	"github.com/nickdrozd/right-to-leftsp/pkg/eval/vals"
	"github.com/nickdrozd/right-to-leftsp/pkg/logutil"
	"github.com/nickdrozd/right-to-leftsp/pkg/parse"
	"github.com/nickdrozd/right-to-leftsp/pkg/prog"
	"github.com/nickdrozd/right-to-leftsp/pkg/rc"
	"github.com/nickdrozd/right-to-leftsp/pkg/sys"
)

var logger = logutil.GetLogger("[shell] ")

// Prefix of every value printed by the script runner and the REPL.
const valuePrefix = "▶ "

// Program is the shell subprogram. It always runs, so it should be the last
// of a composite program.
type Program struct {
	codeInArg   bool
	compileOnly bool
	debug       bool
	noRC        bool
	noLib       bool
	printRC     bool

	json *bool
	rc   *string
}

func (p *Program) RegisterFlags(fs *prog.FlagSet) {
	fs.BoolVar(&p.codeInArg, "c", false,
		"Take the first argument as code to evaluate")
	fs.BoolVar(&p.compileOnly, "compileonly", false,
		"Parse and analyze the source without evaluating it")
	fs.BoolVar(&p.debug, "debug", false,
		"Trace analysis and applications to the debug log")
	fs.BoolVar(&p.noRC, "norc", false,
		"Don't read the configuration file")
	fs.BoolVar(&p.noLib, "nolib", false,
		"Don't preload the example library")
	fs.BoolVar(&p.printRC, "print-rc", false,
		"Print the effective configuration and quit")
	p.json = fs.JSON()
	p.rc = fs.RC()
}

func (p *Program) Run(fds [3]*os.File, args []string) error {
	cfg, err := p.config(fds)
	if err != nil {
		return err
	}
	if p.printRC {
		return rc.Encode(fds[1], cfg)
	}
	if len(args) == 0 {
		if p.codeInArg {
			return prog.BadUsage("-c requires an argument")
		}
		if p.compileOnly {
			return prog.BadUsage("-compileonly requires a script or -c")
		}
	}

	ev := InitRuntime(fds[2], cfg)
	if len(args) > 0 {
		exit := script(ev, fds, args, &scriptCfg{
			Cmd: p.codeInArg, CompileOnly: p.compileOnly, JSON: *p.json})
		return prog.Exit(exit)
	}

	Interact(fds, &InteractConfig{
		Evaler: ev, Prompt: cfg.Prompt, History: cfg.History})
	return nil
}

// Returns the configuration from the file named by -rc, or from the default
// location, with command-line flags applied on top.
func (p *Program) config(fds [3]*os.File) (rc.Config, error) {
	cfg := rc.Default()
	if !p.noRC {
		path := *p.rc
		if path == "" {
			var err error
			path, err = rc.Path()
			if err != nil {
				fmt.Fprintln(fds[2], "Warning:", err)
			}
		}
		if path != "" {
			var err error
			cfg, err = rc.Load(path)
			if err != nil {
				return cfg, err
			}
			logger.Println("loaded configuration from", path)
		}
	}
	if p.debug {
		cfg.Debug = true
	}
	if p.noLib {
		cfg.Library = false
	}
	return cfg, nil
}

// Evaluates src in the global environment and prints the value of every
// top-level expression evaluated before the first error, if any.
func evalAndShow(ev *eval.Evaler, fds [3]*os.File, src parse.Source) error {
	values, err := ev.Eval(src)
	width := sys.TermWidth(fds[1])
	for _, v := range values {
		fmt.Fprintln(fds[1], valuePrefix+vals.PrettyRepr(v, width))
	}
	return err
}
