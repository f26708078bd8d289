package shell

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/nickdrozd/right-to-leftsp/pkg/diag"
	"github.com/nickdrozd/right-to-leftsp/pkg/eval"
	"github.com/nickdrozd/right-to-leftsp/pkg/parse"
)

// Configuration for the script mode.
type scriptCfg struct {
	Cmd         bool
	CompileOnly bool
	JSON        bool
}

// Runs a script file, or the code in the first argument if cfg.Cmd is set.
// Arguments after the first are ignored. Returns the exit status.
func script(ev *eval.Evaler, fds [3]*os.File, args []string, cfg *scriptCfg) int {
	var src parse.Source
	if cfg.Cmd {
		src = parse.Source{Name: "code from -c", Code: args[0]}
	} else {
		var err error
		src, err = readSource(args[0])
		if err != nil {
			fmt.Fprintln(fds[2], err)
			return 2
		}
	}

	if cfg.CompileOnly {
		parseErr, compileErr := ev.Check(src)
		if cfg.JSON {
			fmt.Fprintf(fds[1], "%s\n", errorsToJSON(parseErr, compileErr))
		} else {
			if parseErr != nil {
				diag.ShowError(fds[2], parseErr)
			}
			if compileErr != nil {
				diag.ShowError(fds[2], compileErr)
			}
		}
		if parseErr != nil || compileErr != nil {
			return 2
		}
		return 0
	}

	if err := evalAndShow(ev, fds, src); err != nil {
		diag.ShowError(fds[2], err)
		return 2
	}
	return 0
}

// An auxiliary struct for converting errors with diagnostics information to JSON.
type errorInJSON struct {
	FileName string `json:"fileName"`
	Start    int    `json:"start"`
	End      int    `json:"end"`
	Message  string `json:"message"`
}

// Converts parse and compilation errors into JSON. There is at most one of
// each.
func errorsToJSON(parseErr *parse.Error, compileErr *eval.CompilationError) []byte {
	converted := []errorInJSON{}
	for _, e := range []*diag.Error{parseErr, compileErr} {
		if e != nil {
			converted = append(converted,
				errorInJSON{e.Context.Name, e.Context.From, e.Context.To, e.Message})
		}
	}

	jsonError, errMarshal := json.Marshal(converted)
	if errMarshal != nil {
		return []byte(`[{"message":"Unable to convert the errors to JSON"}]`)
	}
	return jsonError
}
