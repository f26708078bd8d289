// Package buildinfo contains build information.
//
// Build information should be set during compilation by passing
// -ldflags "-X github.com/nickdrozd/right-to-leftsp/pkg/buildinfo.VersionSuffix=value"
// to "go build".
package buildinfo

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	"github.com/nickdrozd/right-to-leftsp/pkg/prog"
)

// Version identifies the version of rtlsp. On development commits, it
// identifies the next release.
const Version = "v0.1.0"

// VersionSuffix is appended to Version to build the full version string.
var VersionSuffix = "-dev"

// Info contains all the build information.
type Info struct {
	Version   string `json:"version"`
	GoVersion string `json:"goversion"`
}

// Value contains the build information of this binary.
var Value = Info{Version + VersionSuffix, runtime.Version()}

// Program is the buildinfo subprogram.
var Program prog.Program = &program{}

type program struct {
	version, buildinfo bool
	json               *bool
}

func (p *program) RegisterFlags(fs *prog.FlagSet) {
	fs.BoolVar(&p.version, "version", false, "show version and quit")
	fs.BoolVar(&p.buildinfo, "buildinfo", false, "show build info and quit")
	p.json = fs.JSON()
}

func (p *program) Run(fds [3]*os.File, _ []string) error {
	switch {
	case p.buildinfo:
		if *p.json {
			fmt.Fprintln(fds[1], mustToJSON(Value))
		} else {
			fmt.Fprintln(fds[1], "Version:", Value.Version)
			fmt.Fprintln(fds[1], "Go version:", Value.GoVersion)
		}
	case p.version:
		if *p.json {
			fmt.Fprintln(fds[1], mustToJSON(Value.Version))
		} else {
			fmt.Fprintln(fds[1], Value.Version)
		}
	default:
		return prog.ErrNextProgram
	}
	return nil
}

func mustToJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(b)
}
