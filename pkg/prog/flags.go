package prog

import "flag"

// FlagSet wraps a [flag.FlagSet] and provides methods to register flags shared
// by multiple subprograms on demand.
type FlagSet struct {
	*flag.FlagSet
	json *bool
	rc   *string
}

// JSON returns a pointer to the value of the -json flag, registering it if
// needed.
func (fs *FlagSet) JSON() *bool {
	if fs.json == nil {
		var json bool
		fs.BoolVar(&json, "json", false,
			"Show the output from -version or -compileonly in JSON")
		fs.json = &json
	}
	return fs.json
}

// RC returns a pointer to the value of the -rc flag, registering it if needed.
func (fs *FlagSet) RC() *string {
	if fs.rc == nil {
		var rc string
		fs.StringVar(&rc, "rc", "",
			"Path to the configuration file; defaults to rtlsp/rc.yaml under the configuration directory")
		fs.rc = &rc
	}
	return fs.rc
}
