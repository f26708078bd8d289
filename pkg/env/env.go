// Package env keeps names of environment variables with special significance
// to the interpreter.
package env

// Environment variables with special significance to the interpreter.
const (
	HOME            = "HOME"
	XDG_CONFIG_HOME = "XDG_CONFIG_HOME"
	XDG_STATE_HOME  = "XDG_STATE_HOME"
	// Overrides the path of the configuration file.
	RTLSP_RC = "RTLSP_RC"
)
