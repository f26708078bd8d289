// Package rc loads the configuration file.
package rc

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/nickdrozd/right-to-leftsp/pkg/env"
	"github.com/nickdrozd/right-to-leftsp/pkg/eval"
	"github.com/nickdrozd/right-to-leftsp/pkg/fsutil"
	"gopkg.in/yaml.v3"
)

// Config is the content of the configuration file.
type Config struct {
	// Prompt of the REPL.
	Prompt string `yaml:"prompt"`
	// Path of the history database. An empty path disables history.
	History string `yaml:"history"`
	// Whether to trace analysis and applications from the start.
	Debug bool `yaml:"debug"`
	// Maximum number of nested applications.
	MaxCallDepth int `yaml:"max-call-depth"`
	// Whether to preload the example library.
	Library bool `yaml:"library"`
	// Source files evaluated at startup, after the library.
	Preload []string `yaml:"preload"`
}

// Default returns the configuration used when there is no configuration file.
// The history database is put in the state directory when it can be found.
func Default() Config {
	cfg := Config{
		Prompt:       "rtl> ",
		MaxCallDepth: eval.DefaultMaxCallDepth,
		Library:      true,
	}
	if dir, err := stateDir(); err == nil {
		cfg.History = filepath.Join(dir, "history.db")
	}
	return cfg
}

// Path returns the path of the configuration file: $RTLSP_RC if set, otherwise
// rtlsp/rc.yaml under the configuration directory.
func Path() (string, error) {
	if p := os.Getenv(env.RTLSP_RC); p != "" {
		return p, nil
	}
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "rc.yaml"), nil
}

// Load reads the configuration file at path on top of Default. A missing file
// is not an error. Unknown keys are. Paths in the file may start with ~.
func Load(path string) (Config, error) {
	cfg := Default()
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	} else if err != nil {
		return cfg, err
	}
	defer f.Close()
	if err := Decode(f, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode decodes a configuration from r into cfg, keeping the current values
// of fields that r does not mention.
func Decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return err
	}
	var err error
	if cfg.History, err = fsutil.ExpandTilde(cfg.History); err != nil {
		return err
	}
	for i, p := range cfg.Preload {
		if cfg.Preload[i], err = fsutil.ExpandTilde(p); err != nil {
			return err
		}
	}
	return nil
}

// Encode writes cfg in the format understood by Decode. Paths under the home
// directory are abbreviated with ~.
func Encode(w io.Writer, cfg Config) error {
	cfg.History = fsutil.TildeAbbr(cfg.History)
	if cfg.Preload != nil {
		preload := make([]string, len(cfg.Preload))
		for i, p := range cfg.Preload {
			preload[i] = fsutil.TildeAbbr(p)
		}
		cfg.Preload = preload
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	return enc.Close()
}

func configDir() (string, error) {
	return xdgDir(env.XDG_CONFIG_HOME, ".config")
}

func stateDir() (string, error) {
	return xdgDir(env.XDG_STATE_HOME, filepath.Join(".local", "state"))
}

func xdgDir(envName, fallback string) (string, error) {
	if dir := os.Getenv(envName); dir != "" {
		return filepath.Join(dir, "rtlsp"), nil
	}
	home, err := fsutil.GetHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, fallback, "rtlsp"), nil
}
