// Package fsutil contains filesystem utilities.
package fsutil

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/nickdrozd/right-to-leftsp/pkg/env"
)

// GetHome returns the home directory of the current user, preferring the
// HOME environment variable.
func GetHome() (string, error) {
	if home := os.Getenv(env.HOME); home != "" {
		return home, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot get home directory: %w", err)
	}
	return home, nil
}

// ExpandTilde replaces a leading ~ in path with the home directory. Other
// paths are returned unchanged.
func ExpandTilde(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") &&
		!(runtime.GOOS == "windows" && strings.HasPrefix(path, `~\`)) {
		return path, nil
	}
	home, err := GetHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, path[1:]), nil
}

// TildeAbbr abbreviates the user's home directory to ~.
func TildeAbbr(path string) string {
	home, err := GetHome()
	if err != nil || home == "" || home == "/" {
		// Abbreviating a root home would make the path longer.
		return path
	}
	if path == home {
		return "~"
	} else if strings.HasPrefix(path, home+string(filepath.Separator)) {
		return "~" + path[len(home):]
	}
	return path
}
