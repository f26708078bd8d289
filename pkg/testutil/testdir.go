package testutil

import (
	"os"
	"path/filepath"

	"github.com/nickdrozd/right-to-leftsp/pkg/must"
)

// TempDir creates a temporary directory for testing that will be removed
// after the test finishes. Symlinks in the returned path are resolved.
func TempDir(c Cleanuper) string {
	dir := must.OK1(os.MkdirTemp("", "rtlsp-test"))
	dir = must.OK1(filepath.EvalSymlinks(dir))
	c.Cleanup(func() {
		if err := os.RemoveAll(dir); err != nil {
			println("failed to remove temp dir", dir)
		}
	})
	return dir
}

// InTempDir is like TempDir, but also changes into the directory. The
// working directory is restored after the test finishes.
func InTempDir(c Cleanuper) string {
	dir := TempDir(c)
	Chdir(c, dir)
	return dir
}

// Chdir changes into a directory, and restores the original working directory
// when the test finishes.
func Chdir(c Cleanuper, dir string) string {
	oldWD := must.OK1(os.Getwd())
	must.Chdir(dir)
	c.Cleanup(func() { must.Chdir(oldWD) })
	return dir
}

// ApplyDir creates the files in the given map under the current directory.
// Keys are slash-separated paths, values are file contents.
func ApplyDir(files map[string]string) {
	for name, content := range files {
		must.WriteFile(filepath.FromSlash(name), content)
	}
}
