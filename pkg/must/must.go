// Package must wraps functions whose errors are not expected, panicking when
// they fail. It is meant for tests.
package must

import (
	"os"
	"path/filepath"
)

// OK panics if err is not nil.
func OK(err error) {
	if err != nil {
		panic(err)
	}
}

// OK1 returns v, or panics if err is not nil.
func OK1[T any](v T, err error) T {
	OK(err)
	return v
}

// OK2 returns v1 and v2, or panics if err is not nil.
func OK2[T1, T2 any](v1 T1, v2 T2, err error) (T1, T2) {
	OK(err)
	return v1, v2
}

// Pipe is like os.Pipe.
func Pipe() (r, w *os.File) { return OK2(os.Pipe()) }

// Chdir is like os.Chdir.
func Chdir(dir string) { OK(os.Chdir(dir)) }

// WriteFile writes data to filename, creating its directory first if needed.
func WriteFile(filename, data string) {
	OK(os.MkdirAll(filepath.Dir(filename), 0700))
	OK(os.WriteFile(filename, []byte(data), 0600))
}
