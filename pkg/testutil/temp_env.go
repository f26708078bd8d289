package testutil

import "os"

// Setenv sets the environment variable name to value until the test finishes,
// and returns value.
func Setenv(c Cleanuper, name, value string) string {
	restoreEnvOnCleanup(c, name)
	os.Setenv(name, value)
	return value
}

// Unsetenv removes the environment variable name until the test finishes.
func Unsetenv(c Cleanuper, name string) {
	restoreEnvOnCleanup(c, name)
	os.Unsetenv(name)
}

func restoreEnvOnCleanup(c Cleanuper, name string) {
	old, ok := os.LookupEnv(name)
	c.Cleanup(func() {
		if ok {
			os.Setenv(name, old)
		} else {
			os.Unsetenv(name)
		}
	})
}
