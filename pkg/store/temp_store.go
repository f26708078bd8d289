package store

import (
	"path/filepath"
	"testing"

	"github.com/nickdrozd/right-to-leftsp/pkg/must"
)

// MustTempStore returns a Store backed by a database in a temporary directory.
// The Store is closed when the test finishes.
func MustTempStore(t testing.TB) DBStore {
	st := must.OK1(NewStore(filepath.Join(t.TempDir(), "history.db")))
	t.Cleanup(func() { st.Close() })
	return st
}
