package logutil

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nickdrozd/right-to-leftsp/pkg/testutil"
)

func TestLogger(t *testing.T) {
	t.Cleanup(func() { SetOutput(io.Discard) })
	logger := GetLogger("[test] ")

	var sb strings.Builder
	SetOutput(&sb)
	logger.Println("hello")
	if !strings.Contains(sb.String(), "[test] ") || !strings.HasSuffix(sb.String(), "hello\n") {
		t.Errorf("got log %q", sb.String())
	}

	sb.Reset()
	SetOutput(io.Discard)
	logger.Println("dropped")
	if sb.Len() != 0 {
		t.Errorf("log written after output is discarded: %q", sb.String())
	}
}

func TestSetOutputFile(t *testing.T) {
	t.Cleanup(func() { SetOutput(io.Discard) })
	dir := testutil.TempDir(t)
	fname := filepath.Join(dir, "log")
	logger := GetLogger("[file] ")

	if err := SetOutputFile(fname); err != nil {
		t.Fatal(err)
	}
	logger.Println("to file")
	SetOutputFile("")

	content, err := os.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(content), "to file") {
		t.Errorf("log file has content %q", content)
	}

	if err := SetOutputFile(filepath.Join(dir, "no", "such", "dir")); err == nil {
		t.Errorf("SetOutputFile in a nonexistent directory succeeded")
	}
}
