package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew_Levels(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, false).Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug line logged without verbose: %q", buf.String())
	}

	New(&buf, true).Debug("shown", "k", 1)
	if !strings.Contains(buf.String(), "msg=shown") || !strings.Contains(buf.String(), "k=1") {
		t.Fatalf("verbose output = %q", buf.String())
	}
}

func TestForTUI_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tui.log")
	t.Setenv(EnvLogFile, path)

	logger, closeFn, err := ForTUI(false)
	if err != nil {
		t.Fatalf("ForTUI: %v", err)
	}
	logger.Info("hello")
	if err := closeFn(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "msg=hello") {
		t.Fatalf("log file = %q", data)
	}
}

func TestForTUI_NoEnv(t *testing.T) {
	t.Setenv(EnvLogFile, "")
	_, closeFn, err := ForTUI(true)
	if err != nil || closeFn == nil {
		t.Fatalf("ForTUI without env: err=%v closeFn nil=%v", err, closeFn == nil)
	}
}
