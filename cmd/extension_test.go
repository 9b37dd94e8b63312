package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRunExtensionNotFound(t *testing.T) {
	found, code := RunExtension("no-such-extension", nil)
	if found {
		t.Errorf("RunExtension() found an extension that does not exist, exit code %d", code)
	}
}

func TestRunExtension(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "stks-hello")
	if err := os.WriteFile(script, []byte("#!/bin/sh\nexit 3\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", dir)

	found, code := RunExtension("hello", nil)
	if !found {
		t.Fatal("RunExtension() did not find the extension on PATH")
	}
	if code != 3 {
		t.Errorf("RunExtension() exit code = %d, want 3", code)
	}
}
