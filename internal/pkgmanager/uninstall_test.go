package pkgmanager

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// fakePM installs an executable shell script named name on PATH.
func fakePM(t *testing.T, name, script string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script package manager not supported on windows")
	}
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, name), []byte("#!/bin/sh\n"+script), 0755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
}

func TestUninstall_PassesPackages(t *testing.T) {
	fakePM(t, "fakepm", `echo "$@"`+"\n")

	var stdout bytes.Buffer
	code, err := Uninstall(context.Background(), PackageManager("fakepm"), ExecOptions{Stdout: &stdout, Stderr: &stdout}, "semantic-release", "@semantic-release/git")
	if err != nil {
		t.Fatalf("Uninstall() error: %v", err)
	}
	if code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}
	if got := strings.TrimSpace(stdout.String()); got != "uninstall semantic-release @semantic-release/git" {
		t.Errorf("args = %q", got)
	}
}

func TestUninstall_PropagatesExitCode(t *testing.T) {
	fakePM(t, "fakepm", "exit 7\n")

	code, err := Uninstall(context.Background(), PackageManager("fakepm"), ExecOptions{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}, "x")
	if err != nil {
		t.Fatalf("Uninstall() error: %v", err)
	}
	if code != 7 {
		t.Errorf("exit code = %d, want 7", code)
	}
}

func TestUninstall_SpawnFailure(t *testing.T) {
	_, err := Uninstall(context.Background(), PackageManager("definitely-not-a-package-manager"), ExecOptions{}, "x")
	if err == nil {
		t.Fatal("expected spawn error, got nil")
	}
}
