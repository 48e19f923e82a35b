package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PalmDevs/better-aliucordrn-plugins-template/internal/pkgmanager"
	"github.com/google/go-cmp/cmp"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func newProject(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "plugins", "Alpha", "manifest.json"), `{"name": "Alpha", "version": "2.0.0"}`)
	writeFile(t, filepath.Join(root, "plugins", "Alpha", "index.ts"), "export default class Alpha {}\n")
	writeFile(t, filepath.Join(root, "plugins", "beta", "index.ts"), "export default class Beta {}\n")
	return root
}

func runCLI(t *testing.T, root string, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	s := streams{stdin: strings.NewReader(""), stdout: &out, stderr: &errOut}
	code = run(context.Background(), root, args, s, buildInfo{Version: "1.0.0", Commit: "none", Date: "unknown"})
	return code, out.String(), errOut.String()
}

func TestRun_ListJSON(t *testing.T) {
	t.Setenv(pkgmanager.UserAgentEnv, "yarn/1.22.19 npm/? node/v18.16.0 linux x64")
	root := newProject(t)

	code, stdout, stderr := runCLI(t, root, "list", "-o", "json")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr:\n%s", code, stderr)
	}

	var got []listEntry
	if err := json.Unmarshal([]byte(stdout), &got); err != nil {
		t.Fatalf("decoding output: %v\n%s", err, stdout)
	}
	want := []listEntry{
		{Name: "Alpha", Available: true, Version: "2.0.0"},
		{Name: "beta", Available: false},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("list mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(stderr, "The plugin beta is invalid") {
		t.Errorf("missing availability warning:\n%s", stderr)
	}
}

func TestRun_HelpUsesDetectedPackageManager(t *testing.T) {
	t.Setenv(pkgmanager.UserAgentEnv, "yarn/1.22.19 npm/? node/v18.16.0 linux x64")

	code, stdout, _ := runCLI(t, newProject(t))
	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	if !strings.Contains(stdout, "Usage: yarn run cli -- [options] [command]") {
		t.Errorf("unexpected help output:\n%s", stdout)
	}
}

func TestRun_ValidationErrorExitCode(t *testing.T) {
	t.Setenv(pkgmanager.UserAgentEnv, "npm/10.2.0 node/v20.10.0 linux x64")

	code, _, stderr := runCLI(t, newProject(t), "build", "beta")
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr, "Plugin beta is not available.") {
		t.Errorf("missing validation message:\n%s", stderr)
	}
}

func TestRun_FromCLIDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), ".cli")
	if err := os.Mkdir(dir, 0755); err != nil {
		t.Fatal(err)
	}

	code, _, stderr := runCLI(t, dir, "list")
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr, "You can't run the CLI from the .cli directory") {
		t.Errorf("unexpected stderr:\n%s", stderr)
	}
}

func TestDisplayVersion(t *testing.T) {
	tests := map[string]string{
		"v1.2.0":       "1.2.0",
		"1.2.0":        "1.2.0",
		"1.2.0-beta.1": "1.2.0-beta.1",
		"dev":          "dev",
	}
	for in, want := range tests {
		if got := displayVersion(in); got != want {
			t.Errorf("displayVersion(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestExitError(t *testing.T) {
	inner := errors.New("boom")
	err := error(&ExitError{Code: 3, Err: inner})
	if !errors.Is(err, inner) {
		t.Error("ExitError should unwrap to its cause")
	}
	if got := err.Error(); got != "boom" {
		t.Errorf("Error() = %q", got)
	}
	if got := (&ExitError{Code: 2}).Error(); got != "exit status 2" {
		t.Errorf("Error() without cause = %q", got)
	}
}
