package pkgmanager

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func newJunk(t *testing.T) *Junk {
	t.Helper()
	root := t.TempDir()
	return NewJunk(root, filepath.Join(root, ".cli", ".pm-junk"))
}

func touch(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// rootFiles lists regular files in dir, ignoring subdirectories.
func rootFiles(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names
}

func TestMove_CreatesDirAndRelocates(t *testing.T) {
	j := newJunk(t)
	touch(t, filepath.Join(j.Root, "package-lock.json"), "{}")

	if err := j.Move(NPM); err != nil {
		t.Fatalf("Move() error: %v", err)
	}

	if exists(filepath.Join(j.Root, "package-lock.json")) {
		t.Error("package-lock.json still in root after Move")
	}
	data, err := os.ReadFile(filepath.Join(j.Dir, "package-lock.json"))
	if err != nil {
		t.Fatalf("reading moved lockfile: %v", err)
	}
	if string(data) != "{}" {
		t.Errorf("moved content = %q, want %q", data, "{}")
	}
}

func TestMoveRestore_RoundTrip(t *testing.T) {
	j := newJunk(t)
	touch(t, filepath.Join(j.Root, "package-lock.json"), "npm")
	touch(t, filepath.Join(j.Root, "pnpm-lock.yaml"), "pnpm")
	touch(t, filepath.Join(j.Root, "package.json"), "{}")
	before := rootFiles(t, j.Root)

	for _, pm := range Supported {
		if err := j.Move(pm); err != nil {
			t.Fatalf("Move(%s) error: %v", pm, err)
		}
		if err := j.Restore(pm); err != nil {
			t.Fatalf("Restore(%s) error: %v", pm, err)
		}
	}

	if diff := cmp.Diff(before, rootFiles(t, j.Root)); diff != "" {
		t.Errorf("root files changed after move/restore (-before +after):\n%s", diff)
	}
}

func TestMove_MissingFilesAreNoOps(t *testing.T) {
	j := newJunk(t)

	if err := j.Move(PNPM); err != nil {
		t.Fatalf("Move() error: %v", err)
	}
	if err := j.Restore(Yarn); err != nil {
		t.Fatalf("Restore() error: %v", err)
	}
	if err := j.Move(PackageManager("bun")); err != nil {
		t.Fatalf("Move(unknown) error: %v", err)
	}
	if !exists(j.Dir) {
		t.Error("junk directory was not created")
	}
}

func TestIsolate(t *testing.T) {
	j := newJunk(t)
	touch(t, filepath.Join(j.Root, "yarn.lock"), "")
	touch(t, filepath.Join(j.Root, "pnpm-lock.yaml"), "")
	touch(t, filepath.Join(j.Root, "pnpm-workspace.yaml"), "")
	if err := os.MkdirAll(j.Dir, 0755); err != nil {
		t.Fatal(err)
	}
	touch(t, filepath.Join(j.Dir, "package-lock.json"), "")

	moved, err := j.Isolate(NPM)
	if err != nil {
		t.Fatalf("Isolate() error: %v", err)
	}
	if diff := cmp.Diff([]PackageManager{PNPM, Yarn}, moved); diff != "" {
		t.Errorf("moved managers mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([]string{"package-lock.json"}, rootFiles(t, j.Root)); diff != "" {
		t.Errorf("root files mismatch (-want +got):\n%s", diff)
	}
	for _, name := range []string{"yarn.lock", "pnpm-lock.yaml", "pnpm-workspace.yaml"} {
		if !exists(filepath.Join(j.Dir, name)) {
			t.Errorf("%s not moved into junk directory", name)
		}
	}
}
