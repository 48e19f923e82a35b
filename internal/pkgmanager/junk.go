package pkgmanager

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// JunkFiles maps each package manager to the lockfiles it owns. These files
// confuse the other managers when left in the project root.
var JunkFiles = map[PackageManager][]string{
	NPM:  {"package-lock.json"},
	Yarn: {"yarn.lock"},
	PNPM: {"pnpm-lock.yaml", "pnpm-workspace.yaml"},
}

const lockFileName = ".lock"

// Junk relocates lockfiles between the project root and a scratch folder.
// Operations are not transactional: a failure part way through leaves the
// files processed so far in their new location.
type Junk struct {
	Root string // project root holding the lockfiles
	Dir  string // scratch folder, created on first use
}

// NewJunk returns a Junk for the given project root and scratch folder.
func NewJunk(root, dir string) *Junk {
	return &Junk{Root: root, Dir: dir}
}

// Move relocates every lockfile owned by pm into the scratch folder. Files
// that do not exist are skipped, as are unknown package managers.
func (j *Junk) Move(pm PackageManager) error {
	return j.withLock(func() error {
		for _, name := range JunkFiles[pm] {
			if err := relocate(filepath.Join(j.Root, name), filepath.Join(j.Dir, name)); err != nil {
				return err
			}
		}
		return nil
	})
}

// Restore moves pm's lockfiles from the scratch folder back into the root.
func (j *Junk) Restore(pm PackageManager) error {
	return j.withLock(func() error {
		for _, name := range JunkFiles[pm] {
			if err := relocate(filepath.Join(j.Dir, name), filepath.Join(j.Root, name)); err != nil {
				return err
			}
		}
		return nil
	})
}

// Isolate restores current's lockfiles and moves away those of every other
// supported package manager. It returns the managers whose files were moved.
func (j *Junk) Isolate(current PackageManager) ([]PackageManager, error) {
	if err := j.Restore(current); err != nil {
		return nil, fmt.Errorf("restoring %s lockfiles: %w", current, err)
	}

	var moved []PackageManager
	for _, pm := range Supported {
		if pm == current {
			continue
		}
		if err := j.Move(pm); err != nil {
			return moved, fmt.Errorf("moving %s lockfiles: %w", pm, err)
		}
		moved = append(moved, pm)
	}
	return moved, nil
}

func (j *Junk) withLock(fn func() error) error {
	if err := os.MkdirAll(j.Dir, 0755); err != nil {
		return fmt.Errorf("creating junk directory %s: %w", j.Dir, err)
	}

	fileLock := flock.New(filepath.Join(j.Dir, lockFileName))
	if err := fileLock.Lock(); err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	defer func() { _ = fileLock.Unlock() }()

	return fn()
}

func relocate(src, dst string) error {
	if _, err := os.Lstat(src); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("checking %s: %w", src, err)
	}
	if err := os.Rename(src, dst); err != nil {
		return fmt.Errorf("moving %s to %s: %w", src, dst, err)
	}
	return nil
}
