package bundler

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/PalmDevs/better-aliucordrn-plugins-template/internal/pkgmanager"
)

// ErrEngineNotFound is returned when pnpm's store holds no Hermes compiler.
var ErrEngineNotFound = errors.New("hermes engine not found")

// DefaultEngineDir is where npm and yarn hoist the Hermes compiler package.
var DefaultEngineDir = filepath.Join("node_modules", "@aliucord", "hermesc")

// pnpmEngineGlob matches the compiler inside pnpm's content-addressed store.
var pnpmEngineGlob = filepath.Join("node_modules", ".pnpm", "@aliucord+hermesc@*", "node_modules", "@aliucord", "hermesc")

// ResolveEngineDir returns the Hermes compiler directory relative to root.
// pnpm does not hoist packages, so its store is searched and a missing
// match is an error. Other package managers use DefaultEngineDir as-is.
func ResolveEngineDir(root string, pm pkgmanager.PackageManager) (string, error) {
	if pm != pkgmanager.PNPM {
		return DefaultEngineDir, nil
	}

	matches, err := filepath.Glob(filepath.Join(root, pnpmEngineGlob))
	if err != nil {
		return "", fmt.Errorf("searching pnpm store: %w", err)
	}
	if len(matches) == 0 {
		return "", ErrEngineNotFound
	}

	rel, err := filepath.Rel(root, matches[0])
	if err != nil {
		return "", fmt.Errorf("resolving engine path %s: %w", matches[0], err)
	}
	return rel, nil
}
