package plugin

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/PalmDevs/better-aliucordrn-plugins-template/internal/manifest"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// ErrNoPluginsDir is returned when the plugins directory does not exist.
var ErrNoPluginsDir = errors.New("plugins directory not found")

// WarningKind classifies advisory scan findings.
type WarningKind int

const (
	// WarnUnavailable marks a plugin missing a required file.
	WarnUnavailable WarningKind = iota
	// WarnMissingFile marks a plugin missing an optional file; File names it.
	WarnMissingFile
	// WarnManifest marks a manifest that failed to parse or validate.
	WarnManifest
)

// Warning is a non-fatal finding about a single plugin.
type Warning struct {
	Kind   WarningKind
	Plugin string
	File   string
	Detail string
}

// ScanResult holds the discovered plugins and advisory warnings, both in
// plugin order.
type ScanResult struct {
	Plugins  []Plugin
	Warnings []Warning
}

type inspection struct {
	plugin   Plugin
	warnings []Warning
}

// Scan inspects every immediate subdirectory of dir with at most
// concurrency directories in flight. Plugins are ordered by English
// collation of their names.
func Scan(ctx context.Context, dir string, concurrency int) (*ScanResult, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNoPluginsDir, dir)
		}
		return nil, fmt.Errorf("reading plugins directory %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}

	results := make([]inspection, len(names))
	g, gctx := errgroup.WithContext(ctx)
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}
	for i, name := range names {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = inspect(filepath.Join(dir, name), name)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sortInspections(results)

	out := &ScanResult{Plugins: make([]Plugin, 0, len(results))}
	for _, r := range results {
		out.Plugins = append(out.Plugins, r.plugin)
		out.Warnings = append(out.Warnings, r.warnings...)
	}
	return out, nil
}

func inspect(dir, name string) inspection {
	r := inspection{plugin: Plugin{Name: name, Dir: dir, Available: true}}

	for _, f := range RequiredFiles {
		if !isRegularFile(filepath.Join(dir, f)) {
			r.plugin.Available = false
		}
	}
	if !r.plugin.Available {
		r.warnings = append(r.warnings, Warning{Kind: WarnUnavailable, Plugin: name})
	}

	for _, f := range []string{ReadmeFile, ChangelogFile} {
		if !isRegularFile(filepath.Join(dir, f)) {
			r.warnings = append(r.warnings, Warning{Kind: WarnMissingFile, Plugin: name, File: f})
		}
	}

	manifestPath := filepath.Join(dir, manifest.FileName)
	if !isRegularFile(manifestPath) {
		return r
	}
	m, result, err := manifest.Load(manifestPath)
	if err != nil {
		r.warnings = append(r.warnings, Warning{Kind: WarnManifest, Plugin: name, File: manifest.FileName, Detail: err.Error()})
		return r
	}
	r.plugin.Manifest = m
	for _, issue := range result.Issues {
		r.warnings = append(r.warnings, Warning{Kind: WarnManifest, Plugin: name, File: manifest.FileName, Detail: issue.String()})
	}
	return r
}

func isRegularFile(path string) bool {
	info, err := os.Lstat(path)
	return err == nil && info.Mode().IsRegular()
}

func sortInspections(results []inspection) {
	c := collate.New(language.English)
	slices.SortStableFunc(results, func(a, b inspection) int {
		if cmp := c.CompareString(a.plugin.Name, b.plugin.Name); cmp != 0 {
			return cmp
		}
		switch {
		case a.plugin.Name < b.plugin.Name:
			return -1
		case a.plugin.Name > b.plugin.Name:
			return 1
		}
		return 0
	})
}
