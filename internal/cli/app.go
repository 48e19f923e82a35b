package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/PalmDevs/better-aliucordrn-plugins-template/internal/config"
	"github.com/PalmDevs/better-aliucordrn-plugins-template/internal/logger"
	"github.com/PalmDevs/better-aliucordrn-plugins-template/internal/manifest"
	"github.com/PalmDevs/better-aliucordrn-plugins-template/internal/pkgmanager"
	"github.com/PalmDevs/better-aliucordrn-plugins-template/internal/plugin"
)

// App is the state shared by every command. It is built once per
// invocation and read-only afterwards.
type App struct {
	Root           string
	PackageManager pkgmanager.PackageManager
	Plugins        []plugin.Plugin
	Config         *config.Config
	Log            *logger.Logger

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

type streams struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// newApp detects the package manager and scans the plugins directory.
func newApp(ctx context.Context, root string, args []string, cfg *config.Config, log *logger.Logger, s streams) (*App, error) {
	log.Debugf("Initialized CLI with arguments\n%s", bulletList(args))

	ua := pkgmanager.UserAgent()
	pm := pkgmanager.Detect(ua, cfg.DefaultPackageManager())
	log.Debugf("Package manager is %s (default: %q, user agent: %q)", pm, cfg.DefaultPackageManager(), ua)

	res, err := plugin.Scan(ctx, cfg.PluginsDir(), cfg.ScanConcurrency())
	if err != nil {
		return nil, err
	}

	for _, p := range res.Plugins {
		state := "available"
		if !p.Available {
			state = "not available"
		}
		log.Debugf("Plugin %s is loaded, it is %s", p.Name, state)
	}
	for _, w := range res.Warnings {
		logWarning(log, w)
	}
	log.Debugf("Successfully loaded %d plugin(s)", len(res.Plugins))

	return &App{
		Root:           root,
		PackageManager: pm,
		Plugins:        res.Plugins,
		Config:         cfg,
		Log:            log,
		Stdin:          s.stdin,
		Stdout:         s.stdout,
		Stderr:         s.stderr,
	}, nil
}

func logWarning(log *logger.Logger, w plugin.Warning) {
	name := log.Yellow(w.Plugin)
	switch w.Kind {
	case plugin.WarnUnavailable:
		log.Warnf("The plugin %s is invalid. It may be missing the %s file or the %s file.",
			name, log.Yellow(manifest.FileName), log.Cyan(plugin.EntryFile))
	case plugin.WarnMissingFile:
		log.Warnf("The plugin %s is missing the %s file.", name, log.Yellow(w.File))
	case plugin.WarnManifest:
		log.Warnf("The plugin %s has an invalid %s: %s", name, log.Yellow(w.File), w.Detail)
	}
}

// relPath returns p relative to the project root when possible.
func (a *App) relPath(p string) string {
	if rel, err := filepath.Rel(a.Root, p); err == nil && !strings.HasPrefix(rel, "..") {
		return rel
	}
	return p
}

func bulletList(items []string) string {
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = " - " + item
	}
	return strings.Join(lines, "\n")
}

// ExitError carries a process exit code. A nil Err means the failure was
// already reported.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }
