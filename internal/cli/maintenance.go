package cli

import (
	"context"
	"strconv"
	"strings"

	"github.com/PalmDevs/better-aliucordrn-plugins-template/internal/pkgmanager"
	"github.com/PalmDevs/better-aliucordrn-plugins-template/internal/plugin"
	"github.com/PalmDevs/better-aliucordrn-plugins-template/internal/scaffold"
)

// removeJunk restores the current package manager's lockfiles and moves
// every other supported manager's aside.
func (a *App) removeJunk() error {
	j := pkgmanager.NewJunk(a.Root, a.Config.JunkDir())
	moved, err := j.Isolate(a.PackageManager)
	if err != nil {
		return err
	}
	for _, pm := range moved {
		a.Log.Debugf("Removed junk for %s", pm)
	}

	a.Log.Infof("You are currently running %s. Other package manager's files have been moved for compatibility. "+
		"You can restore them by using one of those package managers.", a.Log.Cyan(a.PackageManager.String()))
	return nil
}

func (a *App) removeSemrelPackages(ctx context.Context) error {
	a.Log.Infof("Uninstalling semantic-release packages...")

	code, err := pkgmanager.Uninstall(ctx, a.PackageManager, pkgmanager.ExecOptions{
		Dir:    a.Root,
		Stdin:  a.Stdin,
		Stdout: a.Stdout,
		Stderr: a.Stderr,
	}, pkgmanager.SemanticReleasePackages...)
	if err != nil {
		a.Log.Errorf("Cannot spawn command to uninstall semantic-release packages")
		a.Log.Debugf("%v", err)
		return &ExitError{Code: 1}
	}

	a.Log.NewLine()
	switch {
	case code < 0:
		a.Log.Errorf("Failed to uninstall semantic-release packages with %s.", a.Log.Red("no error code"))
		return &ExitError{Code: 1}
	case code > 0:
		a.Log.Errorf("Failed to uninstall semantic-release packages with %s.", a.Log.Red("error code "+strconv.Itoa(code)))
		return &ExitError{Code: code}
	}

	a.Log.Infof("Uninstalled all semantic-release related packages successfully.")
	return nil
}

func (a *App) createImaginaryPackageJSON() error {
	result, err := scaffold.WritePackageJSONs(a.Config.PluginsDir(), plugin.Names(a.Plugins))
	if err != nil {
		return err
	}

	for _, name := range result.Skipped {
		a.Log.Debugf("Plugin %s already has a %s", name, scaffold.PackageJSONFile)
	}
	for _, d := range result.Duplicates {
		a.Log.Errorf("Plugins %s share the package name %s. Rename all but one of them.",
			a.Log.Yellow(strings.Join(d.Plugins, ", ")), a.Log.Cyan(d.PackageName))
	}

	a.Log.Infof("Created %d %s file(s), %d already existed.",
		len(result.Written), scaffold.PackageJSONFile, len(result.Skipped))
	return nil
}
