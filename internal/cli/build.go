package cli

import (
	"context"
	"errors"

	"github.com/PalmDevs/better-aliucordrn-plugins-template/internal/build"
	"github.com/PalmDevs/better-aliucordrn-plugins-template/internal/bundler"
	"github.com/PalmDevs/better-aliucordrn-plugins-template/internal/help"
	"github.com/spf13/cobra"
)

func newBuildCmd(app *App) *cobra.Command {
	var opts build.Options

	cmd := &cobra.Command{
		Use:   "build [plugin]",
		Short: "Builds a plugin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.Plugin = args[0]
			}
			return app.build(cmd.Context(), opts)
		},
	}

	f := cmd.Flags()
	f.SortFlags = false
	f.BoolVarP(&opts.All, "all", "a", false, "Builds all plugins")
	f.BoolVarP(&opts.Force, "force", "f", false, "Forces to build even if the plugin is invalid or not available")
	f.BoolVarP(&opts.Watch, "watch", "w", false, "Watch for changes and rebuild automatically")
	cmd.MarkFlagsMutuallyExclusive("all", "watch")
	help.SetArgs(cmd, help.Arg{Name: "plugin", Description: "The plugin to build"})

	return cmd
}

func (a *App) build(ctx context.Context, opts build.Options) error {
	a.Log.Debugf("Running build command\nUser has targeted plugin %q\nOptions passed\n - all: %t\n - force: %t\n - watch: %t",
		opts.Plugin, opts.All, opts.Force, opts.Watch)

	targets, err := build.Plan(opts, a.PackageManager, a.Plugins)
	if err != nil {
		return err
	}
	if len(targets) == 0 {
		a.Log.Warnf("There are no available plugins to build.")
		return nil
	}

	engineDir, err := bundler.ResolveEngineDir(a.Root, a.PackageManager)
	if err != nil {
		if errors.Is(err, bundler.ErrEngineNotFound) {
			a.Log.Errorf("Hermes engine not found. Did you run %s?", a.Log.Yellow(a.PackageManager.String()+" install"))
			return &ExitError{Code: 1}
		}
		return err
	}
	a.Log.Debugf("Engine directory is %s", engineDir)

	b := bundler.New(a.Root)
	b.Stdin, b.Stdout, b.Stderr = a.Stdin, a.Stdout, a.Stderr
	a.Log.Debugf("Bundler command: %s", b.Command(opts.Watch))

	a.Log.Infof("Building %d plugin(s) with %s...", len(targets), a.Log.Cyan(a.PackageManager.String()))
	summary := build.NewDispatcher(b, a.Log, engineDir).BuildAll(ctx, targets, opts.Watch)

	switch {
	case ctx.Err() != nil:
		// Interrupting watch mode is the normal way to stop it.
		return nil
	case len(summary.Failed) > 0:
		return &ExitError{Code: 1}
	case summary.ExitCode != 0:
		return &ExitError{Code: summary.ExitCode}
	}
	return nil
}
