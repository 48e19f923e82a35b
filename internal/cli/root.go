package cli

import (
	"github.com/Masterminds/semver/v3"
	"github.com/PalmDevs/better-aliucordrn-plugins-template/internal/branding"
	"github.com/PalmDevs/better-aliucordrn-plugins-template/internal/help"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	version                    bool
	removePMJunk               bool
	removeSemrelPackages       bool
	createImaginaryPackageJSON bool
}

func newRootCmd(app *App, info buildInfo) *cobra.Command {
	var opts rootOptions
	renderer := &help.Renderer{
		PackageManager: app.PackageManager.String(),
		Version:        displayVersion(info.Version),
		Style:          app.Log,
	}

	cmd := &cobra.Command{
		Use:           branding.CLIName(),
		Short:         branding.Description(),
		Version:       displayVersion(info.Version),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Log.Debugf("Options passed\n - removePmJunk: %t\n - removeSemrelPackages: %t\n - createImaginaryPackageJson: %t",
				opts.removePMJunk, opts.removeSemrelPackages, opts.createImaginaryPackageJSON)

			switch {
			case opts.removePMJunk:
				return app.removeJunk()
			case opts.removeSemrelPackages:
				return app.removeSemrelPackages(cmd.Context())
			case opts.createImaginaryPackageJSON:
				return app.createImaginaryPackageJSON()
			}

			app.Log.Debugf("No options or commands passed, going to help page")
			return renderer.Render(app.Stdout, "")
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.SetVersionTemplate("{{.Version}}\n")

	f := cmd.Flags()
	f.SortFlags = false
	f.BoolVarP(&opts.version, "version", "v", false, "Display the current version")
	f.BoolVar(&opts.removeSemrelPackages, "remove-semrel-packages", false, "Remove semantic-release packages")
	f.BoolVar(&opts.createImaginaryPackageJSON, "create-imaginary-package-json", false,
		"Create a package.json in every plugin directory")
	f.BoolVar(&opts.removePMJunk, "remove-pm-junk", false, "Remove package manager junk files")
	_ = f.MarkHidden("remove-pm-junk")
	cmd.MarkFlagsMutuallyExclusive("remove-pm-junk", "remove-semrel-packages", "create-imaginary-package-json")

	cmd.AddCommand(
		newBuildCmd(app),
		newListCmd(app),
		newCreateCmd(app),
		newVersionCmd(info),
	)

	renderer.Root = cmd
	cmd.SetHelpCommand(newHelpCmd(app, renderer))
	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		name := ""
		if c != cmd {
			name = c.Name()
		}
		if err := renderer.Render(app.Stdout, name); err != nil {
			app.Log.Errorf("%v", err)
		}
	})

	return cmd
}

// displayVersion normalizes a semantic version ("v1.2.0" becomes "1.2.0").
// Non-semver values such as "dev" are returned unchanged.
func displayVersion(raw string) string {
	v, err := semver.NewVersion(raw)
	if err != nil {
		return raw
	}
	return v.String()
}
