package cli

import (
	"fmt"
	"path/filepath"

	"github.com/PalmDevs/better-aliucordrn-plugins-template/internal/help"
	"github.com/PalmDevs/better-aliucordrn-plugins-template/internal/plugin"
	"github.com/PalmDevs/better-aliucordrn-plugins-template/internal/scaffold"
	"github.com/spf13/cobra"
)

func newCreateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Creates a new plugin from the template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.create(args[0])
		},
	}
	help.SetArgs(cmd, help.Arg{Name: "name", Description: "The plugin name, in PascalCase"})
	return cmd
}

func (a *App) create(name string) error {
	if _, ok := plugin.Find(a.Plugins, name); ok {
		return fmt.Errorf("plugin %s already exists", name)
	}

	result, err := scaffold.Generate(scaffold.NewData(name), filepath.Join(a.Config.PluginsDir(), name))
	if err != nil {
		return err
	}

	for _, w := range result.Warnings {
		a.Log.Warnf("%s", w)
	}
	a.Log.Infof("Created plugin %s in %s", a.Log.Yellow(name), a.Log.Cyan(a.relPath(result.OutputDir)))
	a.Log.Log(bulletList(result.Files))
	a.Log.NewLine()
	a.Log.Logf("Build it with %s", a.Log.Yellow(fmt.Sprintf("%s run cli -- build %s", a.PackageManager, name)))
	return nil
}
