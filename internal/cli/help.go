package cli

import (
	"github.com/PalmDevs/better-aliucordrn-plugins-template/internal/help"
	"github.com/spf13/cobra"
)

func newHelpCmd(app *App, r *help.Renderer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "help [command]",
		Short: "Display help for a command",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) > 0 {
				name = args[0]
				app.Log.Debugf("Command %s specified, printing help for it", name)
			}
			return r.Render(app.Stdout, name)
		},
	}
	help.SetArgs(cmd, help.Arg{Name: "command", Description: "The command to display help for"})
	return cmd
}
