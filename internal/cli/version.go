package cli

import (
	"encoding/json"
	"fmt"

	"github.com/PalmDevs/better-aliucordrn-plugins-template/internal/branding"
	"github.com/spf13/cobra"
)

func newVersionCmd(info buildInfo) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			version := displayVersion(info.Version)

			if asJSON {
				data, err := json.MarshalIndent(map[string]string{
					"version": version,
					"commit":  info.Commit,
					"date":    info.Date,
				}, "", "  ")
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(out, string(data))
				return err
			}

			_, err := fmt.Fprintf(out, "%s %s (commit: %s, built: %s)\n", branding.CLIName(), version, info.Commit, info.Date)
			return err
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print version info as JSON")
	return cmd
}
