package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PalmDevs/better-aliucordrn-plugins-template/internal/plugin"
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
)

// Output formats accepted by list -o.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// listEntry represents a plugin for machine-readable output.
type listEntry struct {
	Name        string `json:"name" yaml:"name"`
	Available   bool   `json:"available" yaml:"available"`
	Version     string `json:"version,omitempty" yaml:"version,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

func newListCmd(app *App) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Lists all plugins",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.list(cmd.OutOrStdout(), output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", formatText, "Output `format`: text, json or yaml")
	return cmd
}

func (a *App) list(w io.Writer, format string) error {
	switch format {
	case formatText:
		if len(a.Plugins) == 0 {
			_, err := fmt.Fprintf(w, "No plugins found in %s.\n", a.relPath(a.Config.PluginsDir()))
			return err
		}
		available, unavailable := plugin.Partition(a.Plugins)
		_, err := fmt.Fprintln(w, plugin.FormatList(a.Log, available, unavailable))
		return err
	case formatJSON:
		data, err := json.MarshalIndent(a.listEntries(), "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(a.listEntries()); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format %q (want %s, %s or %s)", format, formatText, formatJSON, formatYAML)
	}
}

func (a *App) listEntries() []listEntry {
	entries := make([]listEntry, 0, len(a.Plugins))
	for _, p := range a.Plugins {
		e := listEntry{Name: p.Name, Available: p.Available, Version: p.Version()}
		if p.Manifest != nil {
			e.Description = p.Manifest.Description
		}
		entries = append(entries, e)
	}
	return entries
}
