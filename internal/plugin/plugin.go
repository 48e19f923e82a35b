package plugin

import "github.com/PalmDevs/better-aliucordrn-plugins-template/internal/manifest"

// Files looked up in every plugin directory.
const (
	EntryFile     = "index.ts"
	ReadmeFile    = "README.md"
	ChangelogFile = "CHANGELOG.md"
)

// RequiredFiles must all be regular files for a plugin to be available.
var RequiredFiles = []string{manifest.FileName, EntryFile}

// Plugin is a directory under plugins/. It is created by Scan and read-only
// afterwards.
type Plugin struct {
	Name      string             `json:"name" yaml:"name"`
	Available bool               `json:"available" yaml:"available"`
	Dir       string             `json:"-" yaml:"-"`
	Manifest  *manifest.Manifest `json:"manifest,omitempty" yaml:"manifest,omitempty"`
}

// Version returns the manifest version, or "" when there is none.
func (p Plugin) Version() string {
	if p.Manifest == nil {
		return ""
	}
	return p.Manifest.Version
}

// Names returns the names of plugins in order.
func Names(plugins []Plugin) []string {
	names := make([]string, 0, len(plugins))
	for _, p := range plugins {
		names = append(names, p.Name)
	}
	return names
}

// Partition splits plugin names into available and unavailable, keeping order.
func Partition(plugins []Plugin) (available, unavailable []string) {
	for _, p := range plugins {
		if p.Available {
			available = append(available, p.Name)
		} else {
			unavailable = append(unavailable, p.Name)
		}
	}
	return available, unavailable
}

// Find returns the plugin with the exact name.
func Find(plugins []Plugin, name string) (Plugin, bool) {
	for _, p := range plugins {
		if p.Name == name {
			return p, true
		}
	}
	return Plugin{}, false
}
