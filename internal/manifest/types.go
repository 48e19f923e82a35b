package manifest

// FileName is the manifest file every buildable plugin directory contains.
const FileName = "manifest.json"

// Manifest describes a plugin. Fields left empty are filled from the
// repository's base manifest.json when the bundler writes the final manifest.
type Manifest struct {
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Version     string   `json:"version,omitempty" yaml:"version,omitempty"`
	Authors     []Author `json:"authors,omitempty" yaml:"authors,omitempty"`
	Changelog   string   `json:"changelog,omitempty" yaml:"changelog,omitempty"`
}

// Author credits a plugin author, optionally by Discord user ID.
type Author struct {
	Name string `json:"name" yaml:"name"`
	ID   string `json:"id,omitempty" yaml:"id,omitempty"`
}
