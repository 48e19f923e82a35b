// Package branding provides compile-time identity values for the CLI.
//
// Template forks edit branding.yaml in this directory; Go's //go:embed bakes
// it into the binary.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	EnvPrefix   string `yaml:"env_prefix"`
	ScriptName  string `yaml:"script_name"`
	RepoURL     string `yaml:"repo_url"`
}

func load() {
	once.Do(func() {
		// Set hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:     "aliuplugrn-cli",
			DisplayName: "AliuPlugRN CLI",
			Description: "A CLI for AliucordRN plugins development",
			EnvPrefix:   "ALIUPLUGRN",
			ScriptName:  "cli",
			RepoURL:     "https://github.com/PalmDevs/better-aliucordrn-plugins-template",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "aliuplugrn-cli").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name (e.g., "AliuPlugRN CLI").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// EnvPrefix returns the environment variable prefix (e.g., "ALIUPLUGRN").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// ScriptName returns the package.json script that launches the CLI, as in
// "npm run cli -- build".
func ScriptName() string { load(); return defaults.ScriptName }

// RepoURL returns the template repository URL shown in remediation hints.
func RepoURL() string { load(); return defaults.RepoURL }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("debug") → "ALIUPLUGRN_DEBUG".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
