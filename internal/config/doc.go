// Package config loads project-level CLI settings from .cli/config.yaml and
// the environment. Settings cover the debug toggle, the fallback package
// manager, and the directories the CLI scans and writes to.
package config
