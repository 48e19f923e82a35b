// Package cli defines the cobra command tree for the plugin development
// CLI. Run performs the startup work shared by every command (package
// manager detection, config loading, plugin scan) into an App, then
// dispatches to a command. Commands delegate to internal packages for the
// actual work and only handle flags, output and exit codes.
package cli
