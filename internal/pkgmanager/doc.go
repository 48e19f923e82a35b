// Package pkgmanager identifies the package manager that launched the CLI
// and performs package-manager-specific maintenance: relocating lockfiles
// that conflict when switching managers, and uninstalling helper packages.
package pkgmanager
