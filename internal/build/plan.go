package build

import (
	"fmt"
	"strings"

	"github.com/PalmDevs/better-aliucordrn-plugins-template/internal/branding"
	"github.com/PalmDevs/better-aliucordrn-plugins-template/internal/manifest"
	"github.com/PalmDevs/better-aliucordrn-plugins-template/internal/pkgmanager"
	"github.com/PalmDevs/better-aliucordrn-plugins-template/internal/plugin"
)

// Options are the build command's argument and flags.
type Options struct {
	Plugin string
	All    bool
	Force  bool
	Watch  bool
}

// ValidationKind identifies why a build request was rejected.
type ValidationKind int

const (
	// UnsupportedPackageManager rejects unknown package managers without --force.
	UnsupportedPackageManager ValidationKind = iota
	// NoTarget rejects a request naming neither a plugin nor --all.
	NoTarget
	// PluginUnavailable rejects a plugin missing required files without --force.
	PluginUnavailable
	// PluginNotFound rejects a plugin with no directory under plugins/.
	PluginNotFound
)

// ValidationError is returned by Plan when a request cannot be built.
type ValidationError struct {
	Kind           ValidationKind
	Plugin         string
	PackageManager pkgmanager.PackageManager
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case UnsupportedPackageManager:
		return fmt.Sprintf("package manager %q is not supported", e.PackageManager)
	case NoTarget:
		return "no plugin(s) to build"
	case PluginUnavailable:
		return fmt.Sprintf("plugin %q is not available", e.Plugin)
	case PluginNotFound:
		return fmt.Sprintf("plugin %q not found", e.Plugin)
	default:
		return "invalid build request"
	}
}

// Styler highlights parts of rendered messages.
type Styler interface {
	plugin.Styler
	Yellow(string) string
	Red(string) string
}

// Render formats the error with remediation hints for the console.
func (e *ValidationError) Render(s Styler, plugins []plugin.Plugin) string {
	available, unavailable := plugin.Partition(plugins)
	var b strings.Builder

	switch e.Kind {
	case UnsupportedPackageManager:
		b.WriteString("Package manager unsupported by CLI.\n\n")
		b.WriteString(s.Cyan("Currently supported package managers:") + "\n")
		for _, pm := range pkgmanager.Supported {
			b.WriteString("- " + s.Yellow(pm.String()) + "\n")
		}
		b.WriteString("\n" + s.Cyan("Possible solutions:") + "\n")
		b.WriteString(" - Open an issue in " + branding.RepoURL() + " about your package manager\n")
		b.WriteString(" - Use one of the supported package managers\n")
		b.WriteString(" - Run this command with the " + s.Yellow("--force") + " flag\n")
		b.WriteString(" - Set " + s.Yellow("default_package_manager") + " in " + s.Cyan(".cli/config.yaml") +
			" to one of the supported package managers " + s.Yellow("(not recommended)"))
	case NoTarget:
		b.WriteString("No plugin(s) to build. You must either supply the " + s.Yellow("plugin") +
			" argument or run with the " + s.Yellow("--all") + " flag.")
		if list := plugin.FormatList(s, available, unavailable); list != "" {
			b.WriteString("\n\n" + list)
		}
	case PluginUnavailable:
		b.WriteString("Plugin " + s.Yellow(e.Plugin) + " is not available.\n\n")
		b.WriteString(s.Cyan("Possible solutions:") + "\n")
		b.WriteString(" - Check if the plugin is missing the " + s.Yellow(plugin.EntryFile) +
			" or the " + s.Yellow(manifest.FileName) + " file\n")
		b.WriteString(" - Force the build process by using the " + s.Red("--force") + " flag")
	case PluginNotFound:
		b.WriteString("Plugin " + s.Yellow(e.Plugin) + " not found.\n\n")
		b.WriteString(s.Cyan("Possible solutions:") + "\n")
		b.WriteString(" - Check if the plugin exists in the " + s.Yellow("plugins") + " directory")
		if list := plugin.FormatList(s, available, unavailable); list != "" {
			b.WriteString("\n\n" + list)
		}
	default:
		b.WriteString(e.Error())
	}
	return b.String()
}

// Plan validates a build request and returns the plugins to build, in scan
// order. With --all only available plugins are built unless --force is set,
// in which case every plugin is. --force never admits a plugin that does
// not exist.
func Plan(opts Options, pm pkgmanager.PackageManager, plugins []plugin.Plugin) ([]string, error) {
	if !pm.IsSupported() && !opts.Force {
		return nil, &ValidationError{Kind: UnsupportedPackageManager, PackageManager: pm}
	}

	if opts.All {
		if opts.Force {
			return plugin.Names(plugins), nil
		}
		available, _ := plugin.Partition(plugins)
		return available, nil
	}

	if opts.Plugin == "" {
		return nil, &ValidationError{Kind: NoTarget}
	}

	p, ok := plugin.Find(plugins, opts.Plugin)
	if !ok {
		return nil, &ValidationError{Kind: PluginNotFound, Plugin: opts.Plugin}
	}
	if !p.Available && !opts.Force {
		return nil, &ValidationError{Kind: PluginUnavailable, Plugin: opts.Plugin}
	}
	return []string{p.Name}, nil
}
