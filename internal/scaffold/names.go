package scaffold

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

var pluginNamePattern = regexp.MustCompile(`^[A-Z][A-Za-z0-9]*$`)

// ValidatePluginName rejects names that are not PascalCase identifiers,
// since the name doubles as the plugin's class name.
func ValidatePluginName(name string) error {
	if !pluginNamePattern.MatchString(name) {
		return fmt.Errorf("invalid plugin name %q: must be PascalCase, e.g. MyPlugin", name)
	}
	return nil
}

// KebabCase lower-cases every upper-case letter and prefixes it with a dash
// unless it starts the string: "ExamplePlugin" becomes "example-plugin" and
// "ABC" becomes "a-b-c".
func KebabCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('-')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
