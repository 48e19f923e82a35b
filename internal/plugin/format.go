package plugin

import "strings"

// Styler highlights parts of formatted output.
type Styler interface {
	Cyan(string) string
	Gray(string) string
}

// FormatList renders available and unavailable plugin names as two bulleted
// sections. Empty sections are omitted.
func FormatList(s Styler, available, unavailable []string) string {
	var b strings.Builder

	if len(available) > 0 {
		b.WriteString(s.Cyan("Available plugins:") + "\n")
		for i, name := range available {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(" - " + name)
		}
	}

	if len(unavailable) > 0 {
		if len(available) > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(s.Cyan("Unavailable plugins:") + "\n")
		for i, name := range unavailable {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(" - " + s.Gray(name))
		}
	}

	return b.String()
}
