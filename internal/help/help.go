package help

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/PalmDevs/better-aliucordrn-plugins-template/internal/branding"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// ErrUnknownCommand is returned when help is requested for a command that
// is not registered.
var ErrUnknownCommand = errors.New("unknown command")

// ArgsAnnotation is the cobra annotation key holding a command's positional
// argument descriptions. Use SetArgs and Args to read and write it.
const ArgsAnnotation = "aliuplugrn/args"

// Arg describes one positional argument of a command.
type Arg struct {
	Name        string
	Description string
}

// SetArgs records positional argument descriptions on cmd.
func SetArgs(cmd *cobra.Command, args ...Arg) {
	lines := make([]string, 0, len(args))
	for _, a := range args {
		lines = append(lines, a.Name+"\t"+a.Description)
	}
	if cmd.Annotations == nil {
		cmd.Annotations = map[string]string{}
	}
	cmd.Annotations[ArgsAnnotation] = strings.Join(lines, "\n")
}

// Args returns the positional argument descriptions recorded on cmd.
func Args(cmd *cobra.Command) []Arg {
	raw := cmd.Annotations[ArgsAnnotation]
	if raw == "" {
		return nil
	}
	var args []Arg
	for _, line := range strings.Split(raw, "\n") {
		name, desc, _ := strings.Cut(line, "\t")
		args = append(args, Arg{Name: name, Description: desc})
	}
	return args
}

// Styler highlights parts of the help page.
type Styler interface {
	Title(string) string
	Yellow(string) string
	Cyan(string) string
}

// Renderer prints help for a root command and its direct subcommands.
type Renderer struct {
	Root           *cobra.Command
	PackageManager string
	Version        string
	Style          Styler
}

// Render writes the program help when name is empty, or the help for the
// subcommand called name.
func (r *Renderer) Render(w io.Writer, name string) error {
	var target *cobra.Command
	if name != "" {
		for _, c := range r.Root.Commands() {
			if c.Name() == name {
				target = c
				break
			}
		}
		if target == nil {
			return fmt.Errorf("%w %q", ErrUnknownCommand, name)
		}
	}

	var b strings.Builder
	b.WriteString(r.Style.Title(branding.DisplayName()) + " " + r.Style.Yellow("v"+r.Version) + "\n")
	b.WriteString(r.Root.Short + "\n\n")

	if target == nil {
		r.writeProgram(&b)
	} else {
		r.writeCommand(&b, target)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func (r *Renderer) writeProgram(b *strings.Builder) {
	b.WriteString(r.Style.Cyan("Usage:") + " " + r.usagePrefix() + Usage(r.Root) + "\n")

	if opts := r.options(r.Root); len(opts) > 0 {
		b.WriteString("\n" + r.Style.Cyan("Options:") + "\n" + strings.Join(opts, "\n") + "\n")
	}

	var cmds []string
	for _, c := range Visible(r.Root) {
		line := " - " + r.Style.Yellow(c.Name())
		if u := Usage(c); u != "" {
			line += " " + u
		}
		cmds = append(cmds, line+" - "+c.Short)
	}
	if len(cmds) > 0 {
		b.WriteString("\n" + r.Style.Cyan("Commands:") + "\n" + strings.Join(cmds, "\n") + "\n")
	}
}

func (r *Renderer) writeCommand(b *strings.Builder, cmd *cobra.Command) {
	usage := cmd.Name()
	if u := Usage(cmd); u != "" {
		usage += " " + u
	}
	b.WriteString(r.Style.Cyan("Usage:") + " " + r.usagePrefix() + usage + "\n\n")
	b.WriteString(r.Style.Cyan("Description:") + " " + cmd.Short + "\n")

	if args := Args(cmd); len(args) > 0 {
		b.WriteString("\n" + r.Style.Cyan("Arguments:") + "\n")
		for _, a := range args {
			b.WriteString(" - " + r.Style.Yellow(a.Name) + " - " + a.Description + "\n")
		}
	}

	if opts := r.options(cmd); len(opts) > 0 {
		b.WriteString("\n" + r.Style.Cyan("Options:") + "\n" + strings.Join(opts, "\n") + "\n")
	}
}

func (r *Renderer) usagePrefix() string {
	pm := r.PackageManager
	if pm == "" {
		pm = "npm"
	}
	return pm + " run " + branding.ScriptName() + " -- "
}

// options formats the visible local flags of cmd, one per line.
func (r *Renderer) options(cmd *cobra.Command) []string {
	var lines []string
	for _, f := range VisibleFlags(cmd) {
		varname, usage := pflag.UnquoteUsage(f)
		names := []string{}
		if f.Shorthand != "" {
			names = append(names, r.Style.Yellow("-"+f.Shorthand))
		}
		long := "--" + f.Name
		if varname != "" && f.Value.Type() != "bool" {
			long += " <" + varname + ">"
		}
		names = append(names, r.Style.Yellow(long))
		lines = append(lines, " - "+strings.Join(names, ", ")+" - "+usage)
	}
	return lines
}

// VisibleFlags returns the non-hidden flags of cmd in definition order.
// The help flag is left out; the help command covers it.
func VisibleFlags(cmd *cobra.Command) []*pflag.Flag {
	var flags []*pflag.Flag
	fs := cmd.Flags()
	fs.SortFlags = false
	fs.VisitAll(func(f *pflag.Flag) {
		if f.Hidden || f.Name == "help" {
			return
		}
		flags = append(flags, f)
	})
	return flags
}

// Visible returns the subcommands of cmd that are neither hidden nor
// deprecated, the help command included.
func Visible(cmd *cobra.Command) []*cobra.Command {
	var cmds []*cobra.Command
	for _, c := range cmd.Commands() {
		if c.Hidden || c.Deprecated != "" {
			continue
		}
		cmds = append(cmds, c)
	}
	return cmds
}

// Usage returns the argument synopsis of cmd, e.g. "[options] [plugin]".
func Usage(cmd *cobra.Command) string {
	var parts []string
	if len(VisibleFlags(cmd)) > 0 {
		parts = append(parts, "[options]")
	}
	if fields := strings.Fields(cmd.Use); len(fields) > 1 {
		parts = append(parts, fields[1:]...)
	}
	if !cmd.HasParent() && len(Visible(cmd)) > 0 {
		parts = append(parts, "[command]")
	}
	return strings.Join(parts, " ")
}
