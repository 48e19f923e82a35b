// Package logger formats leveled console lines for the CLI. Messages are
// prefixed with colored badges when the output is a terminal; debug lines
// are only written when debug logging is enabled.
package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Logger writes informational output to out and diagnostics to errOut.
type Logger struct {
	out    io.Writer
	errOut io.Writer
	debug  bool

	r      *lipgloss.Renderer
	badges map[level]string
}

type level int

const (
	levelInfo level = iota
	levelWarn
	levelError
)

// New returns a Logger. Color is used only when out is a terminal and
// NO_COLOR is unset.
func New(out, errOut io.Writer, debug bool) *Logger {
	r := lipgloss.NewRenderer(out)
	if !colorEnabled(out) {
		r.SetColorProfile(termenv.Ascii)
	}

	l := &Logger{out: out, errOut: errOut, debug: debug, r: r}
	l.badges = map[level]string{
		levelInfo:  r.NewStyle().Background(lipgloss.Color("4")).Foreground(lipgloss.Color("15")).Render(" INFO "),
		levelWarn:  r.NewStyle().Background(lipgloss.Color("3")).Foreground(lipgloss.Color("0")).Render(" WARN "),
		levelError: r.NewStyle().Background(lipgloss.Color("1")).Foreground(lipgloss.Color("15")).Render(" ERROR "),
	}
	return l
}

// Default returns a Logger bound to the process's standard streams.
func Default(debug bool) *Logger {
	return New(os.Stdout, os.Stderr, debug)
}

func colorEnabled(w io.Writer) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Out returns the writer used for regular output.
func (l *Logger) Out() io.Writer { return l.out }

// ErrOut returns the writer used for diagnostics.
func (l *Logger) ErrOut() io.Writer { return l.errOut }

// DebugEnabled reports whether Debugf writes anything.
func (l *Logger) DebugEnabled() bool { return l.debug }

// Debugf writes a dimmed line to the diagnostic stream when debug is on.
func (l *Logger) Debugf(format string, args ...any) {
	if !l.debug {
		return
	}
	fmt.Fprintln(l.errOut, l.style("8").Render(fmt.Sprintf(format, args...)))
}

// Log writes msg as-is to the output stream.
func (l *Logger) Log(msg string) {
	fmt.Fprintln(l.out, msg)
}

// Logf formats and writes a line to the output stream.
func (l *Logger) Logf(format string, args ...any) {
	fmt.Fprintf(l.out, format+"\n", args...)
}

// Infof writes an INFO line to the output stream.
func (l *Logger) Infof(format string, args ...any) {
	fmt.Fprintf(l.out, "%s %s\n", l.badges[levelInfo], fmt.Sprintf(format, args...))
}

// Warnf writes a WARN line to the diagnostic stream.
func (l *Logger) Warnf(format string, args ...any) {
	fmt.Fprintf(l.errOut, "%s %s\n", l.badges[levelWarn], fmt.Sprintf(format, args...))
}

// Errorf writes an ERROR line to the diagnostic stream.
func (l *Logger) Errorf(format string, args ...any) {
	fmt.Fprintf(l.errOut, "%s %s\n", l.badges[levelError], fmt.Sprintf(format, args...))
}

// NewLine writes an empty line to the output stream.
func (l *Logger) NewLine() {
	fmt.Fprintln(l.out)
}

func (l *Logger) style(color string) lipgloss.Style {
	return l.r.NewStyle().Foreground(lipgloss.Color(color))
}

// Yellow highlights names, flags and file names.
func (l *Logger) Yellow(s string) string { return l.style("11").Render(s) }

// Cyan highlights section headings.
func (l *Logger) Cyan(s string) string { return l.style("14").Render(s) }

// Gray dims secondary items such as unavailable plugins.
func (l *Logger) Gray(s string) string { return l.style("8").Render(s) }

// Green marks fast or successful results.
func (l *Logger) Green(s string) string { return l.style("10").Render(s) }

// Red marks slow or failed results.
func (l *Logger) Red(s string) string { return l.style("9").Render(s) }

// Title renders the product name in the help header.
func (l *Logger) Title(s string) string { return l.style("10").Bold(true).Render(s) }
