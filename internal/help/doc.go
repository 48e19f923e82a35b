// Package help renders the CLI's help pages from the registered cobra
// command tree. It replaces cobra's default help output with a compact,
// colored listing of usage, options, arguments and commands.
package help
