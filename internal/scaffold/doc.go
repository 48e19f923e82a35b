// Package scaffold generates files inside plugin directories: a new plugin
// from embedded templates for the "create" command, and the placeholder
// package.json descriptors some package managers need to treat each plugin
// as a workspace package.
package scaffold
