// Package platform isolates OS-conditional behavior: where package-manager
// shims for local node binaries live and how they are named.
package platform
