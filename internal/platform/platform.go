package platform

import (
	"path/filepath"
	"runtime"
)

// NodeModulesBin is the directory package managers place local binaries in.
var NodeModulesBin = filepath.Join("node_modules", ".bin")

// IsWindows returns true if the current OS is Windows.
func IsWindows() bool {
	return runtime.GOOS == "windows"
}

// NodeBin returns the path of a locally installed node binary under root.
// On Windows package managers install .cmd shims instead of extension-less
// scripts.
func NodeBin(root, name string) string {
	return filepath.Join(root, NodeModulesBin, binName(runtime.GOOS, name))
}

func binName(goos, name string) string {
	if goos == "windows" {
		return name + ".cmd"
	}
	return name
}
