package pkgmanager

import (
	"os"
	"strings"
)

// UserAgentEnv is set by npm, yarn and pnpm when they run a package script,
// e.g. "pnpm/8.6.0 npm/? node/v18.16.0 linux x64".
const UserAgentEnv = "npm_config_user_agent"

// PackageManager names the package manager the CLI runs under.
type PackageManager string

// Package managers the CLI knows how to build with.
const (
	NPM     PackageManager = "npm"
	PNPM    PackageManager = "pnpm"
	Yarn    PackageManager = "yarn"
	Unknown PackageManager = "unknown"
)

// Supported lists the package managers builds are guaranteed to work with.
var Supported = []PackageManager{NPM, PNPM, Yarn}

// IsSupported reports whether p is one of Supported.
func (p PackageManager) IsSupported() bool {
	for _, s := range Supported {
		if p == s {
			return true
		}
	}
	return false
}

func (p PackageManager) String() string { return string(p) }

// Detect resolves the package manager from a user agent string. Agents that
// name none of the supported managers resolve to fallback when set, and to
// the agent's leading product name otherwise.
func Detect(userAgent, fallback string) PackageManager {
	for _, pm := range []PackageManager{NPM, Yarn, PNPM} {
		if strings.HasPrefix(userAgent, string(pm)) {
			return pm
		}
	}
	if fallback != "" {
		return PackageManager(fallback)
	}
	name, _, _ := strings.Cut(userAgent, "/")
	if name == "" {
		return Unknown
	}
	return PackageManager(name)
}

// UserAgent returns the user agent from the environment. When the variable
// is absent the CLI was started directly, which is treated as npm.
func UserAgent() string {
	if v, ok := os.LookupEnv(UserAgentEnv); ok {
		return v
	}
	return string(NPM)
}
