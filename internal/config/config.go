package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/PalmDevs/better-aliucordrn-plugins-template/internal/branding"
	"github.com/spf13/viper"
)

const (
	// Dir is the CLI's working directory inside the project root.
	Dir = ".cli"

	fileName = "config"
	fileType = "yaml"

	// DebugEnv toggles debug logging independently of the prefixed variables.
	DebugEnv = "CLI_DEBUG"
)

// Keys understood in config.yaml and as ALIUPLUGRN_<KEY> environment variables.
const (
	KeyDebug                 = "debug"
	KeyDefaultPackageManager = "default_package_manager"
	KeyPluginsDir            = "plugins_dir"
	KeyJunkDir               = "junk_dir"
	KeyScanConcurrency       = "scan_concurrency"
)

// Config holds resolved settings for a single project root.
type Config struct {
	root string
	v    *viper.Viper
}

// FilePath returns the config file location for a project root.
func FilePath(root string) string {
	return filepath.Join(root, Dir, fileName+"."+fileType)
}

// Load reads the optional project config file and binds environment
// overrides. A missing file is not an error; a malformed one is.
func Load(root string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(FilePath(root))
	v.SetConfigType(fileType)
	v.SetEnvPrefix(branding.EnvPrefix())
	v.AutomaticEnv()

	if err := v.BindEnv(KeyDebug, DebugEnv, branding.EnvVar(KeyDebug)); err != nil {
		return nil, fmt.Errorf("binding %s: %w", DebugEnv, err)
	}

	v.SetDefault(KeyDefaultPackageManager, "")
	v.SetDefault(KeyPluginsDir, "plugins")
	v.SetDefault(KeyJunkDir, filepath.Join(Dir, ".pm-junk"))
	v.SetDefault(KeyScanConcurrency, runtime.NumCPU())

	if _, err := os.Stat(FilePath(root)); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", FilePath(root), err)
		}
	}

	return &Config{root: root, v: v}, nil
}

// Root returns the project root the config was loaded for.
func (c *Config) Root() string { return c.root }

// Debug reports whether debug logging is enabled. Any non-empty value that
// is not a recognizable boolean counts as enabled.
func (c *Config) Debug() bool {
	raw := c.v.GetString(KeyDebug)
	if raw == "" {
		return false
	}
	if b, err := strconv.ParseBool(raw); err == nil {
		return b
	}
	return true
}

// DefaultPackageManager returns the package manager to assume when the user
// agent names one the CLI does not recognize.
func (c *Config) DefaultPackageManager() string {
	return c.v.GetString(KeyDefaultPackageManager)
}

// PluginsDir returns the absolute plugins directory.
func (c *Config) PluginsDir() string {
	return c.resolve(c.v.GetString(KeyPluginsDir))
}

// JunkDir returns the absolute scratch directory for moved lockfiles.
func (c *Config) JunkDir() string {
	return c.resolve(c.v.GetString(KeyJunkDir))
}

// ScanConcurrency returns the maximum number of plugin directories
// inspected at once. Values below one are clamped to one.
func (c *Config) ScanConcurrency() int {
	n := c.v.GetInt(KeyScanConcurrency)
	if n < 1 {
		return 1
	}
	return n
}

// Get returns a raw config value by key. Returns empty string if not set.
func (c *Config) Get(key string) string {
	return c.v.GetString(key)
}

func (c *Config) resolve(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.root, p)
}
