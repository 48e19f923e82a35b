package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, root, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Join(root, Dir), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(FilePath(root), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(DebugEnv, "")
	root := t.TempDir()

	cfg, err := Load(root)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Debug() {
		t.Error("Debug() = true, want false")
	}
	if got, want := cfg.PluginsDir(), filepath.Join(root, "plugins"); got != want {
		t.Errorf("PluginsDir() = %q, want %q", got, want)
	}
	if got, want := cfg.JunkDir(), filepath.Join(root, ".cli", ".pm-junk"); got != want {
		t.Errorf("JunkDir() = %q, want %q", got, want)
	}
	if cfg.DefaultPackageManager() != "" {
		t.Errorf("DefaultPackageManager() = %q, want empty", cfg.DefaultPackageManager())
	}
	if cfg.ScanConcurrency() < 1 {
		t.Errorf("ScanConcurrency() = %d, want >= 1", cfg.ScanConcurrency())
	}
}

func TestLoad_File(t *testing.T) {
	t.Setenv(DebugEnv, "")
	root := t.TempDir()
	writeConfig(t, root, `default_package_manager: pnpm
plugins_dir: src/plugins
scan_concurrency: 0
`)

	cfg, err := Load(root)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got := cfg.DefaultPackageManager(); got != "pnpm" {
		t.Errorf("DefaultPackageManager() = %q, want pnpm", got)
	}
	if got, want := cfg.PluginsDir(), filepath.Join(root, "src", "plugins"); got != want {
		t.Errorf("PluginsDir() = %q, want %q", got, want)
	}
	if got := cfg.ScanConcurrency(); got != 1 {
		t.Errorf("ScanConcurrency() = %d, want 1", got)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "plugins_dir: [unterminated\n")

	if _, err := Load(root); err == nil {
		t.Fatal("expected error for malformed config, got nil")
	}
}

func TestDebug_Env(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"false", false},
		{"0", false},
		{"yes", true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv(DebugEnv, tt.value)
			cfg, err := Load(t.TempDir())
			if err != nil {
				t.Fatalf("Load() error: %v", err)
			}
			if got := cfg.Debug(); got != tt.want {
				t.Errorf("Debug() with %s=%q = %v, want %v", DebugEnv, tt.value, got, tt.want)
			}
		})
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("ALIUPLUGRN_DEFAULT_PACKAGE_MANAGER", "yarn")
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got := cfg.DefaultPackageManager(); got != "yarn" {
		t.Errorf("DefaultPackageManager() = %q, want yarn", got)
	}
}
