package pkgmanager

import "testing"

func TestDetect(t *testing.T) {
	tests := []struct {
		name      string
		userAgent string
		fallback  string
		want      PackageManager
	}{
		{"npm", "npm/9.6.7 node/v18.16.0 linux x64 workspaces/false", "", NPM},
		{"yarn", "yarn/1.22.19 npm/? node/v18.16.0 linux x64", "", Yarn},
		{"pnpm", "pnpm/8.6.0 npm/? node/v18.16.0 linux x64", "", PNPM},
		{"bun without fallback", "bun/1.0.0 npm/? node/v18.16.0 linux x64", "", PackageManager("bun")},
		{"bun with fallback", "bun/1.0.0 npm/? node/v18.16.0 linux x64", "pnpm", PNPM},
		{"empty agent", "", "", Unknown},
		{"empty agent with fallback", "", "yarn", Yarn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Detect(tt.userAgent, tt.fallback); got != tt.want {
				t.Errorf("Detect(%q, %q) = %q, want %q", tt.userAgent, tt.fallback, got, tt.want)
			}
		})
	}
}

func TestUserAgent(t *testing.T) {
	t.Setenv(UserAgentEnv, "pnpm/8.6.0")
	if got := UserAgent(); got != "pnpm/8.6.0" {
		t.Errorf("UserAgent() = %q, want %q", got, "pnpm/8.6.0")
	}
}

func TestIsSupported(t *testing.T) {
	for _, pm := range Supported {
		if !pm.IsSupported() {
			t.Errorf("%s.IsSupported() = false, want true", pm)
		}
	}
	for _, pm := range []PackageManager{Unknown, "bun", ""} {
		if pm.IsSupported() {
			t.Errorf("%q.IsSupported() = true, want false", pm)
		}
	}
}
