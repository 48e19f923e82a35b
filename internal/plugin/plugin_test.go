package plugin

import (
	"testing"

	"github.com/PalmDevs/better-aliucordrn-plugins-template/internal/manifest"
	"github.com/google/go-cmp/cmp"
)

type plainStyler struct{}

func (plainStyler) Cyan(s string) string { return s }
func (plainStyler) Gray(s string) string { return "~" + s }

var samplePlugins = []Plugin{
	{Name: "A", Available: true, Manifest: &manifest.Manifest{Name: "A", Version: "1.2.3"}},
	{Name: "B", Available: false},
	{Name: "C", Available: true},
}

func TestPartition(t *testing.T) {
	available, unavailable := Partition(samplePlugins)
	if diff := cmp.Diff([]string{"A", "C"}, available); diff != "" {
		t.Errorf("available mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"B"}, unavailable); diff != "" {
		t.Errorf("unavailable mismatch (-want +got):\n%s", diff)
	}
}

func TestFind(t *testing.T) {
	if p, ok := Find(samplePlugins, "B"); !ok || p.Available {
		t.Errorf("Find(B) = %+v, %v", p, ok)
	}
	if _, ok := Find(samplePlugins, "b"); ok {
		t.Error("Find must match names exactly")
	}
}

func TestVersion(t *testing.T) {
	if got := samplePlugins[0].Version(); got != "1.2.3" {
		t.Errorf("Version() = %q", got)
	}
	if got := samplePlugins[1].Version(); got != "" {
		t.Errorf("Version() without manifest = %q", got)
	}
}

func TestFormatList(t *testing.T) {
	tests := []struct {
		name        string
		available   []string
		unavailable []string
		want        string
	}{
		{
			name:        "both",
			available:   []string{"A", "C"},
			unavailable: []string{"B"},
			want:        "Available plugins:\n - A\n - C\n\nUnavailable plugins:\n - ~B",
		},
		{
			name:      "available only",
			available: []string{"A"},
			want:      "Available plugins:\n - A",
		},
		{
			name:        "unavailable only",
			unavailable: []string{"B", "D"},
			want:        "Unavailable plugins:\n - ~B\n - ~D",
		},
		{
			name: "none",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatList(plainStyler{}, tt.available, tt.unavailable); got != tt.want {
				t.Errorf("FormatList() = %q, want %q", got, tt.want)
			}
		})
	}
}
