package preset

import (
	"errors"
	"testing"
)

func TestResolve_Builtins(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		width  int
		height int
	}{
		{"desktop", 1920, 1080},
		{"laptop", 1366, 768},
		{"tablet", 768, 1024},
		{"phone", 390, 844},
		{"phone-ls", 844, 390},
		{"4k", 3840, 2160},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Resolve(tt.name)
			if err != nil {
				t.Fatalf("Resolve(%q): %v", tt.name, err)
			}
			if p.Width != tt.width || p.Height != tt.height {
				t.Errorf("Resolve(%q) = %dx%d, want %dx%d", tt.name, p.Width, p.Height, tt.width, tt.height)
			}
			if p.Label == "" {
				t.Errorf("Resolve(%q) has empty label", tt.name)
			}
		})
	}
}

func TestResolve_Unknown(t *testing.T) {
	t.Parallel()

	_, err := Resolve("nonexistent")
	if !errors.Is(err, ErrUnknownPreset) {
		t.Fatalf("Resolve(nonexistent) error = %v, want ErrUnknownPreset", err)
	}
}

func TestAll_StableOrder(t *testing.T) {
	t.Parallel()

	want := []string{"desktop", "laptop", "tablet", "phone", "phone-ls", "4k"}
	all := All()
	if len(all) != len(want) {
		t.Fatalf("All() returned %d presets, want %d", len(all), len(want))
	}
	for i, p := range all {
		if p.Name != want[i] {
			t.Errorf("All()[%d].Name = %q, want %q", i, p.Name, want[i])
		}
	}
}
