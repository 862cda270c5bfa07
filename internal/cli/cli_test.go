package cli

import (
	"strings"
	"testing"
)

func TestParseArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		want    Args
		wantErr string
	}{
		{
			name: "url only uses defaults",
			args: []string{"https://example.com"},
			want: Args{URL: "https://example.com", Preset: "desktop", WaitSeconds: 2},
		},
		{
			name: "url before flags",
			args: []string{"https://example.com", "-p", "phone", "--full-page"},
			want: Args{URL: "https://example.com", Preset: "phone", FullPage: true, WaitSeconds: 2},
		},
		{
			name: "long flags",
			args: []string{"--preset", "tablet", "--output", "/tmp/x", "--timeout", "10", "https://example.com"},
			want: Args{URL: "https://example.com", Preset: "tablet", Output: "/tmp/x", TimeoutSeconds: 10, WaitSeconds: 2},
		},
		{
			name: "explicit dimensions",
			args: []string{"https://example.com", "--width", "1280", "--height", "720"},
			want: Args{URL: "https://example.com", Preset: "desktop", Width: 1280, Height: 720, WaitSeconds: 2},
		},
		{
			name: "list without url",
			args: []string{"-l"},
			want: Args{Preset: "desktop", List: true, WaitSeconds: 2},
		},
		{
			name: "quiet",
			args: []string{"https://example.com", "-q"},
			want: Args{URL: "https://example.com", Preset: "desktop", Quiet: true, WaitSeconds: 2},
		},
		{
			name:    "missing url",
			args:    []string{"-p", "phone"},
			wantErr: "missing required URL",
		},
		{
			name:    "width without height",
			args:    []string{"https://example.com", "--width", "1280"},
			wantErr: "must be given together",
		},
		{
			name:    "extra positional",
			args:    []string{"https://example.com", "https://other.com"},
			wantErr: "unexpected arguments",
		},
		{
			name:    "unknown flag",
			args:    []string{"https://example.com", "--bogus"},
			wantErr: "flag provided but not defined",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseArgs(tt.args)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("ParseArgs(%v) error = %v, want containing %q", tt.args, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseArgs(%v): %v", tt.args, err)
			}

			if got.URL != tt.want.URL ||
				got.Preset != tt.want.Preset ||
				got.Output != tt.want.Output ||
				got.Width != tt.want.Width ||
				got.Height != tt.want.Height ||
				got.FullPage != tt.want.FullPage ||
				got.TimeoutSeconds != tt.want.TimeoutSeconds ||
				got.WaitSeconds != tt.want.WaitSeconds ||
				got.List != tt.want.List ||
				got.Quiet != tt.want.Quiet {
				t.Errorf("ParseArgs(%v) = %+v, want %+v", tt.args, got, tt.want)
			}
		})
	}
}
