package report

import (
	"strings"
	"testing"
)

// TestExtractOrgName tests organization name detection from titles.
func TestExtractOrgName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		titles []string
		want   string
	}{
		{
			name: "common fragment across titles",
			titles: []string{
				"Home - Acme Robotics",
				"About - Acme Robotics",
				"Contact - Acme Robotics",
			},
			want: "Acme Robotics",
		},
		{
			name: "pipe separator",
			titles: []string{
				"Products | Widget Works",
				"Careers | Widget Works",
			},
			want: "Widget Works",
		},
		{
			name:   "single plain title",
			titles: []string{"Acme Robotics"},
			want:   "Acme Robotics",
		},
		{
			name:   "generic page names ignored",
			titles: []string{"Home - Acme", "About Us - Acme"},
			want:   "Acme",
		},
		{
			name:   "no titles",
			titles: nil,
			want:   "website",
		},
		{
			name:   "only generic fragments falls back to the first title",
			titles: []string{"Home", "About"},
			want:   "Home",
		},
		{
			name: "first-seen wins ties",
			titles: []string{
				"Alpha Corp - Welcome Page",
				"Alpha Corp - Welcome Page",
			},
			want: "Alpha Corp",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ExtractOrgName(tt.titles)
			if got != tt.want {
				t.Errorf("ExtractOrgName(%v) = %q, want %q", tt.titles, got, tt.want)
			}
		})
	}
}

// TestSanitizeFilename tests file name cleaning.
func TestSanitizeFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"Acme Robotics", "Acme Robotics"},
		{`Acme: The "Best" <Robots>`, "Acme_ The _Best_ _Robots_"},
		{"a/b\\c", "a_b_c"},
		{"  padded  ", "padded"},
	}

	for _, tt := range tests {
		if got := sanitizeFilename(tt.in); got != tt.want {
			t.Errorf("sanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	long := sanitizeFilename(strings.Repeat("x", 150))
	if len(long) != 100 {
		t.Errorf("expected 100-char cap, got %d", len(long))
	}
}
