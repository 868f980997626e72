package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sitescribe/sitescribe/internal/model"
)

// newTestGenerator creates a Generator in a temp dir with a fixed clock.
func newTestGenerator(t *testing.T) *Generator {
	t.Helper()

	g, err := NewGenerator(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create generator: %v", err)
	}
	g.now = func() time.Time {
		return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	}
	return g
}

// readFile reads a generated report for assertions.
func readFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path) //nolint:gosec // Test-controlled path
	if err != nil {
		t.Fatalf("failed to read generated file: %v", err)
	}
	return string(data)
}

// TestGenerateDump tests the full content dump report.
func TestGenerateDump(t *testing.T) {
	t.Parallel()

	t.Run("writes one section per page", func(t *testing.T) {
		t.Parallel()

		g := newTestGenerator(t)
		contents := []*model.Content{
			{
				URL:         "https://site.test",
				Title:       "Home - Acme",
				Description: "Acme makes robots.",
				MainContent: "Welcome to Acme.",
				Headings:    []model.Heading{{Level: 1, Text: "Welcome"}, {Level: 2, Text: "What we do"}},
				Metadata:    map[string]string{"description": "Acme makes robots.", "author": "Acme"},
			},
			{
				URL:   "https://site.test/about",
				Title: "About - Acme",
			},
		}

		path, err := g.GenerateDump(contents, "")
		if err != nil {
			t.Fatalf("failed to generate dump: %v", err)
		}

		if filepath.Base(path) != "Acme.md" {
			t.Errorf("expected file name derived from titles, got %q", filepath.Base(path))
		}

		out := readFile(t, path)
		for _, want := range []string{
			"# Full Content Dump: Acme",
			"**Total Pages:** 2",
			"**Generated:** 2025-06-01 12:00:00",
			"## Page 1: Home - Acme",
			"## Page 2: About - Acme",
			"**URL:** https://site.test",
			"### Description",
			"### Metadata",
			"**description:** Acme makes robots.",
			"### Headings",
			"- Welcome",
			"  - What we do",
			"### Content",
			"Welcome to Acme.",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("dump missing %q", want)
			}
		}
	})

	t.Run("metadata keys render in fixed order", func(t *testing.T) {
		t.Parallel()

		g := newTestGenerator(t)
		contents := []*model.Content{{
			URL:   "https://site.test",
			Title: "Acme",
			Metadata: map[string]string{
				"author":      "Jane",
				"description": "Robots",
				"keywords":    "robots, automation",
			},
		}}

		path, err := g.GenerateDump(contents, "")
		if err != nil {
			t.Fatalf("failed to generate dump: %v", err)
		}

		out := readFile(t, path)
		descIdx := strings.Index(out, "**description:**")
		keyIdx := strings.Index(out, "**keywords:**")
		authIdx := strings.Index(out, "**author:**")
		if descIdx < 0 || keyIdx < 0 || authIdx < 0 {
			t.Fatalf("metadata entries missing from dump:\n%s", out)
		}
		if !(descIdx < keyIdx && keyIdx < authIdx) {
			t.Error("metadata keys not in fixed order")
		}
	})

	t.Run("explicit site name wins", func(t *testing.T) {
		t.Parallel()

		g := newTestGenerator(t)
		contents := []*model.Content{{URL: "https://site.test", Title: "Whatever"}}

		path, err := g.GenerateDump(contents, "My Site")
		if err != nil {
			t.Fatalf("failed to generate dump: %v", err)
		}
		if filepath.Base(path) != "My Site.md" {
			t.Errorf("expected 'My Site.md', got %q", filepath.Base(path))
		}
	})

	t.Run("untitled pages get a placeholder", func(t *testing.T) {
		t.Parallel()

		g := newTestGenerator(t)
		contents := []*model.Content{{URL: "https://site.test"}}

		path, err := g.GenerateDump(contents, "site")
		if err != nil {
			t.Fatalf("failed to generate dump: %v", err)
		}

		if !strings.Contains(readFile(t, path), "## Page 1: Untitled") {
			t.Error("expected 'Untitled' placeholder for missing title")
		}
	})
}

// TestGenerateSummary tests the Q&A summary report.
func TestGenerateSummary(t *testing.T) {
	t.Parallel()

	t.Run("writes overview, answers, and page digests", func(t *testing.T) {
		t.Parallel()

		g := newTestGenerator(t)
		summary := &model.Summary{
			SiteURL:    "https://site.test",
			SiteTitle:  "Acme",
			TotalPages: 2,
			Answers: []model.QuestionAnswer{
				{
					Question:   "What does Acme do?",
					Answer:     "Acme builds robots.",
					Sources:    []string{"https://site.test"},
					Confidence: model.ConfidenceHigh,
				},
				{
					Question:   "What is the fax number?",
					Answer:     "No relevant information found.",
					Confidence: model.ConfidenceLow,
				},
			},
			PageSummaries: []model.PageSummary{
				{
					URL:         "https://site.test",
					Title:       "Home",
					Description: "Landing page.",
					Headings:    []string{"Welcome"},
				},
			},
		}

		path, err := g.GenerateSummary(summary)
		if err != nil {
			t.Fatalf("failed to generate summary: %v", err)
		}

		if filepath.Base(path) != "Acme - Summary.md" {
			t.Errorf("expected 'Acme - Summary.md', got %q", filepath.Base(path))
		}

		out := readFile(t, path)
		for _, want := range []string{
			"# Website Summary: Acme",
			"Pages Crawled",
			"## Questions & Answers",
			"### 1. What does Acme do?",
			"Acme builds robots.",
			"**Sources:**",
			"- https://site.test",
			"*Confidence: high*",
			"### 2. What is the fax number?",
			"*Confidence: low*",
			"### Home",
			"Landing page.",
			"**Key sections:**",
			"- Welcome",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("summary missing %q", want)
			}
		}
	})

	t.Run("missing site title falls back to a generic file name", func(t *testing.T) {
		t.Parallel()

		g := newTestGenerator(t)
		path, err := g.GenerateSummary(&model.Summary{})
		if err != nil {
			t.Fatalf("failed to generate summary: %v", err)
		}
		if filepath.Base(path) != "website - Summary.md" {
			t.Errorf("expected 'website - Summary.md', got %q", filepath.Base(path))
		}
	})
}

// TestGenerateIndex tests the index report.
func TestGenerateIndex(t *testing.T) {
	t.Parallel()

	g := newTestGenerator(t)
	path, err := g.GenerateIndex([]string{
		"/some/dir/Acme.md",
		"/some/dir/Acme - Summary.md",
	})
	if err != nil {
		t.Fatalf("failed to generate index: %v", err)
	}

	if filepath.Base(path) != "index.md" {
		t.Errorf("expected index.md, got %q", filepath.Base(path))
	}

	out := readFile(t, path)
	for _, want := range []string{
		"# Sitescribe Output",
		"[Acme](Acme.md)",
		"[Acme - Summary](Acme - Summary.md)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("index missing %q", want)
		}
	}
}

// TestNewGenerator tests output directory creation.
func TestNewGenerator(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "nested", "output")
	if _, err := NewGenerator(dir); err != nil {
		t.Fatalf("failed to create generator: %v", err)
	}

	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("output directory not created: %v", err)
	}
	if !info.IsDir() {
		t.Error("output path is not a directory")
	}
}
