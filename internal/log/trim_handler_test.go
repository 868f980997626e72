package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

// TestTrimHandler tests attribute truncation.
func TestTrimHandler(t *testing.T) {
	t.Parallel()

	t.Run("short strings pass through unchanged", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(NewTrimHandler(slog.NewTextHandler(&buf, nil)))

		logger.Info("fetched", "url", "https://example.com/about")

		out := buf.String()
		if !strings.Contains(out, "https://example.com/about") {
			t.Errorf("expected full URL in output, got %q", out)
		}
		if strings.Contains(out, Ellipsis+"\"") {
			t.Errorf("short value was truncated: %q", out)
		}
	})

	t.Run("long strings are truncated", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(NewTrimHandler(slog.NewTextHandler(&buf, nil)))

		long := strings.Repeat("x", MaxAttrLen*2)
		logger.Info("fetched", "url", long)

		out := buf.String()
		if strings.Contains(out, long) {
			t.Error("oversized value logged untrimmed")
		}
		if !strings.Contains(out, strings.Repeat("x", MaxAttrLen)+Ellipsis) {
			t.Errorf("expected truncated value with ellipsis, got %q", out)
		}
	})

	t.Run("group attributes are trimmed recursively", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(NewTrimHandler(slog.NewTextHandler(&buf, nil)))

		long := strings.Repeat("y", MaxAttrLen+10)
		logger.Info("page", slog.Group("fetch", slog.String("error", long)))

		out := buf.String()
		if strings.Contains(out, long) {
			t.Error("grouped value logged untrimmed")
		}
		if !strings.Contains(out, Ellipsis) {
			t.Errorf("expected ellipsis in output, got %q", out)
		}
	})

	t.Run("non-string attributes are untouched", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(NewTrimHandler(slog.NewTextHandler(&buf, nil)))

		logger.Info("crawl complete", "pages", 42)

		if !strings.Contains(buf.String(), "pages=42") {
			t.Errorf("expected integer attribute, got %q", buf.String())
		}
	})

	t.Run("WithAttrs trims persistent attributes", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		base := NewTrimHandler(slog.NewTextHandler(&buf, nil))
		logger := slog.New(base).With("seed", strings.Repeat("z", MaxAttrLen+5))

		logger.Info("starting")

		out := buf.String()
		if strings.Contains(out, strings.Repeat("z", MaxAttrLen+5)) {
			t.Error("persistent attribute logged untrimmed")
		}
		if !strings.Contains(out, Ellipsis) {
			t.Errorf("expected ellipsis in output, got %q", out)
		}
	})
}
