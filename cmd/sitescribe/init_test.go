package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// runInit executes the init command with the given arguments.
func runInit(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewInitCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}

// TestInitCmd tests questions file generation.
func TestInitCmd(t *testing.T) {
	t.Run("creates the questions file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "questions.yaml")

		out, err := runInit(t, "-o", path)
		if err != nil {
			t.Fatalf("init failed: %v", err)
		}
		if !strings.Contains(out, path) {
			t.Errorf("expected created path in output, got %q", out)
		}

		data, err := os.ReadFile(path) //nolint:gosec // Test-controlled path
		if err != nil {
			t.Fatalf("questions file not created: %v", err)
		}
		if !strings.Contains(string(data), "company:") {
			t.Error("expected starter questions in the generated file")
		}
	})

	t.Run("refuses to overwrite without force", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "questions.yaml")
		if err := os.WriteFile(path, []byte("mine"), 0600); err != nil {
			t.Fatalf("failed to seed file: %v", err)
		}

		if _, err := runInit(t, "-o", path); err == nil {
			t.Error("expected error for existing file without -f")
		}

		data, _ := os.ReadFile(path) //nolint:gosec,errcheck // Test-controlled path
		if string(data) != "mine" {
			t.Error("existing file was overwritten")
		}
	})

	t.Run("overwrites with force", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "questions.yaml")
		if err := os.WriteFile(path, []byte("mine"), 0600); err != nil {
			t.Fatalf("failed to seed file: %v", err)
		}

		if _, err := runInit(t, "-o", path, "-f"); err != nil {
			t.Fatalf("init -f failed: %v", err)
		}

		data, err := os.ReadFile(path) //nolint:gosec // Test-controlled path
		if err != nil {
			t.Fatalf("failed to read questions file: %v", err)
		}
		if string(data) == "mine" {
			t.Error("file was not overwritten with -f")
		}
	})

	t.Run("creates intermediate directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "dir", "questions.yaml")

		if _, err := runInit(t, "-o", path); err != nil {
			t.Fatalf("init failed: %v", err)
		}
		if _, err := os.Stat(path); err != nil {
			t.Errorf("questions file not created in nested directory: %v", err)
		}
	})

	t.Run("generated file loads as questions", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "questions.yaml")

		if _, err := runInit(t, "-o", path); err != nil {
			t.Fatalf("init failed: %v", err)
		}

		data, err := os.ReadFile(path) //nolint:gosec // Test-controlled path
		if err != nil {
			t.Fatalf("failed to read questions file: %v", err)
		}
		if len(data) == 0 {
			t.Error("generated questions file is empty")
		}
	})
}
