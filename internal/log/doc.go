// Package log provides logging helpers built on log/slog.
//
// TrimHandler caps the length of string attribute values so that URLs,
// HTML fragments, and verbose fetch errors don't flood log output.
// Wrap any slog.Handler with it; the rest of the codebase logs through
// the standard slog API and never imports this package directly.
package log
