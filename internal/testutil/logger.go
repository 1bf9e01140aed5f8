// Package testutil provides shared helpers for tests.
package testutil

import (
	"log/slog"
	"strings"
	"testing"
)

// NewTestLogger creates a debug-level logger that routes records through
// t.Log, so log output lands next to the test that produced it.
func NewTestLogger(t *testing.T) *slog.Logger {
	t.Helper()
	return slog.New(slog.NewTextHandler(testWriter{t: t}, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

// testWriter adapts testing.T to io.Writer.
type testWriter struct {
	t *testing.T
}

func (w testWriter) Write(p []byte) (n int, err error) {
	// The text handler terminates records with a newline and t.Log adds
	// its own, so strip one to keep the output single-spaced.
	w.t.Log(strings.TrimSuffix(string(p), "\n"))
	return len(p), nil
}
