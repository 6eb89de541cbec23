package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestDefaultIsSilent(t *testing.T) {
	Set(nil)
	if L().Enabled(context.Background(), slog.LevelError) {
		t.Fatal("expected the default logger to be disabled")
	}
}

func TestSet(t *testing.T) {
	var buf bytes.Buffer
	Set(slog.New(slog.NewTextHandler(&buf, nil)))
	defer Set(nil)
	L().Info("display registered", "name", "sim")
	if !strings.Contains(buf.String(), "name=sim") {
		t.Fatalf("expected record in output, got %q", buf.String())
	}
}
