package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestNewNilBindsDefault(t *testing.T) {
	if New(nil) == nil {
		t.Fatal("New(nil) returned nil")
	}
}

func TestWithCarriesAttributes(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, nil))

	log := New(base).With("component", "period")
	log.Info(context.Background(), "period found", "r", "4")

	out := buf.String()
	if !strings.Contains(out, "component=period") {
		t.Fatalf("missing With attribute in output: %s", out)
	}
	if !strings.Contains(out, "r=4") {
		t.Fatalf("missing call attribute in output: %s", out)
	}
}
