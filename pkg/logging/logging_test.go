package logging

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

var _ core.Logger = Logger()

func TestLogging_LevelsAndFields(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	if err := SetLevel("warn"); err != nil {
		t.Fatal(err)
	}
	defer SetLevel("info")

	Info("hidden message")
	Warn("shown message", "render_id", "abc123")

	out := buf.String()
	if strings.Contains(out, "hidden message") {
		t.Errorf("Info should be filtered at warn level: %q", out)
	}
	if !strings.Contains(out, "shown message") || !strings.Contains(out, "render_id=abc123") {
		t.Errorf("Expected warning with fields, got %q", out)
	}
}

func TestLogging_With(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	With("scene", "cubes").Info("loaded")
	if out := buf.String(); !strings.Contains(out, "scene=cubes") {
		t.Errorf("Expected child logger fields, got %q", out)
	}
}

func TestSetLevel_Invalid(t *testing.T) {
	if err := SetLevel("loud"); err == nil {
		t.Error("Expected an error for an unknown level")
	}
}
