package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-recursive-raytracer/pkg/canvas"
	"github.com/df07/go-recursive-raytracer/pkg/renderer"
)

func TestDefault_IsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default config should be valid: %v", err)
	}
}

func TestParse_OverridesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
width = 320
height = 240
mode = "sequential"
format = "ppm"
fresnel = true
`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.Width != 320 || cfg.Height != 240 || !cfg.Fresnel {
		t.Errorf("Unexpected config %+v", cfg)
	}
	if cfg.Depth != Default().Depth || cfg.BandHeight != Default().BandHeight {
		t.Error("Unset fields should keep their defaults")
	}
	if rc := cfg.RendererConfig(); rc.Mode != renderer.Sequential || rc.BandHeight != 3 {
		t.Errorf("Unexpected renderer config %+v", rc)
	}
	if cfg.ImageFormat() != canvas.PPM {
		t.Errorf("Expected ppm, got %s", cfg.ImageFormat())
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		toml string
	}{
		{"negative width", "width = -1"},
		{"bad mode", `mode = "tiles"`},
		{"bad format", `format = "gif"`},
		{"negative depth", "depth = -2"},
		{"fov out of range", "fov_degrees = 180.0"},
		{"zero band height", "band_height = 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.toml))
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	if _, err := Parse([]byte("width = ")); err == nil {
		t.Error("Expected a TOML syntax error")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "render.toml")
	if err := os.WriteFile(path, []byte("depth = 6\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Depth != 6 {
		t.Errorf("Expected depth 6, got %d", cfg.Depth)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("Expected an error for a missing file")
	}
}

func TestMarshal_RoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Width = 123
	cfg.Format = "tiff"

	data, err := cfg.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	back, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if back != cfg {
		t.Errorf("Expected %+v, got %+v", cfg, back)
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := Default()
	if err := cfg.ApplyPreset("preview"); err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 160 || cfg.Height != 80 || cfg.Depth != 1 {
		t.Errorf("Preset not applied: %+v", cfg)
	}

	if err := cfg.ApplyPreset("ultra"); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}

	names := PresetNames()
	if len(names) != 3 || names[0] != "fast" || names[2] != "slow" {
		t.Errorf("Unexpected presets %v", names)
	}
}
