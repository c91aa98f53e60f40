package loaders

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-recursive-raytracer/pkg/scene"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "glass-box.toml"), "title = \"Glass Box\"\ndescription = \"a cube\"\n")
	writeFile(t, filepath.Join(dir, "bare.toml"), "[[shapes]]\ntype = \"sphere\"\n")
	writeFile(t, filepath.Join(dir, "notes.txt"), "ignored")

	infos, err := Discover(dir)
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}

	builtins := len(scene.BuiltinNames())
	if len(infos) != builtins+2 {
		t.Fatalf("Expected %d scenes, got %d: %+v", builtins+2, len(infos), infos)
	}
	for _, info := range infos[:builtins] {
		if info.Type != "builtin" {
			t.Errorf("Expected builtins first, got %+v", info)
		}
	}

	bare, glass := infos[builtins], infos[builtins+1]
	if bare.ID != "bare" || bare.Name != "Bare" || bare.Type != "file" {
		t.Errorf("Unexpected fallback info %+v", bare)
	}
	if glass.Name != "Glass Box" || glass.Description != "a cube" {
		t.Errorf("Unexpected header info %+v", glass)
	}
}

func TestDiscover_MissingDir(t *testing.T) {
	infos, err := Discover(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatal(err)
	}
	if len(infos) != len(scene.BuiltinNames()) {
		t.Errorf("Expected only builtins, got %d", len(infos))
	}
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "ball.toml"), "[[shapes]]\ntype = \"sphere\"\n")

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"builtin", "cubes", "cubes"},
		{"file by name", "ball", "ball"},
		{"file by path", filepath.Join(dir, "ball.toml"), "ball"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Resolve(tt.input, dir)
			if err != nil {
				t.Fatalf("Resolve failed: %v", err)
			}
			if s.Name != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, s.Name)
			}
		})
	}

	if _, err := Resolve("missing", dir); !errors.Is(err, scene.ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}
}

func TestValidateScenePath(t *testing.T) {
	tests := []struct {
		name  string
		path  string
		valid bool
	}{
		{"inside root", "scenes/glass.toml", true},
		{"nested", "scenes/demo/glass.toml", true},
		{"traversal", "scenes/../main.toml", false},
		{"outside root", "/etc/passwd.toml", false},
		{"wrong extension", "scenes/glass.pbrt", false},
		{"empty", "", false},
		{"null byte", "scenes/a\x00.toml", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateScenePath(tt.path, "scenes")
			if (err == nil) != tt.valid {
				t.Errorf("Expected valid=%v, got %v", tt.valid, err)
			}
		})
	}
}

func TestTitleCase(t *testing.T) {
	if got := titleCase("glass_box-demo"); got != "Glass Box Demo" {
		t.Errorf("Expected %q, got %q", "Glass Box Demo", got)
	}
}

func TestBundledScenes(t *testing.T) {
	dir := filepath.Join("..", "..", DefaultScenesDir)
	files, err := filepath.Glob(filepath.Join(dir, "*.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if len(files) == 0 {
		t.Skip("no bundled scenes")
	}

	for _, path := range files {
		t.Run(filepath.Base(path), func(t *testing.T) {
			s, err := LoadScene(path)
			if err != nil {
				t.Fatalf("LoadScene failed: %v", err)
			}
			if s.ShapeCount() == 0 || len(s.World.Lights) == 0 {
				t.Errorf("Expected shapes and lights, got %d and %d", s.ShapeCount(), len(s.World.Lights))
			}
		})
	}
}
