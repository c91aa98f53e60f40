package loaders

import (
	"path/filepath"
	"testing"
	"time"
)

func TestWatcher_ReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.toml")
	writeFile(t, path, "title = \"v1\"\n")

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	defer w.Close()

	// unrelated files in the same directory are ignored
	writeFile(t, filepath.Join(dir, "other.toml"), "title = \"x\"\n")
	writeFile(t, path, "title = \"v2\"\n")

	abs, _ := filepath.Abs(path)
	select {
	case got := <-w.Changes():
		if got != abs {
			t.Errorf("Expected change for %s, got %s", abs, got)
		}
	case err := <-w.Errors():
		t.Fatalf("Watcher error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("Timed out waiting for change")
	}
}

func TestWatcher_Close(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.toml")
	writeFile(t, path, "")

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("First close failed: %v", err)
	}
	if err := w.Close(); err == nil {
		t.Error("Expected an error on second close")
	}

	select {
	case _, ok := <-w.Changes():
		if ok {
			t.Error("Expected changes channel to be closed")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Timed out waiting for close")
	}
}

func TestNewWatcher_MissingDir(t *testing.T) {
	if _, err := NewWatcher(filepath.Join(t.TempDir(), "nope", "scene.toml")); err == nil {
		t.Error("Expected an error for a missing directory")
	}
}
