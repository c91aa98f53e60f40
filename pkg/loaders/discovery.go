package loaders

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/df07/go-recursive-raytracer/pkg/scene"
	"github.com/pelletier/go-toml/v2"
)

// DefaultScenesDir is where scene files are looked up by name
const DefaultScenesDir = "scenes"

const maxPathLength = 512

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`          // name accepted by Resolve
	Name        string `json:"name"`        // display name
	Description string `json:"description"` // optional description
	Type        string `json:"type"`        // "builtin" or "file"
	FilePath    string `json:"filePath,omitempty"`
}

// sceneHeader is the subset of a scene file read during discovery
type sceneHeader struct {
	Title       string `toml:"title"`
	Description string `toml:"description"`
}

// Discover lists the builtin scenes followed by every .toml file in dir. A
// missing directory only yields the builtins.
func Discover(dir string) ([]SceneInfo, error) {
	var infos []SceneInfo
	for _, name := range scene.BuiltinNames() {
		infos = append(infos, SceneInfo{ID: name, Name: titleCase(name), Type: "builtin"})
	}

	if _, err := os.Stat(dir); errors.Is(err, os.ErrNotExist) {
		return infos, nil
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.toml"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
	}

	var found []SceneInfo
	for _, path := range files {
		found = append(found, readSceneInfo(path))
	}
	sort.Slice(found, func(i, j int) bool { return found[i].ID < found[j].ID })

	return append(infos, found...), nil
}

// readSceneInfo falls back to the file name when the header cannot be read
func readSceneInfo(path string) SceneInfo {
	id := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	info := SceneInfo{ID: id, Name: titleCase(id), Type: "file", FilePath: path}

	data, err := os.ReadFile(path)
	if err != nil {
		return info
	}
	var header sceneHeader
	if err := toml.Unmarshal(data, &header); err != nil {
		return info
	}
	if header.Title != "" {
		info.Name = header.Title
	}
	info.Description = header.Description
	return info
}

// Resolve turns a builtin name, a scene name in dir, or a .toml path into a
// scene
func Resolve(name, dir string) (*scene.Scene, error) {
	if s, err := scene.Builtin(name); err == nil {
		return s, nil
	}

	path := name
	if !strings.HasSuffix(strings.ToLower(name), ".toml") {
		path = filepath.Join(dir, name+".toml")
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("%w: %q", scene.ErrUnknownScene, name)
		}
	}
	return LoadScene(path)
}

// ValidateScenePath checks that path is a .toml file inside root
func ValidateScenePath(path, root string) error {
	if path == "" {
		return fmt.Errorf("filename cannot be empty")
	}
	if strings.Contains(path, "\x00") {
		return fmt.Errorf("invalid file path: null bytes not allowed")
	}
	if len(path) > maxPathLength {
		return fmt.Errorf("file path too long: maximum %d characters allowed", maxPathLength)
	}
	if !strings.EqualFold(filepath.Ext(path), ".toml") {
		return fmt.Errorf("invalid file type: only .toml files are allowed")
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return err
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	rel, err := filepath.Rel(absRoot, absPath)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return fmt.Errorf("file path must be in %s/ directory", root)
	}
	return nil
}

func titleCase(s string) string {
	words := strings.FieldsFunc(s, func(r rune) bool { return r == '-' || r == '_' })
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
