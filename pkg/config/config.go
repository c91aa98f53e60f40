package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/df07/go-recursive-raytracer/pkg/canvas"
	"github.com/df07/go-recursive-raytracer/pkg/renderer"
	"github.com/pelletier/go-toml/v2"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// RenderConfig holds everything the CLI and web server need to render a
// scene. Zero fields in a file keep their defaults.
type RenderConfig struct {
	Width      int     `toml:"width"`
	Height     int     `toml:"height"`
	FOVDegrees float64 `toml:"fov_degrees"` // replaces the scene camera fov
	Depth      int     `toml:"depth"`
	Mode       string  `toml:"mode"` // parallel or sequential
	BandHeight int     `toml:"band_height"`
	Workers    int     `toml:"workers"` // 0 = one per CPU
	Output     string  `toml:"output"`  // output directory
	Format     string  `toml:"format"`
	LogLevel   string  `toml:"log_level"`
	Fresnel    bool    `toml:"fresnel"`
}

// Default returns sensible default values
func Default() RenderConfig {
	return RenderConfig{
		Width:      400,
		Height:     200,
		FOVDegrees: 60,
		Depth:      4,
		Mode:       "parallel",
		BandHeight: 3,
		Workers:    0,
		Output:     "output",
		Format:     "png",
		LogLevel:   "info",
	}
}

// Load reads a TOML file over the defaults
func Load(path string) (RenderConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RenderConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes TOML over the defaults and validates the result
func Parse(data []byte) (RenderConfig, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return RenderConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return RenderConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the config as TOML
func (c RenderConfig) Marshal() ([]byte, error) {
	return toml.Marshal(c)
}

// Validate checks ranges and enumerations
func (c RenderConfig) Validate() error {
	var problems []string
	if c.Width <= 0 || c.Height <= 0 {
		problems = append(problems, fmt.Sprintf("image size %dx%d must be positive", c.Width, c.Height))
	}
	if c.FOVDegrees <= 0 || c.FOVDegrees >= 180 {
		problems = append(problems, fmt.Sprintf("fov_degrees %g must be in (0, 180)", c.FOVDegrees))
	}
	if c.Depth < 0 {
		problems = append(problems, fmt.Sprintf("depth %d must not be negative", c.Depth))
	}
	if c.BandHeight <= 0 {
		problems = append(problems, fmt.Sprintf("band_height %d must be positive", c.BandHeight))
	}
	if c.Workers < 0 {
		problems = append(problems, fmt.Sprintf("workers %d must not be negative", c.Workers))
	}
	if _, err := renderer.ParseMode(c.Mode); err != nil {
		problems = append(problems, err.Error())
	}
	if _, err := canvas.ParseFormat(c.Format); err != nil {
		problems = append(problems, err.Error())
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// RendererConfig converts to the renderer's own config. Call Validate first.
func (c RenderConfig) RendererConfig() renderer.Config {
	mode, _ := renderer.ParseMode(c.Mode)
	return renderer.Config{
		Mode:       mode,
		BandHeight: c.BandHeight,
		Workers:    c.Workers,
	}
}

// ImageFormat returns the parsed output format. Call Validate first.
func (c RenderConfig) ImageFormat() canvas.Format {
	f, _ := canvas.ParseFormat(c.Format)
	return f
}

// Preset adjusts resolution and recursion depth
type Preset struct {
	Width  int
	Height int
	Depth  int
}

var presets = map[string]Preset{
	"preview": {Width: 160, Height: 80, Depth: 1},
	"fast":    {Width: 400, Height: 200, Depth: 4},
	"slow":    {Width: 1600, Height: 800, Depth: 8},
}

// PresetNames lists the presets in alphabetical order
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplyPreset overwrites size and depth from a named preset
func (c *RenderConfig) ApplyPreset(name string) error {
	p, ok := presets[name]
	if !ok {
		return fmt.Errorf("%w: unknown preset %q (available: %s)",
			ErrInvalidConfig, name, strings.Join(PresetNames(), ", "))
	}
	c.Width = p.Width
	c.Height = p.Height
	c.Depth = p.Depth
	return nil
}
