package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-recursive-raytracer/pkg/config"
	"github.com/df07/go-recursive-raytracer/pkg/loaders"
	"github.com/df07/go-recursive-raytracer/pkg/logging"
	"github.com/df07/go-recursive-raytracer/pkg/renderer"
	"github.com/df07/go-recursive-raytracer/pkg/scene"
)

// options holds the parsed command line
type options struct {
	Scene      string
	ConfigPath string
	Preset     string
	Mode       string
	Width      int
	Height     int
	Depth      int
	FOV        float64
	Format     string
	Output     string
	ScenesDir  string
	Watch      bool
	List       bool
	Help       bool
}

func parseFlags(args []string) (options, *flag.FlagSet, error) {
	var opts options
	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	fs.StringVar(&opts.Scene, "scene", "default", "Builtin scene name, scene name in -scenes, or path to a .toml scene file")
	fs.StringVar(&opts.ConfigPath, "config", "", "Path to a TOML render config")
	fs.StringVar(&opts.Preset, "preset", "", "Quality preset: "+strings.Join(config.PresetNames(), ", "))
	fs.StringVar(&opts.Mode, "mode", "", "Render mode: 'parallel' or 'sequential'")
	fs.IntVar(&opts.Width, "width", 0, "Image width in pixels (overrides config and preset)")
	fs.IntVar(&opts.Height, "height", 0, "Image height in pixels (overrides config and preset)")
	fs.IntVar(&opts.Depth, "depth", -1, "Maximum reflection/refraction recursion depth")
	fs.Float64Var(&opts.FOV, "fov", 0, "Camera field of view in degrees (overrides the scene)")
	fs.StringVar(&opts.Format, "format", "", "Output format: png, ppm, bmp or tiff")
	fs.StringVar(&opts.Output, "output", "", "Output directory")
	fs.StringVar(&opts.ScenesDir, "scenes", loaders.DefaultScenesDir, "Directory searched for scene files")
	fs.BoolVar(&opts.Watch, "watch", false, "Re-render whenever the scene file changes")
	fs.BoolVar(&opts.List, "list", false, "List available scenes and exit")
	fs.BoolVar(&opts.Help, "help", false, "Show help information")
	err := fs.Parse(args)
	return opts, fs, err
}

// overrides records which config values were chosen explicitly and so
// replace the scene's own camera and depth
type overrides struct {
	size  bool
	depth bool
	fov   bool
}

// buildConfig layers defaults, the config file, the preset and finally the
// flags
func buildConfig(opts options) (config.RenderConfig, overrides, error) {
	var set overrides
	cfg := config.Default()
	if opts.ConfigPath != "" {
		var err error
		if cfg, err = config.Load(opts.ConfigPath); err != nil {
			return cfg, set, err
		}
		set = overrides{size: true, depth: true, fov: true}
	}
	if opts.Preset != "" {
		if err := cfg.ApplyPreset(opts.Preset); err != nil {
			return cfg, set, err
		}
		set.size, set.depth = true, true
	}

	if opts.Width > 0 {
		cfg.Width = opts.Width
		set.size = true
	}
	if opts.Height > 0 {
		cfg.Height = opts.Height
		set.size = true
	}
	if opts.Depth >= 0 {
		cfg.Depth = opts.Depth
		set.depth = true
	}
	if opts.FOV != 0 {
		cfg.FOVDegrees = opts.FOV
		set.fov = true
	}
	if opts.Mode != "" {
		cfg.Mode = opts.Mode
	}
	if opts.Format != "" {
		cfg.Format = strings.ToLower(opts.Format)
	}
	if opts.Output != "" {
		cfg.Output = opts.Output
	}

	if err := cfg.Validate(); err != nil {
		return cfg, overrides{}, err
	}
	return cfg, set, nil
}

// applyConfig pushes config values into a loaded scene
func applyConfig(s *scene.Scene, cfg config.RenderConfig, set overrides) {
	if set.size {
		s.Resize(cfg.Width, cfg.Height)
	}
	if set.fov {
		s.Camera = s.Camera.WithFieldOfView(cfg.FOVDegrees * math.Pi / 180)
	}
	if set.depth {
		s.World.RecursiveDepth = cfg.Depth
	}
	if cfg.Fresnel {
		s.World.Fresnel = true
	}
}

// outputPath builds output/<scene>/render_<timestamp>_<id>.<ext>
func outputPath(dir, sceneName, renderID string, cfg config.RenderConfig, now time.Time) string {
	id := renderID
	if len(id) > 8 {
		id = id[:8]
	}
	name := fmt.Sprintf("render_%s_%s%s", now.Format("20060102_150405"), id, cfg.ImageFormat().Extension())
	return filepath.Join(dir, sceneName, name)
}

// render loads, renders and saves a scene, returning the written path
func render(opts options, cfg config.RenderConfig, set overrides) (string, error) {
	s, err := loaders.Resolve(opts.Scene, opts.ScenesDir)
	if err != nil {
		return "", err
	}
	applyConfig(s, cfg, set)

	logging.Info("Rendering scene",
		"scene", s.Name,
		"shapes", s.ShapeCount(),
		"lights", len(s.World.Lights),
		"bounds", s.Bounds().String(),
		"size", fmt.Sprintf("%dx%d", s.Camera.HSize, s.Camera.VSize),
		"depth", s.World.RecursiveDepth,
		"fresnel", s.World.Fresnel)

	r := renderer.NewRenderer(cfg.RendererConfig(), logging.Logger())
	r.OnBandComplete = func(done, total int) {
		if done == total || done%10 == 0 {
			logging.Debug("Progress", "bands", done, "total", total)
		}
	}
	img, stats := r.Render(s.World, s.Camera)

	path := outputPath(cfg.Output, s.Name, stats.RenderID, cfg, time.Now())
	if err := img.Save(path, cfg.ImageFormat()); err != nil {
		return "", err
	}

	logging.Info("Render saved",
		"path", path,
		"render_id", stats.RenderID,
		"elapsed", stats.Elapsed,
		"workers", stats.Workers)
	return path, nil
}

// watch renders once and then again every time the scene file changes,
// until interrupted
func watch(opts options, cfg config.RenderConfig, set overrides) error {
	path := opts.Scene
	if !strings.HasSuffix(strings.ToLower(path), ".toml") {
		path = filepath.Join(opts.ScenesDir, opts.Scene+".toml")
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("-watch needs a scene file: %w", err)
	}

	w, err := loaders.NewWatcher(path)
	if err != nil {
		return err
	}
	defer w.Close()

	if _, err := render(opts, cfg, set); err != nil {
		logging.Error("Render failed", "err", err)
	}

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	defer signal.Stop(interrupt)

	logging.Info("Watching for changes", "path", path)
	for {
		select {
		case _, ok := <-w.Changes():
			if !ok {
				return nil
			}
			logging.Info("Scene changed, re-rendering", "path", path)
			// a broken edit is reported and the watch continues
			if _, err := render(opts, cfg, set); err != nil {
				logging.Error("Render failed", "err", err)
			}
		case err, ok := <-w.Errors():
			if !ok {
				return nil
			}
			logging.Warn("Watcher error", "err", err)
		case <-interrupt:
			return nil
		}
	}
}

// listScenes prints every scene Resolve would accept
func listScenes(out io.Writer, dir string) error {
	infos, err := loaders.Discover(dir)
	if err != nil {
		return err
	}
	for _, info := range infos {
		line := fmt.Sprintf("  %-16s %-8s %s", info.ID, info.Type, info.Name)
		if info.Description != "" {
			line += " - " + info.Description
		}
		fmt.Fprintln(out, line)
	}
	return nil
}

func printHelp(out io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(out, "Recursive Raytracer")
	fmt.Fprintln(out, "Usage: raytracer [options]")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Options:")
	fs.SetOutput(out)
	fs.PrintDefaults()
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Available scenes:")
	for _, name := range scene.BuiltinNames() {
		fmt.Fprintf(out, "  %s\n", name)
	}
	fmt.Fprintln(out, "  <name>   - scenes/<name>.toml")
	fmt.Fprintln(out, "  file.toml - any TOML scene file")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Output will be saved to output/<scene>/render_<timestamp>_<id>.<ext>")
}

func main() {
	opts, fs, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		os.Exit(2)
	}

	if opts.Help {
		printHelp(os.Stdout, fs)
		return
	}
	if opts.List {
		if err := listScenes(os.Stdout, opts.ScenesDir); err != nil {
			logging.Fatal("Failed to list scenes", "err", err)
		}
		return
	}

	cfg, set, err := buildConfig(opts)
	if err != nil {
		logging.Fatal("Invalid configuration", "err", err)
	}
	if err := logging.SetLevel(cfg.LogLevel); err != nil {
		logging.Fatal("Invalid configuration", "err", err)
	}

	if opts.Watch {
		if err := watch(opts, cfg, set); err != nil {
			logging.Fatal("Watch failed", "err", err)
		}
		return
	}

	if _, err := render(opts, cfg, set); err != nil {
		logging.Fatal("Render failed", "scene", opts.Scene, "err", err)
	}
}
