package renderer

import (
	"fmt"
	"strings"
	"time"

	"github.com/df07/go-recursive-raytracer/pkg/canvas"
	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Mode selects how bands are scheduled
type Mode int

const (
	Parallel Mode = iota
	Sequential
)

func (m Mode) String() string {
	if m == Sequential {
		return "sequential"
	}
	return "parallel"
}

// ParseMode accepts "parallel" or "sequential"
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "parallel":
		return Parallel, nil
	case "sequential":
		return Sequential, nil
	default:
		return Parallel, fmt.Errorf("unknown render mode %q", s)
	}
}

// Config contains configuration for the render loop
type Config struct {
	Mode       Mode
	BandHeight int // rows per band
	Workers    int // parallel workers (0 = use CPU count)
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Mode:       Parallel,
		BandHeight: 3,
		Workers:    0,
	}
}

// Renderer turns a world and camera into a canvas
type Renderer struct {
	config Config
	logger core.Logger

	// OnBandComplete, when set, is called from the rendering goroutine after
	// each band finishes
	OnBandComplete func(done, total int)
}

// NewRenderer creates a renderer. A nil logger discards output.
func NewRenderer(config Config, logger core.Logger) *Renderer {
	if config.BandHeight <= 0 {
		config.BandHeight = DefaultConfig().BandHeight
	}
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Renderer{config: config, logger: logger}
}

// Config returns the renderer configuration
func (r *Renderer) Config() Config {
	return r.config
}

// Render traces every pixel of the camera's canvas. Sequential and parallel
// modes produce identical canvases.
func (r *Renderer) Render(world World, camera *Camera) (*canvas.Canvas, RenderStats) {
	start := time.Now()
	stats := newRenderStats()
	target := canvas.New(camera.HSize, camera.VSize)
	bands := Bands(camera.VSize, r.config.BandHeight)
	stats.Bands = len(bands)

	r.logger.Printf("Render %s: %dx%d in %d bands (%s)",
		stats.RenderID, camera.HSize, camera.VSize, len(bands), r.config.Mode)

	if r.config.Mode == Sequential {
		stats.Workers = 1
		stats.TotalPixels = r.renderSequential(world, camera, target, bands)
	} else {
		stats.Workers, stats.TotalPixels = r.renderParallel(world, camera, target, bands)
	}

	stats.finish(start)
	r.logger.Printf("Render %s completed in %v (%.0f rays/s)",
		stats.RenderID, stats.Elapsed, stats.RaysPerSecond)
	return target, stats
}

func (r *Renderer) renderSequential(world World, camera *Camera, target *canvas.Canvas, bands []Band) int {
	tracer := NewRaytracer(world, camera, target)
	total := 0
	for i, band := range bands {
		total += tracer.RenderBand(band)
		r.progress(i+1, len(bands))
	}
	return total
}

func (r *Renderer) renderParallel(world World, camera *Camera, target *canvas.Canvas, bands []Band) (int, int) {
	pool := NewWorkerPool(world, camera, target, len(bands), r.config.Workers)
	pool.Start()

	for i, band := range bands {
		pool.SubmitTask(BandTask{TaskID: i, Band: band})
	}

	total := 0
	for done := 1; done <= len(bands); done++ {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		total += result.Pixels
		r.progress(done, len(bands))
	}

	pool.Stop()
	return pool.GetNumWorkers(), total
}

func (r *Renderer) progress(done, total int) {
	if r.OnBandComplete != nil {
		r.OnBandComplete(done, total)
	}
}
