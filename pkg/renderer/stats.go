package renderer

import (
	"time"

	"github.com/google/uuid"
)

// RenderStats contains statistics about one render
type RenderStats struct {
	RenderID      string        // unique per render, used in file names and logs
	TotalPixels   int           // pixels traced
	Bands         int           // bands the canvas was split into
	Workers       int           // goroutines used, 1 when sequential
	Elapsed       time.Duration // wall time of the render
	RaysPerSecond float64       // primary rays per second
}

func newRenderStats() RenderStats {
	return RenderStats{RenderID: uuid.New().String()}
}

// finish records the elapsed time and derived throughput
func (s *RenderStats) finish(start time.Time) {
	s.Elapsed = time.Since(start)
	if seconds := s.Elapsed.Seconds(); seconds > 0 {
		s.RaysPerSecond = float64(s.TotalPixels) / seconds
	}
}
