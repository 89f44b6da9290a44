package renderer

import (
	"fmt"
	"time"
)

// RenderStats tracks statistics for a completed render
type RenderStats struct {
	Width           int
	Height          int
	SamplesPerPixel int
	TotalSamples    int
	Elapsed         time.Duration
}

func newRenderStats(width, height, samplesPerPixel int) RenderStats {
	return RenderStats{
		Width:           width,
		Height:          height,
		SamplesPerPixel: samplesPerPixel,
		TotalSamples:    width * height * samplesPerPixel,
	}
}

// String formats the statistics for log output
func (s RenderStats) String() string {
	return fmt.Sprintf("%dx%d, %d samples/pixel, %d rays in %v",
		s.Width, s.Height, s.SamplesPerPixel, s.TotalSamples, s.Elapsed)
}
