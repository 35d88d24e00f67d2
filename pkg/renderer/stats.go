package renderer

import (
	"fmt"
	"time"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width           int           // Image width in pixels
	Height          int           // Image height in pixels
	TotalPixels     int           // Total number of pixels rendered
	SamplesPerPixel int           // Camera rays per pixel
	TotalSamples    int           // Total number of camera rays
	MaxDepth        int           // Bounce limit used
	RaysTraced      int64         // Camera and scattered rays tested against the world
	RenderTime      time.Duration // Wall time spent tracing
}

// RaysPerSample returns the mean path length in rays
func (s RenderStats) RaysPerSample() float64 {
	if s.TotalSamples == 0 {
		return 0
	}
	return float64(s.RaysTraced) / float64(s.TotalSamples)
}

// Rows returns the statistics as label/value pairs for tabular display
func (s RenderStats) Rows() [][]string {
	return [][]string{
		{"Resolution", fmt.Sprintf("%dx%d", s.Width, s.Height)},
		{"Pixels", fmt.Sprintf("%d", s.TotalPixels)},
		{"Samples per pixel", fmt.Sprintf("%d", s.SamplesPerPixel)},
		{"Total samples", fmt.Sprintf("%d", s.TotalSamples)},
		{"Max depth", fmt.Sprintf("%d", s.MaxDepth)},
		{"Rays traced", fmt.Sprintf("%d", s.RaysTraced)},
		{"Rays per sample", fmt.Sprintf("%.2f", s.RaysPerSample())},
		{"Render time", s.RenderTime.String()},
	}
}
