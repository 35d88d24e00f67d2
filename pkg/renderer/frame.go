package renderer

import "github.com/df07/go-weekend-raytracer/pkg/core"

// Frame holds per-pixel radiance sums, top row first.
// Every pixel was accumulated from the same number of samples.
type Frame struct {
	Width   int
	Height  int
	Samples int
	Pixels  []core.Color
}

// NewFrame allocates a black frame
func NewFrame(width, height, samples int) *Frame {
	return &Frame{
		Width:   width,
		Height:  height,
		Samples: samples,
		Pixels:  make([]core.Color, width*height),
	}
}

// Set stores the accumulated color for pixel (x, y), y counted from the top
func (f *Frame) Set(x, y int, sum core.Color) {
	f.Pixels[y*f.Width+x] = sum
}

// At returns the accumulated color for pixel (x, y), y counted from the top
func (f *Frame) At(x, y int) core.Color {
	return f.Pixels[y*f.Width+x]
}

// Average returns the mean radiance of pixel (x, y)
func (f *Frame) Average(x, y int) core.Color {
	return f.At(x, y).Multiply(1.0 / float64(f.Samples))
}
