// Package encoder turns accumulated radiance into 8-bit images.
package encoder

import (
	"image"
	"image/color"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

// Quantize averages an accumulated color over its sample count, gamma-corrects it
// with gamma 2 (a square root per channel), clamps to [0, 0.999] and scales to [0, 255].
func Quantize(sum core.Color, samples int) (r, g, b int) {
	c := sum.Multiply(1.0 / float64(samples)).Sqrt()
	return channel(c.X), channel(c.Y), channel(c.Z)
}

// channel scales one gamma-corrected value to [0, 255]. NaN maps to 0.
func channel(v float64) int {
	if !(v > 0) {
		return 0
	}
	return int(256 * min(v, 0.999))
}

// ToImage converts a frame into an opaque RGBA image
func ToImage(frame *renderer.Frame) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, frame.Width, frame.Height))
	for y := 0; y < frame.Height; y++ {
		for x := 0; x < frame.Width; x++ {
			r, g, b := Quantize(frame.At(x, y), frame.Samples)
			img.SetRGBA(x, y, color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255})
		}
	}
	return img
}
