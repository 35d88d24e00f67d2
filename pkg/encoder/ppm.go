package encoder

import (
	"bufio"
	"fmt"
	"io"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

// WritePPM writes the frame as a plain-text P3 image, one "R G B" line per pixel,
// rows top to bottom and columns left to right
func WritePPM(w io.Writer, frame *renderer.Frame) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", frame.Width, frame.Height); err != nil {
		return err
	}

	for y := 0; y < frame.Height; y++ {
		for x := 0; x < frame.Width; x++ {
			if err := WriteColor(bw, frame.At(x, y), frame.Samples); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}

// WriteColor writes a single quantized pixel line
func WriteColor(w io.Writer, sum core.Color, samples int) error {
	r, g, b := Quantize(sum, samples)
	_, err := fmt.Fprintf(w, "%d %d %d\n", r, g, b)
	return err
}
