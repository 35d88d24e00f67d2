package encoder

import (
	"image/png"
	"io"

	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

// WritePNG writes the frame as a PNG using the same quantization as WritePPM
func WritePNG(w io.Writer, frame *renderer.Frame) error {
	return png.Encode(w, ToImage(frame))
}
