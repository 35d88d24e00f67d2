package encoder

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

// Format selects an output image encoding
type Format int

const (
	PPM Format = iota
	PNG
)

func (f Format) String() string {
	switch f {
	case PPM:
		return "ppm"
	case PNG:
		return "png"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatForPath picks PNG for .png files and plain PPM for everything else
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".png") {
		return PNG
	}
	return PPM
}

// Encode writes the frame in the requested format
func Encode(w io.Writer, frame *renderer.Frame, format Format) error {
	switch format {
	case PNG:
		return WritePNG(w, frame)
	case PPM:
		return WritePPM(w, frame)
	default:
		return fmt.Errorf("encoder: unsupported format %v", format)
	}
}
