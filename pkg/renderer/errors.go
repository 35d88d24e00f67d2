package renderer

import "errors"

var (
	ErrInvalidImageSize = errors.New("renderer: image width and height must be at least 2 pixels")
	ErrInvalidSamples   = errors.New("renderer: samples per pixel must be at least 1")
	ErrInvalidDepth     = errors.New("renderer: max depth must be at least 1")
	ErrNoWorld          = errors.New("renderer: no world to render")
	ErrNoCamera         = errors.New("renderer: no camera defined")
)
