package scene

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

// DefaultWidth is the image width used when a scene does not recommend one
const DefaultWidth = 384

// Scene contains all the elements needed for rendering
type Scene struct {
	Name           string
	World          *geometry.HittableList // Objects in the scene, read-only while rendering
	CameraConfig   renderer.CameraConfig
	SamplingConfig renderer.SamplingConfig
	Width          int // Recommended image width
}

// NewScene creates an empty scene with default sampling
func NewScene(name string, cameraConfig renderer.CameraConfig) *Scene {
	return &Scene{
		Name:           name,
		World:          geometry.NewHittableList(),
		CameraConfig:   cameraConfig,
		SamplingConfig: renderer.DefaultSamplingConfig(),
		Width:          DefaultWidth,
	}
}

// Add appends shapes to the scene
func (s *Scene) Add(shapes ...core.Shape) {
	for _, shape := range shapes {
		s.World.Add(shape)
	}
}

// Camera builds the camera described by the scene's camera config
func (s *Scene) Camera() *renderer.Camera {
	return renderer.NewCamera(s.CameraConfig)
}

// ImageSize derives the image height from a width and the camera aspect ratio
func (s *Scene) ImageSize(width int) (int, int) {
	return width, int(float64(width) / s.CameraConfig.AspectRatio)
}
