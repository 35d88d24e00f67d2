package scene

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/material"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

// ErrUnknownScene is returned for a scene name that is neither built in nor a scene file
var ErrUnknownScene = errors.New("scene: unknown scene")

// RandomSceneSeed seeds the layout of the random scene
const RandomSceneSeed = 2020

type builtinScene struct {
	description string
	build       func() *Scene
}

var builtins = map[string]builtinScene{
	"default": {
		description: "Diffuse, metal and hollow glass spheres on a yellow ground",
		build:       NewDefaultScene,
	},
	"two-spheres": {
		description: "A red diffuse sphere resting on a large ground sphere",
		build:       NewTwoSphereScene,
	},
	"focus": {
		description: "The default scene seen through a wide aperture lens",
		build:       NewFocusScene,
	},
	"random": {
		description: "Hundreds of small random spheres around three large ones",
		build:       func() *Scene { return NewRandomScene(rand.New(rand.NewSource(RandomSceneSeed))) },
	},
}

// BuiltinNames returns the names of all built-in scenes in sorted order
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewBuiltin creates the built-in scene with the given name
func NewBuiltin(name string) (*Scene, error) {
	b, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	return b.build(), nil
}

func standardCamera(lookFrom, lookAt core.Point3, vfov float64) renderer.CameraConfig {
	return renderer.CameraConfig{
		LookFrom:    lookFrom,
		LookAt:      lookAt,
		Up:          core.NewVec3(0, 1, 0),
		VFov:        vfov,
		AspectRatio: 16.0 / 9.0,
	}
}

// addDefaultObjects places the five spheres shared by the default and focus scenes
func addDefaultObjects(s *Scene) {
	center := material.NewLambertian(core.NewVec3(0.7, 0.3, 0.3))
	ground := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	gold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.0)
	glass := material.NewDielectric(1.5)

	s.Add(
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, center),
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, gold),
		// Hollow glass: both surfaces share one material, the inner one turned inside out
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, glass),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), -0.45, glass),
	)
}

// NewDefaultScene creates the default scene viewed from above and to the left
func NewDefaultScene() *Scene {
	s := NewScene("default", standardCamera(core.NewVec3(-2, 2, 1), core.NewVec3(0, 0, -1), 90))
	addDefaultObjects(s)
	return s
}

// NewFocusScene shows the default objects with a shallow depth of field focused on the center sphere
func NewFocusScene() *Scene {
	config := standardCamera(core.NewVec3(3, 3, 2), core.NewVec3(0, 0, -1), 20)
	config.Aperture = 2.0
	config.FocusDistance = config.LookFrom.Subtract(config.LookAt).Length()

	s := NewScene("focus", config)
	addDefaultObjects(s)
	return s
}

// NewTwoSphereScene creates a red sphere on a yellow ground, viewed from the origin down -z
func NewTwoSphereScene() *Scene {
	s := NewScene("two-spheres", standardCamera(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), 90))
	s.Add(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))),
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.7, 0.3, 0.3))),
	)
	return s
}

// NewRandomScene scatters small spheres of random materials around three large feature spheres
func NewRandomScene(random *rand.Rand) *Scene {
	config := standardCamera(core.NewVec3(13, 2, 3), core.NewVec3(0, 0, 0), 20)
	config.Aperture = 0.1
	config.FocusDistance = 10.0

	s := NewScene("random", config)
	s.SamplingConfig.SamplesPerPixel = 50

	s.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))))

	// One glass material shared by every small glass sphere
	glass := material.NewDielectric(1.5)
	clearing := core.NewVec3(4, 0.2, 0)

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := random.Float64()
			center := core.NewVec3(float64(a)+0.9*random.Float64(), 0.2, float64(b)+0.9*random.Float64())
			if center.Subtract(clearing).Length() <= 0.9 {
				continue
			}

			var mat core.Material
			switch {
			case chooseMat < 0.8:
				albedo := core.RandomVec3(random).MultiplyVec(core.RandomVec3(random))
				mat = material.NewLambertian(albedo)
			case chooseMat < 0.95:
				albedo := core.RandomVec3Range(random, 0.5, 1)
				mat = material.NewMetal(albedo, core.RandomRange(random, 0, 0.5))
			default:
				mat = glass
			}
			s.Add(geometry.NewSphere(center, 0.2, mat))
		}
	}

	s.Add(
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, glass),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)),
	)
	return s
}
