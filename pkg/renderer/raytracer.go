package renderer

import (
	"math"
	"math/rand"
	"time"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// ShadowAcneEpsilon is the smallest t accepted for a hit, so a scattered ray
// does not re-intersect the surface it just left
const ShadowAcneEpsilon = 0.001

var (
	skyWhite = core.NewVec3(1.0, 1.0, 1.0)
	skyBlue  = core.NewVec3(0.5, 0.7, 1.0)
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        50,
	}
}

// Options configures a Raytracer
type Options struct {
	Width, Height int
	Sampling      SamplingConfig

	// Random drives pixel jitter, lens and material sampling. Nil means a source seeded with 42.
	Random *rand.Rand

	// Logger receives the scanline countdown. Nil disables progress output.
	Logger core.Logger
}

// Raytracer handles the rendering process
type Raytracer struct {
	world  core.Shape
	camera *Camera
	width  int
	height int
	config SamplingConfig
	random *rand.Rand
	logger core.Logger
}

// NewRaytracer validates the options and creates a new raytracer
func NewRaytracer(world core.Shape, camera *Camera, opts Options) (*Raytracer, error) {
	switch {
	case world == nil:
		return nil, ErrNoWorld
	case camera == nil:
		return nil, ErrNoCamera
	case opts.Width < 2 || opts.Height < 2:
		return nil, ErrInvalidImageSize
	case opts.Sampling.SamplesPerPixel < 1:
		return nil, ErrInvalidSamples
	case opts.Sampling.MaxDepth < 1:
		return nil, ErrInvalidDepth
	}

	random := opts.Random
	if random == nil {
		random = rand.New(rand.NewSource(42))
	}

	return &Raytracer{
		world:  world,
		camera: camera,
		width:  opts.Width,
		height: opts.Height,
		config: opts.Sampling,
		random: random,
		logger: opts.Logger,
	}, nil
}

// RayColor returns the radiance carried back along r from a world of shapes.
// depth bounds the number of bounces; once exhausted the path contributes black.
func RayColor(r core.Ray, world core.Shape, depth int, random *rand.Rand) core.Color {
	return rayColor(r, world, depth, random, nil)
}

func rayColor(r core.Ray, world core.Shape, depth int, random *rand.Rand, traced *int64) core.Color {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}
	if traced != nil {
		*traced++
	}

	hit, isHit := world.Hit(r, ShadowAcneEpsilon, math.Inf(1))
	if !isHit {
		return BackgroundGradient(r)
	}

	scatter, didScatter := hit.Material.Scatter(r, *hit, random)
	if !didScatter {
		return core.Vec3{} // Material absorbed the ray
	}

	return scatter.Attenuation.MultiplyVec(
		rayColor(scatter.Scattered, world, depth-1, random, traced))
}

// BackgroundGradient blends white at the horizon into sky blue overhead
func BackgroundGradient(r core.Ray) core.Color {
	unitDirection := r.Direction.Normalize()

	// Map y from [-1,1] to [0,1]
	t := 0.5 * (unitDirection.Y + 1.0)
	return core.Lerp(skyWhite, skyBlue, t)
}

// Render traces every pixel and returns the accumulated frame.
// Rows are visited from the top of the image down, columns left to right.
func (rt *Raytracer) Render() (*Frame, RenderStats) {
	frame := NewFrame(rt.width, rt.height, rt.config.SamplesPerPixel)
	startTime := time.Now()
	var raysTraced int64

	for j := rt.height - 1; j >= 0; j-- {
		if rt.logger != nil {
			rt.logger.Printf("Scanlines remaining: %d", j)
		}
		row := rt.height - 1 - j

		for i := 0; i < rt.width; i++ {
			colorAccum := core.Vec3{}

			for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
				// Jittered sub-pixel coordinates in [0,1]
				s := (float64(i) + rt.random.Float64()) / float64(rt.width-1)
				t := (float64(j) + rt.random.Float64()) / float64(rt.height-1)

				ray := rt.camera.GetRay(s, t, rt.random)
				colorAccum = colorAccum.Add(rayColor(ray, rt.world, rt.config.MaxDepth, rt.random, &raysTraced))
			}

			frame.Set(i, row, colorAccum)
		}
	}

	stats := RenderStats{
		Width:           rt.width,
		Height:          rt.height,
		TotalPixels:     rt.width * rt.height,
		SamplesPerPixel: rt.config.SamplesPerPixel,
		TotalSamples:    rt.width * rt.height * rt.config.SamplesPerPixel,
		MaxDepth:        rt.config.MaxDepth,
		RaysTraced:      raysTraced,
		RenderTime:      time.Since(startTime),
	}
	return frame, stats
}
