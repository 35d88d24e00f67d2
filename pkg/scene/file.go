package scene

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/material"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

var (
	ErrUnknownMaterial     = errors.New("scene: sphere references an undefined material")
	ErrUnknownMaterialType = errors.New("scene: unknown material type")
	ErrBadColor            = errors.New("scene: bad color")
)

// Vec3 is a JSON [x, y, z] triple
type Vec3 [3]float64

func (v Vec3) toCore() core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}

// Color is a JSON color: either an [r, g, b] triple in [0,1] or an SVG color name
type Color core.Vec3

// UnmarshalJSON accepts both color forms
func (c *Color) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		rgba, ok := colornames.Map[strings.ToLower(name)]
		if !ok {
			return fmt.Errorf("%w: unknown color name %q", ErrBadColor, name)
		}
		*c = Color(core.NewVec3(float64(rgba.R)/255, float64(rgba.G)/255, float64(rgba.B)/255))
		return nil
	}

	var triple Vec3
	if err := json.Unmarshal(data, &triple); err != nil {
		return fmt.Errorf("%w: %s", ErrBadColor, bytes.TrimSpace(data))
	}
	*c = Color(triple.toCore())
	return nil
}

// CameraFile is the camera block of a scene file
type CameraFile struct {
	LookFrom      Vec3    `json:"lookFrom"`
	LookAt        Vec3    `json:"lookAt"`
	Up            *Vec3   `json:"up,omitempty"`
	VFov          float64 `json:"vfov"`
	AspectRatio   float64 `json:"aspectRatio,omitempty"`
	Aperture      float64 `json:"aperture,omitempty"`
	FocusDistance float64 `json:"focusDistance,omitempty"`
}

// SamplingFile is the optional sampling block of a scene file
type SamplingFile struct {
	SamplesPerPixel int `json:"samplesPerPixel,omitempty"`
	MaxDepth        int `json:"maxDepth,omitempty"`
}

// MaterialFile describes one named material
type MaterialFile struct {
	Type            string  `json:"type"` // lambertian, metal, dielectric or absorber
	Albedo          *Color  `json:"albedo,omitempty"`
	Fuzz            float64 `json:"fuzz,omitempty"`
	RefractiveIndex float64 `json:"refractiveIndex,omitempty"`
}

// SphereFile places a sphere that uses a named material
type SphereFile struct {
	Center   Vec3    `json:"center"`
	Radius   float64 `json:"radius"`
	Material string  `json:"material"`
}

// File is the on-disk scene description
type File struct {
	Name        string                  `json:"name,omitempty"`
	Description string                  `json:"description,omitempty"`
	Group       string                  `json:"group,omitempty"`
	Width       int                     `json:"width,omitempty"`
	Camera      CameraFile              `json:"camera"`
	Sampling    SamplingFile            `json:"sampling"`
	Materials   map[string]MaterialFile `json:"materials"`
	Spheres     []SphereFile            `json:"spheres"`
}

// LoadFile reads and builds a JSON scene file
func LoadFile(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}

	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse scene file %s: %w", path, err)
	}

	if f.Name == "" {
		f.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return f.Build()
}

// Build converts the description into a renderable scene.
// Each named material is created once and shared by all spheres that reference it.
func (f *File) Build() (*Scene, error) {
	materials := make(map[string]core.Material, len(f.Materials))
	for name, def := range f.Materials {
		m, err := def.build()
		if err != nil {
			return nil, fmt.Errorf("material %q: %w", name, err)
		}
		materials[name] = m
	}

	s := NewScene(f.Name, f.Camera.config())
	if f.Width > 0 {
		s.Width = f.Width
	}
	if f.Sampling.SamplesPerPixel > 0 {
		s.SamplingConfig.SamplesPerPixel = f.Sampling.SamplesPerPixel
	}
	if f.Sampling.MaxDepth > 0 {
		s.SamplingConfig.MaxDepth = f.Sampling.MaxDepth
	}

	for i, sphere := range f.Spheres {
		m, ok := materials[sphere.Material]
		if !ok {
			return nil, fmt.Errorf("sphere %d: %w: %q", i, ErrUnknownMaterial, sphere.Material)
		}
		s.Add(geometry.NewSphere(sphere.Center.toCore(), sphere.Radius, m))
	}

	return s, nil
}

func (c CameraFile) config() renderer.CameraConfig {
	up := core.NewVec3(0, 1, 0)
	if c.Up != nil {
		up = c.Up.toCore()
	}
	aspect := c.AspectRatio
	if aspect <= 0 {
		aspect = 16.0 / 9.0
	}
	vfov := c.VFov
	if vfov <= 0 {
		vfov = 90
	}
	return renderer.CameraConfig{
		LookFrom:      c.LookFrom.toCore(),
		LookAt:        c.LookAt.toCore(),
		Up:            up,
		VFov:          vfov,
		AspectRatio:   aspect,
		Aperture:      c.Aperture,
		FocusDistance: c.FocusDistance,
	}
}

func (m MaterialFile) albedo() core.Color {
	if m.Albedo == nil {
		return core.NewVec3(0.5, 0.5, 0.5)
	}
	return core.Vec3(*m.Albedo)
}

func (m MaterialFile) build() (core.Material, error) {
	switch strings.ToLower(m.Type) {
	case "lambertian", "diffuse":
		return material.NewLambertian(m.albedo()), nil
	case "metal":
		return material.NewMetal(m.albedo(), m.Fuzz), nil
	case "dielectric", "glass":
		ior := m.RefractiveIndex
		if ior <= 0 {
			ior = 1.5
		}
		return material.NewDielectric(ior), nil
	case "absorber", "default":
		return material.NewAbsorber(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMaterialType, m.Type)
	}
}
