package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	hit, isHit := sphere.Hit(ray, 0.001, 1000.0)
	if isHit {
		t.Errorf("Expected miss, but got hit at t=%f", hit.T)
	}
}

func TestSphere_Hit_TangentIsMiss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	// Grazes the sphere exactly at (1,0,0): zero discriminant
	ray := core.NewRay(core.NewVec3(1, 0, 2), core.NewVec3(0, 0, -1))

	if hit, isHit := sphere.Hit(ray, 0.001, 1000.0); isHit {
		t.Errorf("Expected tangent ray to miss, got hit at t=%f", hit.T)
	}
}

func TestSphere_Hit_PointOnSurface(t *testing.T) {
	tests := []struct {
		name   string
		center core.Vec3
		radius float64
		origin core.Vec3
	}{
		{"unit sphere from +z", core.NewVec3(0, 0, 0), 1.0, core.NewVec3(0, 0, 5)},
		{"offset sphere", core.NewVec3(0, 0, -1), 0.5, core.NewVec3(0, 0, 0)},
		{"large ground sphere", core.NewVec3(0, -100.5, -1), 100, core.NewVec3(3, 2, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sphere := NewSphere(tt.center, tt.radius, nil)
			ray := core.NewRay(tt.origin, tt.center.Subtract(tt.origin))

			hit, isHit := sphere.Hit(ray, 0.001, math.Inf(1))
			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}
			if hit.T <= 0 {
				t.Errorf("Expected positive t, got %f", hit.T)
			}
			if d := hit.Point.Subtract(tt.center).Length(); math.Abs(d-tt.radius) > 1e-9 {
				t.Errorf("Hit point should lie on the sphere: distance %f, radius %f", d, tt.radius)
			}
		})
	}
}

func TestSphere_Hit_FrontAndBackFace(t *testing.T) {
	tests := []struct {
		name           string
		radius         float64
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		expectedT      float64
		expectedFront  bool
		expectedNormal core.Vec3
	}{
		{
			name:           "front face hit",
			radius:         1.0,
			rayOrigin:      core.NewVec3(0, 0, 2),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectedT:      1.0,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "back face hit",
			radius:         1.0,
			rayOrigin:      core.NewVec3(0, 0, 0),
			rayDirection:   core.NewVec3(0, 0, 1),
			expectedT:      1.0,
			expectedFront:  false,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
		{
			name:           "negative radius from outside",
			radius:         -1.0,
			rayOrigin:      core.NewVec3(0, 0, 2),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectedT:      1.0,
			expectedFront:  false,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "negative radius from inside",
			radius:         -1.0,
			rayOrigin:      core.NewVec3(0, 0, 0),
			rayDirection:   core.NewVec3(0, 0, 1),
			expectedT:      1.0,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sphere := NewSphere(core.NewVec3(0, 0, 0), tt.radius, nil)
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection)
			hit, isHit := sphere.Hit(ray, 0.001, 1000.0)

			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}

			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}

			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected front face %t, got %t", tt.expectedFront, hit.FrontFace)
			}

			if !hit.Normal.NearlyEquals(tt.expectedNormal, 1e-9) {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}

			if ray.Direction.Dot(hit.Normal) > 0 {
				t.Errorf("Normal %v should face against ray direction %v", hit.Normal, ray.Direction)
			}
		})
	}
}

func TestSphere_Hit_Bounds(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	ray := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))

	// Test tMax bound
	hit, isHit := sphere.Hit(ray, 0.001, 0.5)
	if isHit {
		t.Errorf("Expected miss due to tMax bound, but got hit at t=%f", hit.T)
	}

	// Test tMin bound
	hit, isHit = sphere.Hit(ray, 3.5, 1000.0)
	if isHit {
		t.Errorf("Expected miss due to tMin bound, but got hit at t=%f", hit.T)
	}

	// Near root excluded by tMin, far root accepted
	hit, isHit = sphere.Hit(ray, 1.5, 1000.0)
	if !isHit {
		t.Fatal("Expected far intersection, got miss")
	}
	if math.Abs(hit.T-3.0) > 1e-9 || hit.FrontFace {
		t.Errorf("Expected back-face hit at t=3, got t=%f front=%t", hit.T, hit.FrontFace)
	}

	// Bounds are exclusive
	if hit, isHit = sphere.Hit(ray, 0.001, 1.0); isHit {
		t.Errorf("tMax should be exclusive, got hit at t=%f", hit.T)
	}
}

func TestSphere_Hit_RejectsNaN(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -1), 0.5, nil)

	// A zero direction normalizes to NaN components
	nanRay := core.NewRay(core.NewVec3(0, 0, 0), core.Vec3{}.Normalize())
	if hit, isHit := sphere.Hit(nanRay, 0.001, math.Inf(1)); isHit {
		t.Errorf("NaN ray should miss, got hit at t=%f", hit.T)
	}

	nanOrigin := core.NewRay(core.NewVec3(math.NaN(), 0, 0), core.NewVec3(0, 0, -1))
	if hit, isHit := sphere.Hit(nanOrigin, 0.001, math.Inf(1)); isHit {
		t.Errorf("Ray with NaN origin should miss, got hit at t=%f", hit.T)
	}

	list := NewHittableList(sphere)
	if _, isHit := list.Hit(nanRay, 0.001, math.Inf(1)); isHit {
		t.Error("NaN ray should miss the whole list")
	}
}

type markerMaterial struct{ id int }

func (m *markerMaterial) Scatter(core.Ray, core.HitRecord, *rand.Rand) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}

func TestSphere_Hit_CarriesSharedMaterial(t *testing.T) {
	shared := &markerMaterial{id: 1}
	outer := NewSphere(core.NewVec3(0, 0, 0), 0.5, shared)
	inner := NewSphere(core.NewVec3(0, 0, 0), -0.45, shared)
	ray := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))

	for _, s := range []*Sphere{outer, inner} {
		hit, isHit := s.Hit(ray, 0.001, 1000.0)
		if !isHit {
			t.Fatal("Expected hit, but got miss")
		}
		if hit.Material != core.Material(shared) {
			t.Errorf("Hit record should reference the sphere's material")
		}
	}
}
