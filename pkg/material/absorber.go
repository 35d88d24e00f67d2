package material

import (
	"math/rand"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// Absorber is the default material: it swallows every ray that reaches it
type Absorber struct{}

// NewAbsorber creates a new absorbing material
func NewAbsorber() *Absorber {
	return &Absorber{}
}

// Scatter never scatters
func (a *Absorber) Scatter(rayIn core.Ray, hit core.HitRecord, random *rand.Rand) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}
