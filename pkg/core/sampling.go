package core

import (
	"math"
	"math/rand"
)

// RandomVec3 returns a vector with each component uniform in [0, 1)
func RandomVec3(random *rand.Rand) Vec3 {
	return NewVec3(random.Float64(), random.Float64(), random.Float64())
}

// RandomVec3Range returns a vector with each component uniform in [min, max)
func RandomVec3Range(random *rand.Rand, minVal, maxVal float64) Vec3 {
	return NewVec3(
		RandomRange(random, minVal, maxVal),
		RandomRange(random, minVal, maxVal),
		RandomRange(random, minVal, maxVal),
	)
}

// RandomRange returns a float uniform in [min, max)
func RandomRange(random *rand.Rand, minVal, maxVal float64) float64 {
	return minVal + (maxVal-minVal)*random.Float64()
}

// RandomInUnitSphere generates a random point inside the unit ball by rejection from the [-1,1]³ cube
func RandomInUnitSphere(random *rand.Rand) Vec3 {
	for {
		p := RandomVec3Range(random, -1, 1)
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}

// RandomUnitVector returns a point uniformly distributed on the unit sphere.
// Azimuth is uniform in [0, 2π) and z uniform in [-1, 1), which by Archimedes'
// hat-box theorem covers the sphere with equal area density.
func RandomUnitVector(random *rand.Rand) Vec3 {
	a := RandomRange(random, 0, 2*math.Pi)
	z := RandomRange(random, -1, 1)
	r := math.Sqrt(1.0 - z*z)
	return NewVec3(r*math.Cos(a), r*math.Sin(a), z)
}

// RandomInUnitDisk generates a random point in the unit disk on the z=0 plane (for depth of field)
func RandomInUnitDisk(random *rand.Rand) Vec3 {
	for {
		// Generate random point in [-1,1] x [-1,1] square
		p := NewVec3(RandomRange(random, -1, 1), RandomRange(random, -1, 1), 0)
		// Accept if inside unit disk
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}
