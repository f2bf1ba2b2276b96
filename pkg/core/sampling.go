package core

import (
	"math/rand"
)

// RandomInUnitSphere generates a random point inside the unit sphere
// using rejection sampling
func RandomInUnitSphere(random *rand.Rand) Vec3 {
	for {
		// Generate random point in [-1,1]³ cube
		p := NewVec3(
			2*random.Float64()-1,
			2*random.Float64()-1,
			2*random.Float64()-1,
		)
		// Accept if inside unit sphere
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}

// RandomUnitVector generates a random direction uniformly distributed
// on the unit sphere
func RandomUnitVector(random *rand.Rand) Vec3 {
	return RandomInUnitSphere(random).Normalize()
}

// RandomInHemisphere generates a random point in the unit sphere,
// reflected into the hemisphere around the given normal
func RandomInHemisphere(normal Vec3, random *rand.Rand) Vec3 {
	inUnitSphere := RandomInUnitSphere(random)
	if inUnitSphere.Dot(normal) > 0 {
		return inUnitSphere
	}
	return inUnitSphere.Negate()
}
