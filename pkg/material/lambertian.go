package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// scatterDiffuse scatters around the normal using normal + random unit vector.
// Isotropic media share this path; it is not a true uniform phase function.
func (m *Material) scatterDiffuse(hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	scatterDirection := hit.Normal.Add(core.RandomUnitVector(sampler))

	// Catch degenerate scatter direction
	if scatterDirection.NearZero() {
		scatterDirection = hit.Normal
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, scatterDirection),
		Attenuation: m.albedoAt(hit),
	}, true
}
