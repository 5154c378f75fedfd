package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Emit returns the radiance emitted at the hit. Non-emissive materials emit black.
func (m *Material) Emit(uv core.Vec2, point core.Vec3) core.Vec3 {
	if !m.Emissive {
		return core.Vec3{}
	}
	if m.Emission == nil {
		return m.Albedo
	}
	return m.Emission.Evaluate(uv, point)
}
