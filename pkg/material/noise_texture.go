package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

const turbulenceDepth = 7

// NoiseTexture is a marble-like pattern driven by Perlin turbulence
type NoiseTexture struct {
	noise *Perlin
	Scale float64
}

// NewNoiseTexture creates a noise texture over the given Perlin field
func NewNoiseTexture(noise *Perlin, scale float64) *NoiseTexture {
	return &NoiseTexture{noise: noise, Scale: scale}
}

// Evaluate returns a gray level in [0, 1]
func (n *NoiseTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	level := 0.5 * (1 + math.Sin(n.Scale*point.Z+10*n.noise.Turbulence(point, turbulenceDepth)))
	return core.NewVec3(level, level, level)
}
