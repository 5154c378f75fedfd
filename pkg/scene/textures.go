package scene

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/scenegraph"
)

// perlinSeed fixes the noise field so textured scenes render identically
const perlinSeed = 42

// NewTexturesScene shows a checker ground, a marble sphere and a textured globe
func NewTexturesScene(options Options) *Scene {
	s := newScene(scenegraph.NewLookAtCamera(core.NewVec3(0, 2, 12), core.NewVec3(0, 1, 0), 25))

	checker := material.NewCheckerColors(1.0, core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))
	s.World.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewTexturedLambertian(checker)))

	perlin := material.NewPerlin(rand.New(rand.NewSource(perlinSeed)))
	marble := material.NewTexturedLambertian(material.NewNoiseTexture(perlin, 4))
	s.World.Add(geometry.NewSphere(core.NewVec3(-2.2, 1, 0), 1, marble))

	earth := material.NewTexturedLambertian(loadTexture(options))
	s.World.Add(geometry.NewSphere(core.NewVec3(2.2, 1, 0), 1, earth))

	return s
}
