package scene

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/scenegraph"
)

// NewSimpleScene creates a single sphere resting on a large ground sphere
func NewSimpleScene(options Options) *Scene {
	s := newScene(scenegraph.NewCamera(core.NewVec3(0, 0, 0), 22))

	ground := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	center := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))

	s.World.Add(geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, center))
	s.World.Add(geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground))

	return s
}

// NewSpheresScene creates a field of small random spheres around three large ones.
// Placement is seeded so every build produces the same scene.
func NewSpheresScene(options Options) *Scene {
	s := newScene(scenegraph.NewLookAtCamera(core.NewVec3(13, 2, 3), core.NewVec3(0, 0, 0), 20))
	s.Config.SamplesPerPixel = 50

	random := rand.New(rand.NewSource(1))
	randomColor := func(lo, hi float64) core.Vec3 {
		c := func() float64 { return lo + (hi-lo)*random.Float64() }
		return core.NewVec3(c(), c(), c())
	}

	checker := material.NewCheckerColors(0.32, core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))
	s.World.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewTexturedLambertian(checker)))

	glass := material.NewDielectric(1.5)
	keepClear := core.NewVec3(4, 0.2, 0)

	// Small spheres go into their own BVH so the top level stays shallow
	var small []geometry.Handle
	for a := -5; a < 5; a++ {
		for b := -5; b < 5; b++ {
			chooseMaterial := random.Float64()
			center := core.NewVec3(float64(a)+0.9*random.Float64(), 0.2, float64(b)+0.9*random.Float64())
			if center.Subtract(keepClear).Length() <= 0.9 {
				continue
			}

			var mat *material.Material
			switch {
			case chooseMaterial < 0.8:
				albedo := randomColor(0, 1).MultiplyVec(randomColor(0, 1))
				mat = material.NewLambertian(albedo)
			case chooseMaterial < 0.95:
				mat = material.NewMetal(randomColor(0.5, 1), 0.5*random.Float64())
			default:
				mat = glass
			}
			small = append(small, s.World.Add(geometry.NewSphere(center, 0.2, mat)))
		}
	}
	s.World.Group(small)

	s.World.Add(geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, glass))
	s.World.Add(geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))))
	s.World.Add(geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)))

	return s
}
