package scene

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scenegraph"
)

// NewFinalScene combines every feature: a grouped floor of boxes, an area light,
// glass, metal, smoke, global fog, an image texture, noise and a rotated cluster
// of spheres.
func NewFinalScene(options Options) *Scene {
	s := newScene(scenegraph.NewLookAtCamera(core.NewVec3(478, 278, -600), core.NewVec3(278, 278, 0), 40))
	s.Config.AspectRatio = 1.0
	s.Config.ImageWidth = 800
	s.Config.SamplesPerPixel = 250
	s.Config.MaxDepth = 40
	s.Config.Background = renderer.SolidBackground(core.NewVec3(0, 0, 0))

	random := rand.New(rand.NewSource(7))
	w := s.World

	// Floor of boxes with random heights, grouped into one BVH
	ground := material.NewLambertian(core.NewVec3(0.48, 0.83, 0.53))
	const boxesPerSide = 20
	var floor []geometry.Handle
	for i := 0; i < boxesPerSide; i++ {
		for j := 0; j < boxesPerSide; j++ {
			const width = 100.0
			x0 := -1000.0 + float64(i)*width
			z0 := -1000.0 + float64(j)*width
			y1 := 1 + 100*random.Float64()
			sides := w.Box(core.NewVec3(x0, 0, z0), core.NewVec3(x0+width, y1, z0+width), ground)
			floor = append(floor, sides[:]...)
		}
	}
	w.Group(floor)

	w.Add(geometry.NewQuad(
		core.NewVec3(123, 554, 147),
		core.NewVec3(300, 0, 0),
		core.NewVec3(0, 0, 265),
		material.NewDiffuseLight(core.NewVec3(7, 7, 7)),
	))

	w.Add(geometry.NewSphere(core.NewVec3(400, 400, 200), 50, material.NewLambertian(core.NewVec3(0.7, 0.3, 0.1))))
	w.Add(geometry.NewSphere(core.NewVec3(260, 150, 45), 50, material.NewDielectric(1.5)))
	w.Add(geometry.NewSphere(core.NewVec3(0, 150, 145), 50, material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 1.0)))

	// Blue smoke inside a visible glass shell
	shell := w.Add(geometry.NewSphere(core.NewVec3(360, 150, 145), 70, material.NewDielectric(1.5)))
	w.ConstantMedium([]geometry.Handle{shell}, 0.2,
		material.NewIsotropic(material.NewSolidColor(core.NewVec3(0.2, 0.4, 0.9))), false)

	// Thin white haze over the whole scene
	haze := w.Add(geometry.NewSphere(core.NewVec3(0, 0, 0), 5000, material.NewDielectric(1.5)))
	w.ConstantMedium([]geometry.Handle{haze}, 0.0001,
		material.NewIsotropic(material.NewSolidColor(core.NewVec3(1, 1, 1))), true)

	w.Add(geometry.NewSphere(core.NewVec3(400, 200, 400), 100, material.NewTexturedLambertian(loadTexture(options))))

	perlin := material.NewPerlin(rand.New(rand.NewSource(perlinSeed)))
	w.Add(geometry.NewSphere(core.NewVec3(220, 280, 300), 80,
		material.NewTexturedLambertian(material.NewNoiseTexture(perlin, 0.2))))

	// Cluster of small spheres, rotated and moved as one group
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	const clusterSize = 1000
	cluster := make([]geometry.Handle, 0, clusterSize)
	for i := 0; i < clusterSize; i++ {
		center := core.NewVec3(165*random.Float64(), 165*random.Float64(), 165*random.Float64())
		cluster = append(cluster, w.Add(geometry.NewSphere(center, 10, white)))
	}
	group := w.Group(cluster)
	w.Translate(w.RotateY(group, 15), core.NewVec3(-100, 270, 395))

	return s
}
