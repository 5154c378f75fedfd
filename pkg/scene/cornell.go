package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scenegraph"
)

// boxSize is the side length of the Cornell box (standard 555 units)
const boxSize = 555.0

// newCornellBox creates the five walls shared by the Cornell scenes, lit by
// an area light in the ceiling. The front of the box stays open to the camera.
func newCornellBox(light geometry.Surface) *Scene {
	camera := scenegraph.NewLookAtCamera(
		core.NewVec3(278, 278, -800), // Position camera outside the box looking in
		core.NewVec3(278, 278, 0),
		40,
	)
	s := newScene(camera)
	s.Config.AspectRatio = 1.0
	s.Config.ImageWidth = 600
	s.Config.SamplesPerPixel = 200
	s.Config.Background = renderer.SolidBackground(core.NewVec3(0, 0, 0))

	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))

	// Left wall (green) - YZ plane at x=boxSize
	s.World.Add(geometry.NewQuad(core.NewVec3(boxSize, 0, 0), core.NewVec3(0, boxSize, 0), core.NewVec3(0, 0, boxSize), green))
	// Right wall (red) - YZ plane at x=0
	s.World.Add(geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, boxSize, 0), core.NewVec3(0, 0, boxSize), red))
	// Floor - XZ plane at y=0
	s.World.Add(geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, 0, boxSize), white))
	// Ceiling - XZ plane at y=boxSize
	s.World.Add(geometry.NewQuad(core.NewVec3(boxSize, boxSize, boxSize), core.NewVec3(-boxSize, 0, 0), core.NewVec3(0, 0, -boxSize), white))
	// Back wall - XY plane at z=boxSize
	s.World.Add(geometry.NewQuad(core.NewVec3(0, 0, boxSize), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, boxSize, 0), white))

	s.World.Add(light)
	return s
}

// addTurnedBox adds a box with one corner at the origin, rotated about Y and
// moved into place. It returns the handle of the outermost wrapper.
func addTurnedBox(w *geometry.World, size core.Vec3, degrees float64, offset core.Vec3, mat *material.Material) geometry.Handle {
	sides := w.Box(core.NewVec3(0, 0, 0), size, mat)
	box := w.Group(sides[:])
	box = w.RotateY(box, degrees)
	return w.Translate(box, offset)
}

// NewCornellScene creates the classic Cornell box with a tall and a short box
func NewCornellScene(options Options) *Scene {
	light := geometry.NewQuad(
		core.NewVec3(343, 554, 332),
		core.NewVec3(-130, 0, 0),
		core.NewVec3(0, 0, -105),
		material.NewDiffuseLight(core.NewVec3(15, 15, 15)),
	)
	s := newCornellBox(light)

	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	addTurnedBox(s.World, core.NewVec3(165, 330, 165), 15, core.NewVec3(265, 0, 295), white)
	addTurnedBox(s.World, core.NewVec3(165, 165, 165), -18, core.NewVec3(130, 0, 65), white)

	return s
}

// NewCornellSmokeScene fills the two Cornell boxes with dark smoke and white fog
func NewCornellSmokeScene(options Options) *Scene {
	light := geometry.NewQuad(
		core.NewVec3(113, 554, 127),
		core.NewVec3(330, 0, 0),
		core.NewVec3(0, 0, 305),
		material.NewDiffuseLight(core.NewVec3(7, 7, 7)),
	)
	s := newCornellBox(light)

	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	tall := addTurnedBox(s.World, core.NewVec3(165, 330, 165), 15, core.NewVec3(265, 0, 295), white)
	short := addTurnedBox(s.World, core.NewVec3(165, 165, 165), -18, core.NewVec3(130, 0, 65), white)

	smoke := material.NewIsotropic(material.NewSolidColor(core.NewVec3(0, 0, 0)))
	fog := material.NewIsotropic(material.NewSolidColor(core.NewVec3(1, 1, 1)))
	s.World.ConstantMedium([]geometry.Handle{tall}, 0.01, smoke, true)
	s.World.ConstantMedium([]geometry.Handle{short}, 0.01, fog, true)

	return s
}
