package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Box adds the six quads of the axis-aligned box spanned by two opposite
// corners. All faces point outward.
func (w *World) Box(a, b core.Vec3, mat *material.Material) [6]Handle {
	bounds := core.NewAABBFromPoints(a, b)
	lo := core.NewVec3(bounds.X.Min, bounds.Y.Min, bounds.Z.Min)
	hi := core.NewVec3(bounds.X.Max, bounds.Y.Max, bounds.Z.Max)

	dx := core.NewVec3(hi.X-lo.X, 0, 0)
	dy := core.NewVec3(0, hi.Y-lo.Y, 0)
	dz := core.NewVec3(0, 0, hi.Z-lo.Z)

	return [6]Handle{
		w.Add(NewQuad(core.NewVec3(lo.X, lo.Y, hi.Z), dx, dy, mat)),          // front
		w.Add(NewQuad(core.NewVec3(hi.X, lo.Y, hi.Z), dz.Negate(), dy, mat)), // right
		w.Add(NewQuad(core.NewVec3(hi.X, lo.Y, lo.Z), dx.Negate(), dy, mat)), // back
		w.Add(NewQuad(core.NewVec3(lo.X, lo.Y, lo.Z), dz, dy, mat)),          // left
		w.Add(NewQuad(core.NewVec3(lo.X, hi.Y, hi.Z), dx, dz.Negate(), mat)), // top
		w.Add(NewQuad(core.NewVec3(lo.X, lo.Y, lo.Z), dx, dz, mat)),          // bottom
	}
}
