package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// RotateY rotates a child surface about the world Y axis
type RotateY struct {
	Child    Handle
	sinTheta float64
	cosTheta float64
	bbox     core.AABB
}

func newRotateY(child Handle, degrees float64) *RotateY {
	radians := degrees * math.Pi / 180
	return &RotateY{
		Child:    child,
		sinTheta: math.Sin(radians),
		cosTheta: math.Cos(radians),
	}
}

// toObject rotates a world-space vector by -theta
func (r *RotateY) toObject(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		r.cosTheta*v.X-r.sinTheta*v.Z,
		v.Y,
		r.sinTheta*v.X+r.cosTheta*v.Z,
	)
}

// toWorld rotates an object-space vector by theta
func (r *RotateY) toWorld(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		r.cosTheta*v.X+r.sinTheta*v.Z,
		v.Y,
		-r.sinTheta*v.X+r.cosTheta*v.Z,
	)
}

func (r *RotateY) computeBox(w *World) {
	child := w.BoundingBox(r.Child)
	if child.IsEmpty() {
		r.bbox = core.EmptyAABB
		return
	}

	r.bbox = core.EmptyAABB
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				corner := core.NewVec3(
					pick(child.X, i),
					pick(child.Y, j),
					pick(child.Z, k),
				)
				p := r.toWorld(corner)
				r.bbox = core.NewAABBUnion(r.bbox, core.NewAABBFromPoints(p, p))
			}
		}
	}
}

// pick returns Min for 0 and Max for 1
func pick(i core.Interval, which int) float64 {
	if which == 0 {
		return i.Min
	}
	return i.Max
}

func (r *RotateY) hit(w *World, ray core.Ray, rayT core.Interval, sampler core.Sampler) (material.HitRecord, bool) {
	rotated := core.NewRay(r.toObject(ray.Origin), r.toObject(ray.Direction))

	hit, ok := w.Hit(r.Child, rotated, rayT, sampler)
	if !ok {
		return hit, false
	}

	hit.Point = r.toWorld(hit.Point)
	hit.Normal = r.toWorld(hit.Normal)
	return hit, true
}

// BoundingBox returns the box around the rotated child box
func (r *RotateY) BoundingBox() core.AABB {
	return r.bbox
}
