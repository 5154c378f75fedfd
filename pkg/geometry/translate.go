package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Translate moves a child surface by a fixed offset
type Translate struct {
	Child  Handle
	Offset core.Vec3
	bbox   core.AABB
}

func (t *Translate) computeBox(w *World) {
	t.bbox = w.BoundingBox(t.Child).Translate(t.Offset)
}

func (t *Translate) hit(w *World, ray core.Ray, rayT core.Interval, sampler core.Sampler) (material.HitRecord, bool) {
	// Move the ray backwards by the offset
	offsetRay := core.NewRay(ray.Origin.Subtract(t.Offset), ray.Direction)

	hit, ok := w.Hit(t.Child, offsetRay, rayT, sampler)
	if !ok {
		return hit, false
	}

	// Move the intersection point forwards by the offset
	hit.Point = hit.Point.Add(t.Offset)
	return hit, true
}

// BoundingBox returns the child's box shifted by the offset
func (t *Translate) BoundingBox() core.AABB {
	return t.bbox
}
