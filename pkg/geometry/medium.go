package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// exitEpsilon separates the entry and exit searches through a boundary
const exitEpsilon = 0.0001

// ConstantMedium is a homogeneous participating medium filling a closed boundary.
// The boundary may be made of several surfaces; the nearest hit over all of them
// is used for entry and exit.
type ConstantMedium struct {
	Boundary      []Handle
	NegInvDensity float64
	Phase         *material.Material
	bbox          core.AABB
}

func (m *ConstantMedium) computeBox(w *World) {
	m.bbox = core.EmptyAABB
	for _, h := range m.Boundary {
		m.bbox = core.NewAABBUnion(m.bbox, w.BoundingBox(h))
	}
}

// hitBoundary returns the nearest boundary hit within rayT
func (m *ConstantMedium) hitBoundary(w *World, ray core.Ray, rayT core.Interval, sampler core.Sampler) (material.HitRecord, bool) {
	var closest material.HitRecord
	hitAnything := false
	for _, h := range m.Boundary {
		if hit, ok := w.Hit(h, ray, rayT, sampler); ok {
			hitAnything = true
			rayT.Max = hit.T
			closest = hit
		}
	}
	return closest, hitAnything
}

func (m *ConstantMedium) hit(w *World, ray core.Ray, rayT core.Interval, sampler core.Sampler) (material.HitRecord, bool) {
	entry, ok := m.hitBoundary(w, ray, core.UniverseInterval, sampler)
	if !ok {
		return material.HitRecord{}, false
	}

	exit, ok := m.hitBoundary(w, ray, core.NewInterval(entry.T+exitEpsilon, math.Inf(1)), sampler)
	if !ok {
		return material.HitRecord{}, false
	}

	t1 := math.Max(entry.T, rayT.Min)
	t2 := math.Min(exit.T, rayT.Max)
	if t1 >= t2 {
		return material.HitRecord{}, false
	}
	if t1 < 0 {
		t1 = 0
	}

	rayLength := ray.Direction.Length()
	distanceInsideBoundary := (t2 - t1) * rayLength
	hitDistance := m.NegInvDensity * math.Log(core.OpenUnit(sampler))
	if hitDistance > distanceInsideBoundary {
		return material.HitRecord{}, false
	}

	t := t1 + hitDistance/rayLength
	return material.HitRecord{
		T:         t,
		Point:     ray.At(t),
		Normal:    core.NewVec3(1, 0, 0), // arbitrary
		FrontFace: true,                  // also arbitrary
		Material:  m.Phase,
	}, true
}

// BoundingBox returns the union of the boundary boxes
func (m *ConstantMedium) BoundingBox() core.AABB {
	return m.bbox
}
