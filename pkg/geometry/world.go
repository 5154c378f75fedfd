package geometry

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Handle identifies a surface stored in a World
type Handle int

// World owns every surface in a scene.
//
// Surfaces are registered for direct traversal when added. Wrappers (Translate,
// RotateY, ConstantMedium with a hidden boundary, BVH groups) unregister the
// handles they wrap so those are only reached through the wrapper. The renderer
// builds its top-level BVH over the directly registered handles.
type World struct {
	surfaces []Surface
	direct   []bool
}

// NewWorld creates an empty world
func NewWorld() *World {
	return &World{}
}

// Add stores a surface and registers it for direct traversal
func (w *World) Add(s Surface) Handle {
	w.surfaces = append(w.surfaces, s)
	w.direct = append(w.direct, true)
	return Handle(len(w.surfaces) - 1)
}

// Get returns the surface behind a handle
func (w *World) Get(h Handle) Surface {
	return w.surfaces[h]
}

// Len returns the number of stored surfaces, registered or not
func (w *World) Len() int {
	return len(w.surfaces)
}

// Unregister removes a surface from direct traversal. It stays reachable
// through any wrapper that references it.
func (w *World) Unregister(h Handle) {
	w.direct[h] = false
}

// IsDirect reports whether a surface is registered for direct traversal
func (w *World) IsDirect(h Handle) bool {
	return w.direct[h]
}

// Direct returns the handles registered for direct traversal, in insertion order
func (w *World) Direct() []Handle {
	handles := make([]Handle, 0, len(w.surfaces))
	for i, registered := range w.direct {
		if registered {
			handles = append(handles, Handle(i))
		}
	}
	return handles
}

// Clear removes every surface. Previously issued handles become invalid.
func (w *World) Clear() {
	w.surfaces = nil
	w.direct = nil
}

// BoundingBox returns the bounding box of the surface behind a handle
func (w *World) BoundingBox(h Handle) core.AABB {
	return w.surfaces[h].BoundingBox()
}

// Hit intersects a ray with one surface
func (w *World) Hit(h Handle, ray core.Ray, rayT core.Interval, sampler core.Sampler) (material.HitRecord, bool) {
	switch s := w.surfaces[h].(type) {
	case *Sphere:
		return s.Hit(ray, rayT)
	case *Quad:
		return s.Hit(ray, rayT)
	case *ConstantMedium:
		return s.hit(w, ray, rayT, sampler)
	case *Translate:
		return s.hit(w, ray, rayT, sampler)
	case *RotateY:
		return s.hit(w, ray, rayT, sampler)
	case *BVH:
		return s.Hit(w, ray, rayT, sampler)
	default:
		panic(fmt.Sprintf("geometry: unknown surface type %T", s))
	}
}

// Recompute refreshes anchored positions and every derived bounding box.
//
// Wrappers always hold handles issued before their own, so a single pass in
// handle order updates children before their parents.
func (w *World) Recompute() {
	for _, s := range w.surfaces {
		switch s := s.(type) {
		case *Sphere:
			s.refresh()
		case *Quad:
			s.refresh()
		case *ConstantMedium:
			s.computeBox(w)
		case *Translate:
			s.computeBox(w)
		case *RotateY:
			s.computeBox(w)
		case *BVH:
			s.build(w)
		}
	}
}

// Translate adds a wrapper that moves a surface by offset
func (w *World) Translate(child Handle, offset core.Vec3) Handle {
	t := &Translate{Child: child, Offset: offset}
	t.computeBox(w)
	w.Unregister(child)
	return w.Add(t)
}

// RotateY adds a wrapper that rotates a surface about the Y axis
func (w *World) RotateY(child Handle, degrees float64) Handle {
	r := newRotateY(child, degrees)
	r.computeBox(w)
	w.Unregister(child)
	return w.Add(r)
}

// ConstantMedium adds a fog volume bounded by the given surfaces. When
// hideBoundary is set the boundary itself is no longer rendered.
func (w *World) ConstantMedium(boundary []Handle, density float64, phase *material.Material, hideBoundary bool) Handle {
	m := &ConstantMedium{
		Boundary:      append([]Handle(nil), boundary...),
		NegInvDensity: -1 / density,
		Phase:         phase,
	}
	m.computeBox(w)
	if hideBoundary {
		for _, h := range boundary {
			w.Unregister(h)
		}
	}
	return w.Add(m)
}

// Group adds a BVH over the given surfaces and unregisters them
func (w *World) Group(members []Handle) Handle {
	bvh := NewBVH(w, members)
	for _, h := range members {
		w.Unregister(h)
	}
	return w.Add(bvh)
}
