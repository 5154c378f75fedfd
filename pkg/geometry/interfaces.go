package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Surface is any primitive stored in a World.
//
// The set of implementations is closed: Sphere, Quad, ConstantMedium,
// Translate, RotateY and BVH. World.Hit dispatches over them with a type
// switch, so surfaces reference each other by Handle rather than by pointer.
type Surface interface {
	BoundingBox() core.AABB
	surface()
}

// Anchor supplies a position owned by something outside the renderer,
// such as a scene-graph transform
type Anchor interface {
	Position() core.Vec3
}

func (*Sphere) surface()         {}
func (*Quad) surface()           {}
func (*ConstantMedium) surface() {}
func (*Translate) surface()      {}
func (*RotateY) surface()        {}
func (*BVH) surface()            {}
