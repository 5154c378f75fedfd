package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// quadThickness is the minimum bounding box extent on a quad's flat axis
const quadThickness = 0.0001

// Quad represents a parallelogram defined by a corner and two edge vectors
type Quad struct {
	Corner   core.Vec3 // One corner of the quad
	U        core.Vec3 // First edge vector
	V        core.Vec3 // Second edge vector
	Material *material.Material
	Anchor   Anchor // Optional; overrides Corner on World.Recompute

	normal core.Vec3 // Unit normal (U × V)
	d      float64   // Plane equation constant: normal · p = d
	w      core.Vec3 // (U × V) / |U × V|², for planar coordinates
	bbox   core.AABB
}

// NewQuad creates a new quad from a corner point and two edge vectors
func NewQuad(corner, u, v core.Vec3, material *material.Material) *Quad {
	q := &Quad{
		Corner:   corner,
		U:        u,
		V:        v,
		Material: material,
	}
	q.setup()
	return q
}

func (q *Quad) setup() {
	n := q.U.Cross(q.V)
	q.normal = n.Normalize()
	q.d = q.normal.Dot(q.Corner)
	q.w = n.Divide(n.Dot(n))

	diagonal1 := core.NewAABBFromPoints(q.Corner, q.Corner.Add(q.U).Add(q.V))
	diagonal2 := core.NewAABBFromPoints(q.Corner.Add(q.U), q.Corner.Add(q.V))
	q.bbox = core.NewAABBUnion(diagonal1, diagonal2).PadToMinimums(quadThickness)
}

func (q *Quad) refresh() {
	if q.Anchor != nil {
		q.Corner = q.Anchor.Position()
		q.setup()
	}
}

// Hit tests if a ray intersects with the quad
func (q *Quad) Hit(ray core.Ray, rayT core.Interval) (material.HitRecord, bool) {
	denominator := q.normal.Dot(ray.Direction)

	// Parallel to the plane
	if math.Abs(denominator) < 1e-6 {
		return material.HitRecord{}, false
	}

	t := (q.d - q.normal.Dot(ray.Origin)) / denominator
	if !rayT.Contains(t) {
		return material.HitRecord{}, false
	}

	hitPoint := ray.At(t)
	planar := hitPoint.Subtract(q.Corner)
	alpha := q.w.Dot(planar.Cross(q.V))
	beta := q.w.Dot(q.U.Cross(planar))

	unit := core.NewInterval(0, 1)
	if !unit.Contains(alpha) || !unit.Contains(beta) {
		return material.HitRecord{}, false
	}

	hit := material.HitRecord{
		T:        t,
		Point:    hitPoint,
		UV:       core.NewVec2(alpha, beta),
		Material: q.Material,
	}
	hit.SetFaceNormal(ray, q.normal)

	return hit, true
}

// BoundingBox returns the padded bounding box of the quad
func (q *Quad) BoundingBox() core.AABB {
	return q.bbox
}
