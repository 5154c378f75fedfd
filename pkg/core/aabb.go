package core

// AABB represents an axis-aligned bounding box as one interval per axis
type AABB struct {
	X, Y, Z Interval
}

var (
	// EmptyAABB bounds nothing; it is the identity for NewAABBUnion
	EmptyAABB = AABB{X: EmptyInterval, Y: EmptyInterval, Z: EmptyInterval}
	// UniverseAABB bounds all of space
	UniverseAABB = AABB{X: UniverseInterval, Y: UniverseInterval, Z: UniverseInterval}
)

// NewAABBFromPoints creates the AABB spanned by two opposite corners given in any order
func NewAABBFromPoints(a, b Vec3) AABB {
	return AABB{
		X: orderedInterval(a.X, b.X),
		Y: orderedInterval(a.Y, b.Y),
		Z: orderedInterval(a.Z, b.Z),
	}
}

func orderedInterval(a, b float64) Interval {
	if a <= b {
		return Interval{Min: a, Max: b}
	}
	return Interval{Min: b, Max: a}
}

// NewAABBUnion returns the AABB enclosing both boxes
func NewAABBUnion(a, b AABB) AABB {
	return AABB{
		X: NewIntervalUnion(a.X, b.X),
		Y: NewIntervalUnion(a.Y, b.Y),
		Z: NewIntervalUnion(a.Z, b.Z),
	}
}

// Axis returns the interval for axis 0 (X), 1 (Y) or 2 (Z)
func (aabb AABB) Axis(n int) Interval {
	switch n {
	case 1:
		return aabb.Y
	case 2:
		return aabb.Z
	default:
		return aabb.X
	}
}

// Hit tests if a ray intersects the box within rayT using the slab method.
// Zero direction components produce infinities which the comparisons below
// resolve without special casing. An empty box is never hit.
func (aabb AABB) Hit(ray Ray, rayT Interval) bool {
	if aabb.IsEmpty() {
		return false
	}

	for axis := 0; axis < 3; axis++ {
		ax := aabb.Axis(axis)
		origin := ray.Origin.Axis(axis)
		adinv := 1.0 / ray.Direction.Axis(axis)

		t0 := (ax.Min - origin) * adinv
		t1 := (ax.Max - origin) * adinv

		if t0 < t1 {
			if t0 > rayT.Min {
				rayT.Min = t0
			}
			if t1 < rayT.Max {
				rayT.Max = t1
			}
		} else {
			if t1 > rayT.Min {
				rayT.Min = t1
			}
			if t0 < rayT.Max {
				rayT.Max = t0
			}
		}

		if rayT.Max <= rayT.Min {
			return false
		}
	}

	return true
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the longest extent.
// Ties resolve toward the later axis: equal extents on all axes return 2.
func (aabb AABB) LongestAxis() int {
	x, y, z := aabb.X.Size(), aabb.Y.Size(), aabb.Z.Size()
	if x > y {
		if x > z {
			return 0
		}
		return 2
	}
	if y > z {
		return 1
	}
	return 2
}

// Translate returns the box moved by offset
func (aabb AABB) Translate(offset Vec3) AABB {
	return AABB{
		X: aabb.X.Shift(offset.X),
		Y: aabb.Y.Shift(offset.Y),
		Z: aabb.Z.Shift(offset.Z),
	}
}

// PadToMinimums widens any axis thinner than delta so flat geometry still has volume
func (aabb AABB) PadToMinimums(delta float64) AABB {
	if aabb.X.Size() < delta {
		aabb.X = aabb.X.Expand(delta)
	}
	if aabb.Y.Size() < delta {
		aabb.Y = aabb.Y.Expand(delta)
	}
	if aabb.Z.Size() < delta {
		aabb.Z = aabb.Z.Expand(delta)
	}
	return aabb
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Vec3 {
	return NewVec3(
		(aabb.X.Min+aabb.X.Max)*0.5,
		(aabb.Y.Min+aabb.Y.Max)*0.5,
		(aabb.Z.Min+aabb.Z.Max)*0.5,
	)
}

// Size returns the size (extent) of the AABB along each axis
func (aabb AABB) Size() Vec3 {
	return NewVec3(aabb.X.Size(), aabb.Y.Size(), aabb.Z.Size())
}

// IsEmpty reports whether any axis contains nothing
func (aabb AABB) IsEmpty() bool {
	return aabb.X.Min > aabb.X.Max || aabb.Y.Min > aabb.Y.Max || aabb.Z.Min > aabb.Z.Max
}
