package core

import (
	"math"
	"math/rand"
	"testing"
)

func randomBox(random *rand.Rand) AABB {
	p := func() Vec3 {
		return NewVec3(random.Float64()*20-10, random.Float64()*20-10, random.Float64()*20-10)
	}
	return NewAABBFromPoints(p(), p())
}

func TestAABB_UnionAssociativeAndCommutative(t *testing.T) {
	random := rand.New(rand.NewSource(7))

	for i := 0; i < 500; i++ {
		a, b, c := randomBox(random), randomBox(random), randomBox(random)

		left := NewAABBUnion(NewAABBUnion(a, b), c)
		right := NewAABBUnion(a, NewAABBUnion(b, c))
		if left != right {
			t.Fatalf("Union not associative: %v vs %v", left, right)
		}

		if NewAABBUnion(a, b) != NewAABBUnion(b, a) {
			t.Fatalf("Union not commutative for %v and %v", a, b)
		}
	}
}

func TestAABB_FromPointsIsOrderIndependent(t *testing.T) {
	a := NewVec3(1, -2, 3)
	b := NewVec3(-1, 2, -3)

	box1 := NewAABBFromPoints(a, b)
	box2 := NewAABBFromPoints(b, a)
	if box1 != box2 {
		t.Errorf("Expected identical boxes, got %v and %v", box1, box2)
	}
	if box1.X.Min != -1 || box1.Y.Max != 2 || box1.Z.Min != -3 {
		t.Errorf("Unexpected bounds %v", box1)
	}
}

func TestAABB_LongestAxis(t *testing.T) {
	tests := []struct {
		name     string
		size     Vec3
		expected int
	}{
		{"x longest", NewVec3(3, 1, 1), 0},
		{"y longest", NewVec3(1, 3, 1), 1},
		{"z longest", NewVec3(1, 1, 3), 2},
		{"all equal resolves to z", NewVec3(2, 2, 2), 2},
		{"x ties z resolves to z", NewVec3(2, 1, 2), 2},
		{"y ties z resolves to z", NewVec3(1, 2, 2), 2},
		{"x ties y resolves to y", NewVec3(2, 2, 1), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			box := NewAABBFromPoints(NewVec3(0, 0, 0), tt.size)
			if got := box.LongestAxis(); got != tt.expected {
				t.Errorf("Expected axis %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestAABB_Hit(t *testing.T) {
	box := NewAABBFromPoints(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))
	rayT := NewInterval(0.001, math.Inf(1))

	tests := []struct {
		name     string
		ray      Ray
		expected bool
	}{
		{"straight through", NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, -1)), true},
		{"diagonal through", NewRay(NewVec3(5, 5, 5), NewVec3(-1, -1, -1)), true},
		{"pointing away", NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, 1)), false},
		{"parallel outside slab", NewRay(NewVec3(2, 0, 5), NewVec3(0, 0, -1)), false},
		{"parallel inside slab", NewRay(NewVec3(0.5, 0.5, 5), NewVec3(0, 0, -1)), true},
		{"origin inside", NewRay(NewVec3(0, 0, 0), NewVec3(1, 2, 3)), true},
		{"passes beside", NewRay(NewVec3(3, 0, 5), NewVec3(0, 1, -1)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := box.Hit(tt.ray, rayT); got != tt.expected {
				t.Errorf("Expected %t, got %t", tt.expected, got)
			}
		})
	}
}

func TestAABB_HitRespectsRayInterval(t *testing.T) {
	box := NewAABBFromPoints(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))
	ray := NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, -1))

	if box.Hit(ray, NewInterval(0.001, 3)) {
		t.Error("Box lies beyond tMax=3 and should be rejected")
	}
	if !box.Hit(ray, NewInterval(0.001, 4.5)) {
		t.Error("Box entry at t=4 is within the interval")
	}
}

func TestAABB_EmptyNeverHit(t *testing.T) {
	tests := []struct {
		name string
		box  AABB
		ray  Ray
	}{
		{"empty box from origin", EmptyAABB, NewRay(NewVec3(0, 0, 0), NewVec3(1, 1, 1))},
		{"empty box along axis", EmptyAABB, NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, -1))},
		{"empty box with zero direction", EmptyAABB, NewRay(NewVec3(0, 0, 0), NewVec3(0, 0, 0))},
		{
			"one empty axis",
			AABB{X: NewInterval(-1, 1), Y: EmptyInterval, Z: NewInterval(-1, 1)},
			NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, -1)),
		},
		{
			"inverted axis",
			AABB{X: NewInterval(-1, 1), Y: NewInterval(1, -1), Z: NewInterval(-1, 1)},
			NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, -1)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.box.IsEmpty() {
				t.Fatalf("Box %v should report empty", tt.box)
			}
			if tt.box.Hit(tt.ray, UniverseInterval) {
				t.Error("Empty box should never be hit")
			}
			if tt.box.Hit(tt.ray, NewInterval(0.001, math.Inf(1))) {
				t.Error("Empty box should never be hit within a forward interval")
			}
		})
	}
}

func TestAABB_PadToMinimums(t *testing.T) {
	flat := NewAABBFromPoints(NewVec3(0, 0, 1), NewVec3(1, 1, 1))
	padded := flat.PadToMinimums(0.0001)
	if padded.Z.Size() < 0.0001-1e-12 {
		t.Errorf("Expected padded Z size >= 0.0001, got %g", padded.Z.Size())
	}
	if padded.X != flat.X {
		t.Errorf("Non-degenerate axis should be untouched, got %v", padded.X)
	}

	ray := NewRay(NewVec3(0.5, 0.5, 2), NewVec3(0, 0, -1))
	if flat.Hit(ray, UniverseInterval) {
		t.Error("Zero-thickness box is rejected by the slab test")
	}
	if !padded.Hit(ray, UniverseInterval) {
		t.Error("Padded box should be hit")
	}
}

func TestAABB_Translate(t *testing.T) {
	box := NewAABBFromPoints(NewVec3(0, 0, 0), NewVec3(1, 1, 1)).Translate(NewVec3(1, 2, 3))
	expected := NewAABBFromPoints(NewVec3(1, 2, 3), NewVec3(2, 3, 4))
	if box != expected {
		t.Errorf("Expected %v, got %v", expected, box)
	}
}
