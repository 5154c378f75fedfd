package renderer

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

// fixedCamera looks down -Z from position with the default basis
type fixedCamera struct {
	position core.Vec3
	fov      float64
}

func (c fixedCamera) Position() core.Vec3 { return c.position }
func (c fixedCamera) Front() core.Vec3    { return core.NewVec3(0, 0, -1) }
func (c fixedCamera) Right() core.Vec3    { return core.NewVec3(1, 0, 0) }
func (c fixedCamera) Up() core.Vec3       { return core.NewVec3(0, 1, 0) }
func (c fixedCamera) FOV() float64        { return c.fov }

// centerSampler always returns the pixel center
type centerSampler struct{}

func (centerSampler) Get1D() float64  { return 0.5 }
func (centerSampler) Get2D() core.Vec2 { return core.NewVec2(0.5, 0.5) }
func (centerSampler) Get3D() core.Vec3 { return core.NewVec3(0.5, 0.5, 0.5) }

func TestViewport_CenterRayAlongFront(t *testing.T) {
	camera := fixedCamera{position: core.NewVec3(1, 2, 3), fov: math.Pi / 2}
	// Odd dimensions put a pixel center on the optical axis
	viewport := NewViewport(camera, 5, 3)

	ray := viewport.GetRay(camera.Position(), 2, 1, centerSampler{})
	if !ray.Origin.Equals(camera.position) {
		t.Errorf("Expected origin %v, got %v", camera.position, ray.Origin)
	}
	if !ray.Direction.Normalize().Equals(core.NewVec3(0, 0, -1)) {
		t.Errorf("Expected center ray along -Z, got %v", ray.Direction.Normalize())
	}
	if math.Abs(ray.Direction.Length()-focalLength) > 1e-9 {
		t.Errorf("Expected ray to reach the viewport plane at focal length, got %f", ray.Direction.Length())
	}
}

func TestViewport_Orientation(t *testing.T) {
	camera := fixedCamera{fov: math.Pi / 3}
	viewport := NewViewport(camera, 4, 4)

	upperLeft := viewport.GetRay(camera.Position(), 0, 0, centerSampler{}).Direction
	lowerRight := viewport.GetRay(camera.Position(), 3, 3, centerSampler{}).Direction

	if upperLeft.X >= 0 || upperLeft.Y <= 0 {
		t.Errorf("Pixel (0,0) should be up and to the left, got %v", upperLeft)
	}
	if lowerRight.X <= 0 || lowerRight.Y >= 0 {
		t.Errorf("Last pixel should be down and to the right, got %v", lowerRight)
	}
}

func TestViewport_FieldOfView(t *testing.T) {
	fov := math.Pi / 2
	camera := fixedCamera{fov: fov}
	viewport := NewViewport(camera, 2, 2)

	// Pixel centers sit a quarter of the viewport in from each edge; the
	// viewport spans 2*tan(fov/2)*focal vertically
	expectedY := 0.5 * math.Tan(fov/2) * focalLength
	ray := viewport.GetRay(camera.Position(), 0, 0, centerSampler{})
	if math.Abs(ray.Direction.Y-expectedY) > 1e-9 {
		t.Errorf("Expected y offset %f, got %f", expectedY, ray.Direction.Y)
	}
}

func TestViewport_JitterStaysInsidePixel(t *testing.T) {
	camera := fixedCamera{fov: math.Pi / 2}
	viewport := NewViewport(camera, 10, 10)
	sampler := core.NewSeededSampler(1)

	center := viewport.GetRay(camera.Position(), 4, 4, centerSampler{}).Direction
	halfPixel := viewport.deltaU.Length() / 2

	for i := 0; i < 200; i++ {
		d := viewport.GetRay(camera.Position(), 4, 4, sampler).Direction
		if math.Abs(d.X-center.X) > halfPixel+1e-12 || math.Abs(d.Y-center.Y) > halfPixel+1e-12 {
			t.Fatalf("Jittered sample %v left the pixel around %v", d, center)
		}
	}
}
