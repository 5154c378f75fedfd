package material

import (
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

// constantSampler always returns the same sample, forcing a chosen unit vector
type constantSampler struct {
	value core.Vec2
}

func (c constantSampler) Get1D() float64  { return c.value.X }
func (c constantSampler) Get2D() core.Vec2 { return c.value }
func (c constantSampler) Get3D() core.Vec3 { return core.NewVec3(c.value.X, c.value.Y, 0) }

func TestLambertian_ScatterAboveSurface(t *testing.T) {
	albedo := core.NewVec3(0.5, 0.6, 0.7)
	mat := NewLambertian(albedo)
	sampler := core.NewSeededSampler(42)

	hit := HitRecord{
		Point:     core.NewVec3(1, 2, 3),
		Normal:    core.NewVec3(0, 1, 0),
		FrontFace: true,
	}
	ray := core.NewRay(core.NewVec3(1, 5, 3), core.NewVec3(0, -1, 0))

	for i := 0; i < 500; i++ {
		result, scattered := mat.Scatter(ray, hit, sampler)
		if !scattered {
			t.Fatal("Lambertian should always scatter")
		}
		if result.Scattered.Direction.Dot(hit.Normal) < -1e-12 {
			t.Fatalf("normal + unit vector can not point below the surface, got %v", result.Scattered.Direction)
		}
		if !result.Attenuation.Equals(albedo) {
			t.Fatalf("Expected attenuation %v, got %v", albedo, result.Attenuation)
		}
		if !result.Scattered.Origin.Equals(hit.Point) {
			t.Fatalf("Expected origin %v, got %v", hit.Point, result.Scattered.Origin)
		}
	}
}

func TestLambertian_DegenerateDirectionFallsBackToNormal(t *testing.T) {
	mat := NewLambertian(core.NewVec3(1, 1, 1))

	// Sample (1, *) maps to the unit vector (0, 0, -1), exactly opposing this normal
	sampler := constantSampler{value: core.NewVec2(1, 0)}
	hit := HitRecord{Normal: core.NewVec3(0, 0, 1)}

	result, scattered := mat.Scatter(core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1)), hit, sampler)
	if !scattered {
		t.Fatal("Lambertian should always scatter")
	}
	if !result.Scattered.Direction.Equals(hit.Normal) {
		t.Errorf("Expected fallback to normal, got %v", result.Scattered.Direction)
	}
}

func TestLambertian_TexturedAttenuation(t *testing.T) {
	checker := NewCheckerColors(1, core.NewVec3(1, 0, 0), core.NewVec3(0, 0, 1))
	mat := NewTexturedLambertian(checker)
	sampler := core.NewSeededSampler(1)

	even := HitRecord{Point: core.NewVec3(0.5, 0.5, 0.5), Normal: core.NewVec3(0, 1, 0)}
	odd := HitRecord{Point: core.NewVec3(1.5, 0.5, 0.5), Normal: core.NewVec3(0, 1, 0)}
	ray := core.NewRay(core.NewVec3(0, 2, 0), core.NewVec3(0, -1, 0))

	r1, _ := mat.Scatter(ray, even, sampler)
	r2, _ := mat.Scatter(ray, odd, sampler)
	if !r1.Attenuation.Equals(core.NewVec3(1, 0, 0)) || !r2.Attenuation.Equals(core.NewVec3(0, 0, 1)) {
		t.Errorf("Expected red then blue attenuation, got %v and %v", r1.Attenuation, r2.Attenuation)
	}
}

func TestIsotropic_UsesDiffuseScatter(t *testing.T) {
	fog := NewIsotropic(NewSolidColor(core.NewVec3(0.2, 0.2, 0.2)))
	hit := HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(1, 0, 0),
		FrontFace: true,
	}

	result, scattered := fog.Scatter(core.NewRay(core.NewVec3(-1, 0, 0), core.NewVec3(1, 0, 0)), hit, core.NewSeededSampler(3))
	if !scattered {
		t.Fatal("Isotropic medium should scatter")
	}
	if !result.Attenuation.Equals(core.NewVec3(0.2, 0.2, 0.2)) {
		t.Errorf("Expected texture attenuation, got %v", result.Attenuation)
	}
	if result.Scattered.Direction.Dot(hit.Normal) < -1e-12 {
		t.Errorf("Diffuse-style scatter stays on the normal side, got %v", result.Scattered.Direction)
	}
}
