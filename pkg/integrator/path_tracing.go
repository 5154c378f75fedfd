package integrator

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// minHitDistance skips self-intersections at the ray origin
const minHitDistance = 0.001

// PathTracingIntegrator implements unidirectional path tracing with no light
// sampling. Radiance is gathered only when a path reaches an emitter or
// escapes to the background.
type PathTracingIntegrator struct {
	maxDepth int
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(maxDepth int) *PathTracingIntegrator {
	return &PathTracingIntegrator{maxDepth: maxDepth}
}

// RayColor computes the color for a single ray
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, scene Scene, sampler core.Sampler) core.Vec3 {
	return pt.rayColor(ray, scene, sampler, pt.maxDepth)
}

func (pt *PathTracingIntegrator) rayColor(ray core.Ray, scene Scene, sampler core.Sampler, depth int) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := scene.Hit(ray, core.NewInterval(minHitDistance, math.Inf(1)), sampler)
	if !isHit {
		return scene.Background(ray.Direction)
	}

	colorEmitted := getEmittedLight(hit)

	scatter, didScatter := hit.Material.Scatter(ray, hit, sampler)
	if !didScatter {
		// Material absorbed the ray, only return emitted light
		return colorEmitted
	}

	colorScattered := scatter.Attenuation.MultiplyVec(pt.rayColor(scatter.Scattered, scene, sampler, depth-1))
	return colorEmitted.Add(colorScattered)
}

// getEmittedLight returns the light emitted at the hit point
func getEmittedLight(hit material.HitRecord) core.Vec3 {
	return hit.Material.Emit(hit.UV, hit.Point)
}
