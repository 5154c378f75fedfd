package scenegraph

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Camera is a transform with a vertical field of view
type Camera struct {
	*Transform
	fov float64 // radians
}

// NewCamera creates a camera at position looking along -Z
func NewCamera(position core.Vec3, fovDegrees float64) *Camera {
	return &Camera{
		Transform: NewTransform(position),
		fov:       mgl64.DegToRad(fovDegrees),
	}
}

// NewLookAtCamera creates a camera at position looking at target
func NewLookAtCamera(position, target core.Vec3, fovDegrees float64) *Camera {
	c := NewCamera(position, fovDegrees)
	c.LookAt(target)
	return c
}

// FOV returns the vertical field of view in radians
func (c *Camera) FOV() float64 {
	return c.fov
}

// SetFOV sets the vertical field of view in degrees
func (c *Camera) SetFOV(fovDegrees float64) {
	c.fov = mgl64.DegToRad(fovDegrees)
}
