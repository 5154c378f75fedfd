package renderer

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// focalLength is the fixed distance from the camera to the viewport plane
const focalLength = 3.47

// CameraView is the scene-graph camera the renderer looks through.
// Front, Right and Up must form an orthonormal basis; FOV is vertical, in radians.
type CameraView interface {
	Position() core.Vec3
	Front() core.Vec3
	Right() core.Vec3
	Up() core.Vec3
	FOV() float64
}

// Viewport maps pixel coordinates to points on the image plane.
// The basis is captured when the viewport is built.
type Viewport struct {
	pixel00 core.Vec3 // Center of the upper-left pixel
	deltaU  core.Vec3 // Offset to the next pixel column
	deltaV  core.Vec3 // Offset to the next pixel row
}

// NewViewport builds the image plane in front of camera for a width x height image
func NewViewport(camera CameraView, width, height int) *Viewport {
	h := math.Tan(camera.FOV() / 2)
	viewportHeight := 2 * h * focalLength
	viewportWidth := viewportHeight * (float64(width) / float64(height))

	// U runs left to right along the row, V top to bottom down the column
	viewportU := camera.Right().Multiply(viewportWidth)
	viewportV := camera.Up().Multiply(-viewportHeight)

	deltaU := viewportU.Divide(float64(width))
	deltaV := viewportV.Divide(float64(height))

	upperLeft := camera.Position().
		Add(camera.Front().Multiply(focalLength)).
		Subtract(viewportU.Divide(2)).
		Subtract(viewportV.Divide(2))

	return &Viewport{
		pixel00: upperLeft.Add(deltaU.Add(deltaV).Multiply(0.5)),
		deltaU:  deltaU,
		deltaV:  deltaV,
	}
}

// GetRay returns a ray from origin through a jittered point inside pixel (i, k)
func (v *Viewport) GetRay(origin core.Vec3, i, k int, sampler core.Sampler) core.Ray {
	offset := core.SampleSquare(sampler)
	pixelSample := v.pixel00.
		Add(v.deltaU.Multiply(float64(i) + offset.X)).
		Add(v.deltaV.Multiply(float64(k) + offset.Y))

	return core.NewRay(origin, pixelSample.Subtract(origin))
}
