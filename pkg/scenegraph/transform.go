package scenegraph

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-pathtracer/pkg/core"
)

var (
	worldUp      = mgl64.Vec3{0, 1, 0}
	worldRight   = mgl64.Vec3{1, 0, 0}
	worldForward = mgl64.Vec3{0, 0, -1}
)

// Transform is a position and orientation relative to an optional parent.
// Orientation is a unit quaternion; forward is -Z in local space.
type Transform struct {
	Parent        *Transform
	LocalPosition mgl64.Vec3
	LocalRotation mgl64.Quat
}

// NewTransform creates an unrotated transform at position
func NewTransform(position core.Vec3) *Transform {
	t := &Transform{LocalRotation: mgl64.QuatIdent()}
	t.SetPosition(position)
	return t
}

// Position returns the world-space position
func (t *Transform) Position() core.Vec3 {
	return toCore(t.worldPosition())
}

func (t *Transform) worldPosition() mgl64.Vec3 {
	if t.Parent == nil {
		return t.LocalPosition
	}
	return t.Parent.worldPosition().Add(t.Parent.Rotation().Rotate(t.LocalPosition))
}

// Rotation returns the world-space orientation
func (t *Transform) Rotation() mgl64.Quat {
	if t.Parent == nil {
		return t.LocalRotation
	}
	return t.Parent.Rotation().Mul(t.LocalRotation)
}

// SetPosition moves the transform in its parent's space
func (t *Transform) SetPosition(position core.Vec3) {
	t.LocalPosition = toMgl(position)
}

// SetYawPitch orients the transform in its parent's space. Yaw turns about +Y,
// pitch tilts about the turned +X; both are in degrees.
func (t *Transform) SetYawPitch(yawDegrees, pitchDegrees float64) {
	yaw := mgl64.QuatRotate(mgl64.DegToRad(yawDegrees), worldUp)
	pitch := mgl64.QuatRotate(mgl64.DegToRad(pitchDegrees), worldRight)
	t.LocalRotation = yaw.Mul(pitch).Normalize()
}

// LookAt turns the transform so Front points at target, keeping the horizon level
func (t *Transform) LookAt(target core.Vec3) {
	direction := toMgl(target).Sub(t.worldPosition())
	if direction.Len() == 0 {
		return
	}
	direction = direction.Normalize()

	pitch := math.Asin(mgl64.Clamp(direction.Y(), -1, 1))
	yaw := math.Atan2(-direction.X(), -direction.Z())
	world := mgl64.QuatRotate(yaw, worldUp).Mul(mgl64.QuatRotate(pitch, worldRight))

	if t.Parent != nil {
		world = t.Parent.Rotation().Inverse().Mul(world)
	}
	t.LocalRotation = world.Normalize()
}

// Front returns the world-space viewing direction
func (t *Transform) Front() core.Vec3 {
	return toCore(t.Rotation().Rotate(worldForward))
}

// Right returns the world-space right direction
func (t *Transform) Right() core.Vec3 {
	return toCore(t.Rotation().Rotate(worldRight))
}

// Up returns the world-space up direction
func (t *Transform) Up() core.Vec3 {
	return toCore(t.Rotation().Rotate(worldUp))
}

func toMgl(v core.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func toCore(v mgl64.Vec3) core.Vec3 {
	return core.NewVec3(v.X(), v.Y(), v.Z())
}
