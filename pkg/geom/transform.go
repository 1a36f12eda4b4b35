// pkg/geom/transform.go
package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Up is the world up axis. The ground is the XY plane.
var Up = mgl64.Vec3{0, 0, 1}

// Transform places an entity on the ground plane: location, yaw about Up
// (radians, X axis is yaw 0) and a per-axis scale.
type Transform struct {
	Location mgl64.Vec3
	Yaw      float64
	Scale    mgl64.Vec3
}

// NewTransform returns a unit-scale transform.
func NewTransform(location mgl64.Vec3, yaw float64) Transform {
	return Transform{
		Location: location,
		Yaw:      yaw,
		Scale:    mgl64.Vec3{1, 1, 1},
	}
}

// scale treats the zero value as unit scale so Transform{} is usable.
func (t Transform) scale() mgl64.Vec3 {
	if t.Scale == (mgl64.Vec3{}) {
		return mgl64.Vec3{1, 1, 1}
	}
	return t.Scale
}

// Matrix builds the local-to-world matrix (translate * rotate * scale).
func (t Transform) Matrix() mgl64.Mat4 {
	s := t.scale()
	return mgl64.Translate3D(t.Location.X(), t.Location.Y(), t.Location.Z()).
		Mul4(mgl64.HomogRotate3DZ(t.Yaw)).
		Mul4(mgl64.Scale3D(s.X(), s.Y(), s.Z()))
}

// WorldLocation returns the entity position in world space.
func (t Transform) WorldLocation() mgl64.Vec3 {
	return t.Location
}

// Forward returns the unit facing direction on the ground plane.
func (t Transform) Forward() mgl64.Vec3 {
	return RotateAboutUp(mgl64.Vec3{1, 0, 0}, mgl64.RadToDeg(t.Yaw))
}

// TransformPosition maps a local point to world space.
func (t Transform) TransformPosition(local mgl64.Vec3) mgl64.Vec3 {
	return mgl64.TransformCoordinate(local, t.Matrix())
}

// InverseTransformPosition maps a world point into the local frame.
func (t Transform) InverseTransformPosition(world mgl64.Vec3) mgl64.Vec3 {
	return mgl64.TransformCoordinate(world, t.Matrix().Inv())
}

// RotateAboutUp rotates v by degrees about Up. Only the horizontal
// components change.
func RotateAboutUp(v mgl64.Vec3, degrees float64) mgl64.Vec3 {
	h := mgl64.Rotate2D(mgl64.DegToRad(degrees)).Mul2x1(mgl64.Vec2{v.X(), v.Y()})
	return mgl64.Vec3{h.X(), h.Y(), v.Z()}
}

// YawOf returns the yaw of a horizontal direction.
func YawOf(dir mgl64.Vec3) float64 {
	return math.Atan2(dir.Y(), dir.X())
}

// NormalizeAngle нормализует угол в диапазон [-π, π]
func NormalizeAngle(angle float64) float64 {
	for angle > math.Pi {
		angle -= 2 * math.Pi
	}
	for angle < -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}

// StepYaw turns from toward to by at most maxStep radians along the shortest arc.
func StepYaw(from, to, maxStep float64) float64 {
	diff := NormalizeAngle(to - from)
	if math.Abs(diff) <= maxStep {
		return NormalizeAngle(to)
	}
	if diff < 0 {
		maxStep = -maxStep
	}
	return NormalizeAngle(from + maxStep)
}

// Flatten drops the vertical component.
func Flatten(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X(), v.Y(), 0}
}
