// internal/component/movement.go
package component

import "github.com/go-gl/mathgl/mgl64"

// Velocity хранит параметры передвижения
type Velocity struct {
	Speed        float64 // units per second
	RotationRate float64 // degrees per second
	Current      mgl64.Vec3
}

// MoveTarget is the point a pawn walks toward while Active.
type MoveTarget struct {
	Destination mgl64.Vec3
	Active      bool
}

// Body is the pawn's collision capsule seen from above.
type Body struct {
	Radius float64
}
