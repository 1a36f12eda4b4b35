// internal/component/player.go
package component

import "github.com/go-gl/mathgl/mgl64"

// PlayerController holds per-player input state. While MoveToCursor is set
// the destination follows the cursor every frame.
type PlayerController struct {
	MoveToCursor    bool
	MinMoveDistance float64
}

// Cursor is the decal projected under the mouse.
type Cursor struct {
	Location mgl64.Vec3
	Normal   mgl64.Vec3
	Visible  bool
}
