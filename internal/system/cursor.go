// internal/system/cursor.go
package system

import (
	"github.com/go-gl/mathgl/mgl64"

	"go-stealth/internal/entity"
)

// CursorSystem places the cursor decal on whatever is under the mouse.
type CursorSystem struct {
	ecs   *entity.ECS
	world CursorWorld
}

func NewCursorSystem(ecs *entity.ECS, world CursorWorld) *CursorSystem {
	return &CursorSystem{ecs: ecs, world: world}
}

func (s *CursorSystem) Update(cursor mgl64.Vec3) {
	if s.ecs.Cursor == nil || s.world == nil {
		return
	}
	hit := s.world.TraceUnderPoint(cursor.X(), cursor.Y())
	s.ecs.Cursor.Location = hit.Point
	s.ecs.Cursor.Normal = hit.Normal
	s.ecs.Cursor.Visible = hit.Blocked
}
