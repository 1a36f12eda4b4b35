// internal/system/controller.go
package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"go-stealth/internal/component"
	"go-stealth/internal/entity"
	"go-stealth/internal/event"
	"go-stealth/internal/logging"
	"go-stealth/internal/types"
	"go-stealth/pkg/geom"
	"go-stealth/pkg/level"
)

// Input is one frame of player input, already projected onto the ground.
type Input struct {
	Cursor                 mgl64.Vec3
	SetDestinationPressed  bool
	SetDestinationReleased bool
	// Touches are the ground points of touches pressed or held this frame.
	Touches []mgl64.Vec3
}

// CursorWorld traces from the camera down onto the level.
type CursorWorld interface {
	TraceUnderPoint(x, y float64) level.Hit
}

// ControllerSystem turns mouse and touch input into move destinations.
type ControllerSystem struct {
	ecs             *entity.ECS
	world           CursorWorld
	eventDispatcher *event.Dispatcher
}

func NewControllerSystem(ecs *entity.ECS, world CursorWorld, eventDispatcher *event.Dispatcher) *ControllerSystem {
	return &ControllerSystem{ecs: ecs, world: world, eventDispatcher: eventDispatcher}
}

func (s *ControllerSystem) Update(input Input) {
	for id, ctrl := range s.ecs.Controllers {
		if input.SetDestinationPressed {
			ctrl.MoveToCursor = true
		}
		if input.SetDestinationReleased {
			ctrl.MoveToCursor = false
		}

		// keep updating the destination every tick while the button is held
		if ctrl.MoveToCursor {
			s.moveToPoint(id, ctrl, input.Cursor)
		}
		for _, touch := range input.Touches {
			s.moveToPoint(id, ctrl, touch)
		}
	}
}

// moveToPoint traces under p and walks there when something was hit.
func (s *ControllerSystem) moveToPoint(id types.EntityID, ctrl *component.PlayerController, p mgl64.Vec3) {
	if s.world == nil {
		return
	}
	hit := s.world.TraceUnderPoint(p.X(), p.Y())
	if hit.Blocked {
		s.SetNewMoveDestination(id, ctrl, hit.Point)
	}
}

// SetNewMoveDestination issues a move only when the destination is farther
// than the controller's minimum distance.
func (s *ControllerSystem) SetNewMoveDestination(id types.EntityID, ctrl *component.PlayerController, dest mgl64.Vec3) bool {
	tr, ok := s.ecs.Transforms[id]
	if !ok {
		return false
	}
	dest = geom.Flatten(dest)
	distance := dest.Sub(geom.Flatten(tr.Location)).Len()
	if distance <= ctrl.MinMoveDistance {
		return false
	}

	target, ok := s.ecs.MoveTargets[id]
	if !ok {
		target = &component.MoveTarget{}
		s.ecs.MoveTargets[id] = target
	}
	target.Destination = dest
	target.Active = true

	logging.L().Debug("move destination set",
		zap.Uint64("entity", uint64(id)),
		zap.Float64("x", dest.X()),
		zap.Float64("y", dest.Y()),
		zap.Float64("distance", distance))
	if s.eventDispatcher != nil {
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.DestinationSet,
			Data: event.EntityData{Entity: id, X: dest.X(), Y: dest.Y()},
		})
	}
	return true
}
