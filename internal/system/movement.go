// internal/system/movement.go
package system

import (
	"github.com/go-gl/mathgl/mgl64"

	"go-stealth/internal/component"
	"go-stealth/internal/entity"
	"go-stealth/internal/event"
	"go-stealth/internal/types"
	"go-stealth/pkg/geom"
)

// arriveTolerance: ближе этого пункт назначения считается достигнутым
const arriveTolerance = 1.0

// MovementWorld is what MovementSystem needs from the level.
type MovementWorld interface {
	Blocked(p mgl64.Vec3, radius float64) bool
}

// MovementSystem walks pawns straight toward their destination on the
// ground plane and turns them to face the direction they move in.
type MovementSystem struct {
	ecs             *entity.ECS
	world           MovementWorld
	eventDispatcher *event.Dispatcher
}

func NewMovementSystem(ecs *entity.ECS, world MovementWorld, eventDispatcher *event.Dispatcher) *MovementSystem {
	return &MovementSystem{ecs: ecs, world: world, eventDispatcher: eventDispatcher}
}

func (s *MovementSystem) Update(deltaTime float64) {
	if deltaTime <= 0 {
		return
	}
	for id, target := range s.ecs.MoveTargets {
		if !target.Active {
			continue
		}
		tr, hasTransform := s.ecs.Transforms[id]
		vel, hasVel := s.ecs.Velocities[id]
		if !hasTransform || !hasVel {
			continue
		}
		radius := 0.0
		if body, ok := s.ecs.Bodies[id]; ok {
			radius = body.Radius
		}

		delta := geom.Flatten(target.Destination.Sub(tr.Location))
		dist := delta.Len()
		if dist <= arriveTolerance {
			s.arrive(id, tr, vel, target)
			continue
		}
		dir := delta.Mul(1 / dist)
		tr.Yaw = geom.StepYaw(tr.Yaw, geom.YawOf(dir), mgl64.DegToRad(vel.RotationRate)*deltaTime)

		moveDistance := vel.Speed * deltaTime
		reached := dist <= moveDistance
		next := tr.Location.Add(dir.Mul(moveDistance))
		if reached {
			next = mgl64.Vec3{target.Destination.X(), target.Destination.Y(), tr.Location.Z()}
		}

		if s.world != nil && s.world.Blocked(next, radius) {
			slid, ok := s.slide(tr.Location, next, radius)
			if !ok {
				s.arrive(id, tr, vel, target)
				continue
			}
			next = slid
			reached = false
		}

		vel.Current = next.Sub(tr.Location).Mul(1 / deltaTime)
		tr.Location = next
		if reached {
			s.arrive(id, tr, vel, target)
		}
	}
}

// slide keeps one axis of a blocked step, sliding along the wall.
func (s *MovementSystem) slide(from, to mgl64.Vec3, radius float64) (mgl64.Vec3, bool) {
	alongX := mgl64.Vec3{to.X(), from.Y(), from.Z()}
	if alongX != from && !s.world.Blocked(alongX, radius) {
		return alongX, true
	}
	alongY := mgl64.Vec3{from.X(), to.Y(), from.Z()}
	if alongY != from && !s.world.Blocked(alongY, radius) {
		return alongY, true
	}
	return from, false
}

func (s *MovementSystem) arrive(id types.EntityID, tr *geom.Transform, vel *component.Velocity, target *component.MoveTarget) {
	target.Active = false
	vel.Current = mgl64.Vec3{}
	if s.eventDispatcher != nil {
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.DestinationReached,
			Data: event.EntityData{Entity: id, X: tr.Location.X(), Y: tr.Location.Y()},
		})
	}
}
