// internal/entity/ecs.go
package entity

import (
	"go-stealth/internal/component"
	"go-stealth/internal/types"
	"go-stealth/pkg/geom"
)

type ECS struct {
	GameTime    float64
	NextID      types.EntityID
	Transforms  map[types.EntityID]*geom.Transform
	Velocities  map[types.EntityID]*component.Velocity
	MoveTargets map[types.EntityID]*component.MoveTarget
	Bodies      map[types.EntityID]*component.Body
	Renderables map[types.EntityID]*component.Renderable
	Sights      map[types.EntityID]*component.Sight
	Controllers map[types.EntityID]*component.PlayerController
	Cursor      *component.Cursor
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Transforms:  make(map[types.EntityID]*geom.Transform),
		Velocities:  make(map[types.EntityID]*component.Velocity),
		MoveTargets: make(map[types.EntityID]*component.MoveTarget),
		Bodies:      make(map[types.EntityID]*component.Body),
		Renderables: make(map[types.EntityID]*component.Renderable),
		Sights:      make(map[types.EntityID]*component.Sight),
		Controllers: make(map[types.EntityID]*component.PlayerController),
		Cursor:      &component.Cursor{},
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity drops every component of id. Its sight mesh goes with it.
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Transforms, id)
	delete(ecs.Velocities, id)
	delete(ecs.MoveTargets, id)
	delete(ecs.Bodies, id)
	delete(ecs.Renderables, id)
	delete(ecs.Sights, id)
	delete(ecs.Controllers, id)
}
