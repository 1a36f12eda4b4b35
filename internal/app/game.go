// internal/app/game.go
package app

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"go-stealth/internal/component"
	"go-stealth/internal/config"
	"go-stealth/internal/entity"
	"go-stealth/internal/event"
	"go-stealth/internal/logging"
	"go-stealth/internal/metrics"
	"go-stealth/internal/system"
	"go-stealth/internal/types"
	"go-stealth/pkg/geom"
	"go-stealth/pkg/level"
)

// Game holds the world, the ECS and the systems that run each frame.
type Game struct {
	Settings         config.Settings
	World            *level.World
	ECS              *entity.ECS
	EventDispatcher  *event.Dispatcher
	Metrics          *metrics.Metrics
	ControllerSystem *system.ControllerSystem
	MovementSystem   *system.MovementSystem
	CursorSystem     *system.CursorSystem
	SightSystem      *system.SightSystem
	PlayerID         types.EntityID // ID пешки игрока

	gameTime float64
}

// NewGame builds the world for lvl and spawns the player pawn at the level
// spawn point. m may be nil when nothing scrapes metrics.
func NewGame(settings config.Settings, lvl *level.Level, m *metrics.Metrics) (*Game, error) {
	if lvl == nil {
		return nil, fmt.Errorf("%w: no level", level.ErrInvalidLevel)
	}
	world, err := level.NewWorld(lvl)
	if err != nil {
		return nil, fmt.Errorf("failed to index level %q: %w", lvl.Name, err)
	}

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	g := &Game{
		Settings:         settings,
		World:            world,
		ECS:              ecs,
		EventDispatcher:  eventDispatcher,
		Metrics:          m,
		ControllerSystem: system.NewControllerSystem(ecs, world, eventDispatcher),
		MovementSystem:   system.NewMovementSystem(ecs, world, eventDispatcher),
		CursorSystem:     system.NewCursorSystem(ecs, world),
		SightSystem:      system.NewSightSystem(ecs, world, eventDispatcher, m),
	}

	listener := &GameEventListener{game: g}
	eventDispatcher.Subscribe(event.PawnSpawned, listener)
	eventDispatcher.Subscribe(event.DestinationReached, listener)

	g.PlayerID = g.SpawnPlayer(lvl.Spawn.Vec3(), 0)
	logging.L().Info("level loaded",
		zap.String("level", lvl.Name),
		zap.Int("walls", len(lvl.Walls)),
		zap.Float64("width", lvl.Width),
		zap.Float64("height", lvl.Height))
	return g, nil
}

// SpawnPlayer creates the default pawn: movement, capsule, controller and a
// line-of-sight fan built from the settings.
func (g *Game) SpawnPlayer(location mgl64.Vec3, yaw float64) types.EntityID {
	p := g.Settings.Player
	id := g.ECS.NewEntity()
	tr := geom.NewTransform(location, yaw)
	g.ECS.Transforms[id] = &tr
	g.ECS.Velocities[id] = &component.Velocity{Speed: p.Speed, RotationRate: p.RotationRate}
	g.ECS.Bodies[id] = &component.Body{Radius: p.CapsuleRadius}
	g.ECS.MoveTargets[id] = &component.MoveTarget{}
	g.ECS.Controllers[id] = &component.PlayerController{MinMoveDistance: p.MinMoveDistance}
	g.ECS.Renderables[id] = &component.Renderable{
		Color:     config.PlayerColor,
		Radius:    float32(p.CapsuleRadius),
		HasStroke: true,
	}

	g.EventDispatcher.Dispatch(event.Event{
		Type: event.PawnSpawned,
		Data: event.EntityData{Entity: id, X: location.X(), Y: location.Y()},
	})
	g.SightSystem.Attach(id, g.Settings.LOS)
	return id
}

// Update runs one frame: input, movement, then sight so the fan is traced
// from where the pawn ended up.
func (g *Game) Update(deltaTime float64, input system.Input) {
	g.gameTime += deltaTime
	g.ECS.GameTime = g.gameTime

	g.ControllerSystem.Update(input)
	g.MovementSystem.Update(deltaTime)
	g.CursorSystem.Update(input.Cursor)
	g.SightSystem.Update(deltaTime)
}

// Player returns the pawn transform, nil once it is removed.
func (g *Game) Player() *geom.Transform {
	return g.ECS.Transforms[g.PlayerID]
}

// PlayerSight returns the pawn's fan, nil once it is removed.
func (g *Game) PlayerSight() *component.Sight {
	return g.ECS.Sights[g.PlayerID]
}

func (g *Game) GameTime() float64 {
	return g.gameTime
}

// GameEventListener обрабатывает события, важные для основного игрового цикла.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	data, _ := e.Data.(event.EntityData)
	switch e.Type {
	case event.PawnSpawned:
		logging.L().Info("pawn spawned",
			zap.Uint64("entity", uint64(data.Entity)),
			zap.Float64("x", data.X),
			zap.Float64("y", data.Y))
	case event.DestinationReached:
		logging.L().Debug("pawn stopped",
			zap.Uint64("entity", uint64(data.Entity)),
			zap.Float64("x", data.X),
			zap.Float64("y", data.Y),
			zap.Float64("game_time", l.game.gameTime))
	}
}
