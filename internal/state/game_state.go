// internal/state/game_state.go
package state

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
	"golang.org/x/image/font"

	game "go-stealth/internal/app"
	"go-stealth/internal/config"
	"go-stealth/internal/logging"
	"go-stealth/internal/metrics"
	"go-stealth/internal/system"
	"go-stealth/internal/ui"
	"go-stealth/pkg/geom"
	"go-stealth/pkg/level"
	"go-stealth/pkg/render"
)

// Session is what every state needs to (re)start a game.
type Session struct {
	Settings config.Settings
	Level    *level.Level
	Metrics  *metrics.Metrics
	Font     font.Face
}

// GameState — состояние игры
type GameState struct {
	sm       *StateMachine
	session  *Session
	game     *game.Game
	camera   *geom.Camera
	level    *render.LevelRenderer
	entities *render.EntityRenderer
	hud      *ui.HUD

	touchIDs []ebiten.TouchID
}

func NewGameState(sm *StateMachine, session *Session) (*GameState, error) {
	gameLogic, err := game.NewGame(session.Settings, session.Level, session.Metrics)
	if err != nil {
		return nil, fmt.Errorf("failed to start game: %w", err)
	}

	levelColors := &render.LevelColors{
		BackgroundColor: config.BackgroundColor,
		FloorColor:      config.FloorColor,
		WallColor:       config.WallColor,
		GlassColor:      config.GlassColor,
		WallStrokeColor: config.WallStrokeColor,
		StrokeWidth:     float32(config.StrokeWidth),
	}
	entityColors := &render.EntityColors{
		StrokeColor:      render.DarkenColor(config.PlayerColor),
		FacingColor:      config.PlayerFacing,
		SightColor:       config.SightColor,
		CursorColor:      config.CursorColor,
		DestinationColor: config.DestinationColor,
	}

	gs := &GameState{
		sm:       sm,
		session:  session,
		game:     gameLogic,
		camera:   geom.NewCamera(config.ScreenWidth, config.ScreenHeight),
		level:    render.NewLevelRenderer(session.Level, levelColors),
		entities: render.NewEntityRenderer(gameLogic.ECS, entityColors, config.ForwardTickLength, config.CursorDecalRadius),
		hud:      ui.NewHUD(session.Font),
	}
	if player := gameLogic.Player(); player != nil {
		gs.camera.Follow(player.Location)
	}
	return gs, nil
}

func (g *GameState) Enter() {
	logging.L().Debug("entering game state", zap.String("level", g.session.Level.Name))
}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.Toggle()
	}

	g.game.Update(deltaTime, g.readInput())

	// камера следует за пешкой
	if player := g.game.Player(); player != nil {
		g.camera.Follow(player.Location)
	}
	g.hud.Update(g.game.Player(), g.game.PlayerSight())
}

// readInput projects the mouse and touches onto the ground.
func (g *GameState) readInput() system.Input {
	x, y := ebiten.CursorPosition()
	input := system.Input{
		Cursor:                 g.camera.ScreenToWorld(float64(x), float64(y)),
		SetDestinationPressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		SetDestinationReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
	}

	// pressed and held touches both refresh the destination
	g.touchIDs = ebiten.AppendTouchIDs(g.touchIDs[:0])
	if len(g.touchIDs) > 0 {
		input.Touches = make([]mgl64.Vec3, 0, len(g.touchIDs))
		for _, id := range g.touchIDs {
			tx, ty := ebiten.TouchPosition(id)
			input.Touches = append(input.Touches, g.camera.ScreenToWorld(float64(tx), float64(ty)))
		}
	}
	return input
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.level.Draw(screen, g.camera)
	g.entities.Draw(screen, g.camera)
	g.hud.Draw(screen)
}

func (g *GameState) Exit() {}

// GetGame returns the running game mode.
func (g *GameState) GetGame() *game.Game {
	return g.game
}
