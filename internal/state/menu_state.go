// internal/state/menu_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"go-stealth/internal/config"
	"go-stealth/internal/logging"
	"go-stealth/internal/ui"
)

// MenuState waits for Space or a click before starting the level.
type MenuState struct {
	sm      *StateMachine
	session *Session
}

func NewMenuState(sm *StateMachine, session *Session) *MenuState {
	return &MenuState{sm: sm, session: session}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if !inpututil.IsKeyJustPressed(ebiten.KeySpace) && !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	gs, err := NewGameState(m.sm, m.session)
	if err != nil {
		logging.L().Error("failed to start game", zap.Error(err))
		return
	}
	m.sm.SetState(gs)
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	ui.DrawBanner(screen, m.session.Font, "Press Space to start")
}

func (m *MenuState) Exit() {}
