// internal/ui/hud.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-stealth/internal/component"
	"go-stealth/internal/config"
	"go-stealth/pkg/geom"
)

const (
	hudMargin  = 10
	hudPadding = 8
	hudWidth   = 260
)

// HUD показывает параметры конуса видимости и FPS
type HUD struct {
	fontFace  font.Face
	IsVisible bool
	lines     []string
}

func NewHUD(face font.Face) *HUD {
	return &HUD{fontFace: face, IsVisible: true}
}

// Toggle shows or hides the panel.
func (h *HUD) Toggle() {
	h.IsVisible = !h.IsVisible
}

// Update rebuilds the text for this frame.
func (h *HUD) Update(player *geom.Transform, sight *component.Sight) {
	h.lines = h.lines[:0]
	h.lines = append(h.lines, fmt.Sprintf("FPS: %.0f  TPS: %.0f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	if sight != nil {
		c := sight.Mesher.Config()
		h.lines = append(h.lines,
			fmt.Sprintf("Arc: %.1f°  Step: %.2f°", c.ArcAngle, c.AngleStep),
			fmt.Sprintf("Radius: %.0f  Rays: %d", c.Radius, sight.Mesher.RaysPerTick()),
			fmt.Sprintf("Vertices: %d  Indices: %d", len(sight.Section.Vertices), len(sight.Section.Indices)),
		)
	}
	if player != nil {
		h.lines = append(h.lines, fmt.Sprintf("Pos: %.0f, %.0f", player.Location.X(), player.Location.Y()))
	}
}

func (h *HUD) Draw(screen *ebiten.Image) {
	if !h.IsVisible || len(h.lines) == 0 {
		return
	}
	height := float32(len(h.lines)*config.HUDLineHeight + 2*hudPadding)
	vector.DrawFilledRect(screen, hudMargin, hudMargin, hudWidth, height, config.OverlayColor, true)

	y := hudMargin + hudPadding + config.HUDFontSize
	for _, line := range h.lines {
		text.Draw(screen, line, h.fontFace, hudMargin+hudPadding, y, config.TextLightColor)
		y += config.HUDLineHeight
	}
}

// DrawBanner draws msg centred on the screen over a dimmed background.
func DrawBanner(screen *ebiten.Image, face font.Face, msg string) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)
	bounds := text.BoundString(face, msg)
	x := (config.ScreenWidth - bounds.Dx()) / 2
	y := (config.ScreenHeight + bounds.Dy()) / 2
	text.Draw(screen, msg, face, x, y, config.TextLightColor)
}
