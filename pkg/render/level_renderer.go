// pkg/render/level_renderer.go
package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-stealth/pkg/geom"
	"go-stealth/pkg/level"
)

// LevelRenderer draws the floor and walls once into an image the size of the
// level and blits it at the camera offset every frame.
type LevelRenderer struct {
	level    *level.Level
	colors   *LevelColors
	mapImage *ebiten.Image // предрендеренный уровень
}

func NewLevelRenderer(lvl *level.Level, colors *LevelColors) *LevelRenderer {
	r := &LevelRenderer{
		level:    lvl,
		colors:   colors,
		mapImage: ebiten.NewImage(int(lvl.Width)+1, int(lvl.Height)+1),
	}
	r.RenderMapImage()
	return r
}

// RenderMapImage redraws the static background.
func (r *LevelRenderer) RenderMapImage() {
	r.mapImage.Clear()
	c := r.colors
	vector.DrawFilledRect(r.mapImage, 0, 0, float32(r.level.Width), float32(r.level.Height), c.FloorColor, false)

	// стекло рисуется поверх, поэтому сначала сплошные стены
	for _, w := range r.level.Walls {
		if w.Transparent {
			continue
		}
		vector.DrawFilledRect(r.mapImage, float32(w.X), float32(w.Y), float32(w.W), float32(w.H), c.WallColor, true)
		vector.StrokeRect(r.mapImage, float32(w.X), float32(w.Y), float32(w.W), float32(w.H), c.StrokeWidth, c.WallStrokeColor, true)
	}
	for _, w := range r.level.Walls {
		if !w.Transparent {
			continue
		}
		vector.DrawFilledRect(r.mapImage, float32(w.X), float32(w.Y), float32(w.W), float32(w.H), c.GlassColor, true)
		vector.StrokeRect(r.mapImage, float32(w.X), float32(w.Y), float32(w.W), float32(w.H), 1, DarkenColor(c.GlassColor), true)
	}
}

func (r *LevelRenderer) Draw(screen *ebiten.Image, camera *geom.Camera) {
	screen.Fill(r.colors.BackgroundColor)
	x, y := camera.WorldToScreen(level.Point{}.Vec3())
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	screen.DrawImage(r.mapImage, op)
}
