// pkg/render/entity_renderer.go
package render

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-stealth/internal/entity"
	"go-stealth/pkg/geom"
)

// EntityRenderer рисует сущности: конусы видимости, пешки и курсор
type EntityRenderer struct {
	ecs    *entity.ECS
	colors *EntityColors
	meshes *MeshRenderer

	FacingLength float32
	CursorRadius float32
}

func NewEntityRenderer(ecs *entity.ECS, colors *EntityColors, facingLength, cursorRadius float32) *EntityRenderer {
	return &EntityRenderer{
		ecs:          ecs,
		colors:       colors,
		meshes:       NewMeshRenderer(),
		FacingLength: facingLength,
		CursorRadius: cursorRadius,
	}
}

func (r *EntityRenderer) Draw(screen *ebiten.Image, camera *geom.Camera) {
	c := r.colors

	// Сначала конусы видимости, чтобы пешки были поверх
	for id, sight := range r.ecs.Sights {
		if tr, ok := r.ecs.Transforms[id]; ok {
			r.meshes.Draw(screen, sight.Section, *tr, camera, c.SightColor)
			r.meshes.Outline(screen, sight.Section, *tr, camera, 1, DarkenColor(c.SightColor))
		}
	}

	for id, target := range r.ecs.MoveTargets {
		if !target.Active {
			continue
		}
		if tr, ok := r.ecs.Transforms[id]; ok {
			strokeWorldLine(screen, camera, tr.Location, target.Destination, 1, c.DestinationColor)
			x, y := camera.WorldToScreen(target.Destination)
			vector.DrawFilledCircle(screen, float32(x), float32(y), r.CursorRadius/2, c.DestinationColor, true)
		}
	}

	for id, render := range r.ecs.Renderables {
		tr, hasPos := r.ecs.Transforms[id]
		if !hasPos {
			continue
		}
		x, y := camera.WorldToScreen(tr.Location)
		if render.HasStroke {
			strokeRadius := render.Radius + 2
			vector.DrawFilledCircle(screen, float32(x), float32(y), strokeRadius, c.StrokeColor, true)
		}
		vector.DrawFilledCircle(screen, float32(x), float32(y), render.Radius, render.Color, true)

		tip := tr.Location.Add(tr.Forward().Mul(float64(render.Radius + r.FacingLength)))
		strokeWorldLine(screen, camera, tr.Location, tip, 3, c.FacingColor)
	}

	if cur := r.ecs.Cursor; cur != nil && cur.Visible {
		r.drawCursor(screen, camera, cur.Location, cur.Normal, c.CursorColor)
	}
}

// drawCursor draws the decal ring with a tick along the horizontal part of
// the normal. Floor and wall tops face up, so the tick is usually absent.
func (r *EntityRenderer) drawCursor(screen *ebiten.Image, camera *geom.Camera, at, normal mgl64.Vec3, c color.RGBA) {
	x, y := camera.WorldToScreen(at)
	vector.StrokeCircle(screen, float32(x), float32(y), r.CursorRadius, 2, c, true)
	vector.DrawFilledCircle(screen, float32(x), float32(y), 2, c, true)

	if h := geom.Flatten(normal); h.Len() > 1e-6 {
		tip := at.Add(h.Normalize().Mul(float64(r.CursorRadius) * 1.5))
		strokeWorldLine(screen, camera, at, tip, 2, c)
	}
}

func strokeWorldLine(target *ebiten.Image, camera *geom.Camera, a, b mgl64.Vec3, width float32, c color.RGBA) {
	ax, ay := camera.WorldToScreen(a)
	bx, by := camera.WorldToScreen(b)
	vector.StrokeLine(target, float32(ax), float32(ay), float32(bx), float32(by), width, c, true)
}
