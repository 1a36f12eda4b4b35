// pkg/render/color.go
package render

import "image/color"

// LevelColors holds the colors needed to render the static level background.
type LevelColors struct {
	BackgroundColor color.RGBA
	FloorColor      color.RGBA
	WallColor       color.RGBA
	GlassColor      color.RGBA
	WallStrokeColor color.RGBA
	StrokeWidth     float32
}

// EntityColors holds the colors of dynamic overlays drawn every frame.
type EntityColors struct {
	StrokeColor      color.RGBA
	FacingColor      color.RGBA
	SightColor       color.RGBA
	CursorColor      color.RGBA
	DestinationColor color.RGBA
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// colorScale converts c to the float components ebiten vertices use.
func colorScale(c color.RGBA) (r, g, b, a float32) {
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255
}
