// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1280
	ScreenHeight = 800
	WindowTitle  = "Stealth"
	MaxDeltaTime = 0.06

	CapsuleRadius   = 42.0
	WalkSpeed       = 600.0 // units per second
	RotationRate    = 640.0 // degrees per second
	MinMoveDistance = 120.0 // ближе этого новый пункт назначения не выдаётся

	CursorDecalRadius = 16.0
	ForwardTickLength = 60.0

	HUDFontSize   = 14
	HUDLineHeight = 18

	DebugAddr = "localhost:6060"
)

var (
	BackgroundColor  = color.RGBA{20, 20, 30, 255}
	FloorColor       = color.RGBA{46, 52, 64, 255}
	WallColor        = color.RGBA{120, 110, 100, 255}
	GlassColor       = color.RGBA{120, 180, 220, 140}
	WallStrokeColor  = color.RGBA{200, 190, 170, 255}
	PlayerColor      = color.RGBA{60, 160, 255, 255}
	PlayerFacing     = color.RGBA{240, 240, 240, 255}
	SightColor       = color.RGBA{255, 230, 120, 90}
	CursorColor      = color.RGBA{90, 255, 120, 200}
	DestinationColor = color.RGBA{90, 255, 120, 90}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	OverlayColor     = color.RGBA{0, 0, 0, 128}
	StrokeWidth      = 2.0
)
