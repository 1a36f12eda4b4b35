// pkg/geom/camera.go
package geom

import "github.com/go-gl/mathgl/mgl64"

// Camera is a top-down view centred on a followed point. Screen Y grows
// downward, as does world Y.
type Camera struct {
	Center       mgl64.Vec2
	ScreenWidth  float64
	ScreenHeight float64
}

func NewCamera(screenWidth, screenHeight float64) *Camera {
	return &Camera{ScreenWidth: screenWidth, ScreenHeight: screenHeight}
}

// Follow centres the camera on target.
func (c *Camera) Follow(target mgl64.Vec3) {
	c.Center = mgl64.Vec2{target.X(), target.Y()}
}

// WorldToScreen converts a world point to screen pixels.
func (c *Camera) WorldToScreen(p mgl64.Vec3) (float64, float64) {
	return p.X() - c.Center.X() + c.ScreenWidth/2, p.Y() - c.Center.Y() + c.ScreenHeight/2
}

// ScreenToWorld converts screen pixels to a point on the ground plane.
func (c *Camera) ScreenToWorld(x, y float64) mgl64.Vec3 {
	return mgl64.Vec3{x + c.Center.X() - c.ScreenWidth/2, y + c.Center.Y() - c.ScreenHeight/2, 0}
}
