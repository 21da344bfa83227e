package components

import (
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// ProjectionData is an orthographic projection that scales to fit within MaxWidth x MaxHeight
// world units, with ViewportOrigin the normalized screen point the camera position maps to.
type ProjectionData struct {
	Scale          float64
	MaxWidth       float64
	MaxHeight      float64
	ViewportOrigin dmath.Vec2
}

// BloomData configures the bloom post-process on the camera output
type BloomData struct {
	Enabled   bool
	Threshold float32
	Intensity float32
	Radius    float32
}

type CameraData struct {
	Position   dmath.Vec2
	Projection ProjectionData
	Bloom      BloomData

	// Screen size in pixels, refreshed every draw.
	ScreenWidth  float64
	ScreenHeight float64
}

var Camera = donburi.NewComponentType[CameraData]()

// UnitsPerPixel returns how many world units one screen pixel spans. The visible area is the
// largest rectangle of the screen's aspect ratio that fits in MaxWidth x MaxHeight, times Scale.
func (c *CameraData) UnitsPerPixel() float64 {
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return c.Projection.Scale
	}
	aspect := c.ScreenWidth / c.ScreenHeight
	viewW := c.Projection.MaxWidth
	if aspect < c.Projection.MaxWidth/c.Projection.MaxHeight {
		viewW = c.Projection.MaxHeight * aspect
	}
	return viewW / c.ScreenWidth * c.Projection.Scale
}

// WorldToScreen converts a world position to screen pixels.
func (c *CameraData) WorldToScreen(p dmath.Vec2) (x, y float64) {
	upp := c.UnitsPerPixel()
	x = (p.X-c.Position.X)/upp + c.ScreenWidth*c.Projection.ViewportOrigin.X
	y = c.ScreenHeight*c.Projection.ViewportOrigin.Y - (p.Y-c.Position.Y)/upp
	return x, y
}

// ScreenToWorld converts screen pixels to a world position.
func (c *CameraData) ScreenToWorld(x, y float64) dmath.Vec2 {
	upp := c.UnitsPerPixel()
	return dmath.Vec2{
		X: (x-c.ScreenWidth*c.Projection.ViewportOrigin.X)*upp + c.Position.X,
		Y: (c.ScreenHeight*c.Projection.ViewportOrigin.Y-y)*upp + c.Position.Y,
	}
}
