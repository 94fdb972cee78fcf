// Package camera provides the spherical orbit camera driving the viewer.
package camera

import (
	gomath "math"

	"github.com/Faultbox/vipo/pkg/math"
)

// The world is z-up and the camera never rolls.
var worldUp = math.Vec3{Z: 1}

// altitudeBound keeps the look-at well-defined at the poles.
const altitudeBound = float32(gomath.Pi/2 - 1e-5)

// Camera orbits a focus origin on a sphere parameterized by altitude
// (angle above the xy-plane), azimuth (angle around the z-axis), and
// radius. Azimuth is unbounded; altitude stays strictly inside
// (-pi/2, +pi/2); radius stays positive.
type Camera struct {
	Altitude float32   // radians above the xy-plane
	Azimuth  float32   // radians around the z-axis
	Radius   float32   // distance from the focus origin
	Origin   math.Vec3 // focus point the camera orbits and looks at

	// Projection
	FOV  float32 // vertical field of view in degrees
	Near float32
	Far  float32

	// Viewport in pixels
	Width  int
	Height int

	// Sensitivity
	OrbitSensitivity float32 // radians per pixel of drag
	ZoomSensitivity  float32 // log units per wheel step
	PanFactor        float32 // cursor-to-focus tracking factor
}

// New returns a camera with the default framing: the model normalization
// puts the data in the unit cube, so altitude 0, azimuth 0, radius 5 always
// yields a reasonable first view.
func New() *Camera {
	return &Camera{
		Radius:           5,
		FOV:              45,
		Near:             0.1,
		Far:              10000,
		Width:            500,
		Height:           500,
		OrbitSensitivity: 0.01,
		ZoomSensitivity:  0.1,
		PanFactor:        1.3,
	}
}

// Position returns the camera position in world space:
// origin + radius * (cos a cos t, cos a sin t, sin a).
func (c *Camera) Position() math.Vec3 {
	cosA := float32(gomath.Cos(float64(c.Altitude)))
	dir := math.Vec3{
		X: cosA * float32(gomath.Cos(float64(c.Azimuth))),
		Y: cosA * float32(gomath.Sin(float64(c.Azimuth))),
		Z: float32(gomath.Sin(float64(c.Altitude))),
	}
	return c.Origin.Add(dir.Scale(c.Radius))
}

// ViewMatrix returns the look-at matrix from the camera position to the
// focus origin.
func (c *Camera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), c.Origin, worldUp)
}

// ProjectionMatrix returns the symmetric perspective projection for the
// current viewport aspect ratio.
func (c *Camera) ProjectionMatrix() math.Mat4 {
	aspect := float32(c.Width) / float32(c.Height)
	return math.Perspective(c.fovRadians(), aspect, c.Near, c.Far)
}

// Right returns the camera's right axis in world space.
func (c *Camera) Right() math.Vec3 {
	toOrigin := c.Origin.Sub(c.Position())
	return toOrigin.Cross(worldUp).Normalize()
}

// Up returns the camera's up axis in the view plane.
func (c *Camera) Up() math.Vec3 {
	toOrigin := c.Origin.Sub(c.Position())
	return c.Right().Cross(toOrigin).Normalize()
}

// PixelSize returns the world-space extent one pixel covers at unit
// distance from the camera: 2 tan(fov/2) / viewport height.
func (c *Camera) PixelSize() float32 {
	return 2 * float32(gomath.Tan(float64(c.fovRadians())/2)) / float32(c.Height)
}

// HandleOrbit rotates the camera around the focus by a cursor drag delta
// in pixels. Altitude is clamped just short of the poles.
func (c *Camera) HandleOrbit(dx, dy float32) {
	c.Altitude += dy * c.OrbitSensitivity
	c.Azimuth -= dx * c.OrbitSensitivity

	if c.Altitude > altitudeBound {
		c.Altitude = altitudeBound
	}
	if c.Altitude < -altitudeBound {
		c.Altitude = -altitudeBound
	}
}

// HandlePan translates the focus origin in the screen plane. The scale is
// linear in the radius so panning speed tracks the cursor at every zoom
// level.
func (c *Camera) HandlePan(dx, dy float32) {
	scale := c.PanFactor * c.PixelSize() * c.Radius
	c.Origin = c.Origin.
		Add(c.Right().Scale(-scale * dx)).
		Add(c.Up().Scale(scale * dy))
}

// HandleZoom scales the radius by exp(-sensitivity * wheel). Zoom steps
// compose multiplicatively, so the radius converges toward zero without
// ever reaching it.
func (c *Camera) HandleZoom(wheel float32) {
	c.Radius *= float32(gomath.Exp(float64(-c.ZoomSensitivity * wheel)))
}

// SetViewport updates the viewport dimensions used for the projection
// matrix and the pixel size.
func (c *Camera) SetViewport(width, height int) {
	c.Width = width
	c.Height = height
}

func (c *Camera) fovRadians() float32 {
	return c.FOV * gomath.Pi / 180
}
