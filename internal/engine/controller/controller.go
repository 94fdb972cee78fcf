// Package controller translates raw input state into camera updates:
// orbit on left-drag, pan on right-drag, logarithmic zoom on scroll.
package controller

import (
	"github.com/Faultbox/vipo/internal/engine/camera"
	"github.com/Faultbox/vipo/pkg/math"
)

// Button identifies a mouse button tracked by the controller.
type Button int

// Tracked buttons. Each has an independent Idle/Dragging state; holding
// both applies orbit and pan additively.
const (
	ButtonLeft Button = iota
	ButtonRight
	buttonCount
)

// Controller owns the per-frame input state: previous and current cursor
// position, button states, and the quit flag. Drags are applied from
// frame-to-frame cursor deltas, never from absolute positions, so a
// button press transition can never make the view snap.
type Controller struct {
	cam *camera.Camera

	prev math.Vec2
	cur  math.Vec2
	held [buttonCount]bool
	quit bool
}

// New returns a controller driving the given camera.
func New(cam *camera.Camera) *Controller {
	return &Controller{cam: cam}
}

// MouseMoved records the current cursor position in pixels.
func (c *Controller) MouseMoved(x, y float32) {
	c.cur = math.Vec2{X: x, Y: y}
}

// ButtonChanged transitions a button between Idle and Dragging.
func (c *Controller) ButtonChanged(b Button, pressed bool) {
	if b < 0 || b >= buttonCount {
		return
	}
	c.held[b] = pressed
}

// Scrolled zooms immediately; scroll is handled per event, not per frame.
func (c *Controller) Scrolled(wheel float32) {
	c.cam.HandleZoom(wheel)
}

// Resized propagates new viewport dimensions to the camera.
func (c *Controller) Resized(width, height int) {
	c.cam.SetViewport(width, height)
}

// RequestQuit flags that the application loop should exit.
func (c *Controller) RequestQuit() {
	c.quit = true
}

// QuitRequested reports whether a quit was requested.
func (c *Controller) QuitRequested() bool {
	return c.quit
}

// Update applies the aggregated cursor delta once per frame: orbit while
// the left button is held, pan while the right button is held.
func (c *Controller) Update() {
	delta := c.cur.Sub(c.prev)
	c.prev = c.cur

	if c.held[ButtonLeft] {
		c.cam.HandleOrbit(delta.X, delta.Y)
	}
	if c.held[ButtonRight] {
		c.cam.HandlePan(delta.X, delta.Y)
	}
}
