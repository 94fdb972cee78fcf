// Package viewer ties the window, renderer, camera, and controller into
// the application lifecycle: construction initializes every collaborator,
// Run owns the poll-update-render loop, Close tears everything down.
package viewer

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/vipo/internal/config"
	"github.com/Faultbox/vipo/internal/engine/camera"
	"github.com/Faultbox/vipo/internal/engine/controller"
	"github.com/Faultbox/vipo/internal/engine/input"
	"github.com/Faultbox/vipo/internal/engine/renderer"
	"github.com/Faultbox/vipo/internal/engine/window"
	"github.com/Faultbox/vipo/internal/frontier"
	"github.com/Faultbox/vipo/internal/logger"
	"github.com/Faultbox/vipo/pkg/math"
)

// Viewer is the application instance. It owns the window, the GPU
// resources, and the camera state for one frontier.
type Viewer struct {
	window     *window.Window
	input      *input.Input
	renderer   *renderer.Renderer
	camera     *camera.Camera
	controller *controller.Controller

	// model normalizes the frontier AABB to the unit cube; fixed for
	// the lifetime of the viewer.
	model math.Mat4

	closed bool
}

// New frames the frontier and initializes window, GL context, and GPU
// buffers. On error nothing is left to clean up; on success the caller
// must Close the viewer on every exit path.
func New(cfg *config.Config, fr *frontier.Frontier) (*Viewer, error) {
	box := frontier.ComputeAABB(fr.Vertices)
	logger.Info("frontier framed",
		zap.Int("vertices", len(fr.Vertices)),
		zap.Int("edges", len(fr.Edges)),
		zap.Any("min", box.Min),
		zap.Any("max", box.Max),
	)

	v := &Viewer{
		model: box.ModelMatrix(),
	}

	var err error
	v.window, err = window.New(window.Config{
		Title:       cfg.Window.Title,
		Width:       cfg.Window.Width,
		Height:      cfg.Window.Height,
		VSync:       cfg.Window.VSync,
		MSAASamples: cfg.Window.MSAASamples,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	v.renderer, err = renderer.New(fr, box)
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	cam := camera.New()
	cam.FOV = cfg.Camera.FOV
	cam.Near = cfg.Camera.Near
	cam.Far = cfg.Camera.Far
	cam.Radius = cfg.Camera.Radius
	cam.OrbitSensitivity = cfg.Controls.OrbitSensitivity
	cam.ZoomSensitivity = cfg.Controls.ZoomSensitivity
	cam.PanFactor = cfg.Controls.PanFactor
	v.camera = cam

	v.controller = controller.New(cam)
	v.input = input.New()

	// Initial resize seeds the viewport and the projection aspect before
	// the first frame.
	width, height := v.window.DrawableSize()
	v.controller.Resized(width, height)
	v.renderer.Resize(width, height)

	logger.Info("viewer initialized")
	return v, nil
}

// Run drives the poll-update-render loop until a quit is requested by the
// Escape key or the window manager.
func (v *Viewer) Run() error {
	logger.Info("entering main loop")

	frames := 0
	fpsTimer := time.Now()

	for !v.controller.QuitRequested() {
		if v.input.Update() {
			v.controller.RequestQuit()
		}
		for _, e := range v.input.Events() {
			v.handleEvent(e)
		}

		v.controller.Update()

		mvp := v.camera.ProjectionMatrix().
			Mul(v.camera.ViewMatrix()).
			Mul(v.model)
		v.renderer.Draw(mvp)

		v.window.SwapBuffers()

		frames++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps", zap.Int("frames", frames))
			frames = 0
			fpsTimer = time.Now()
		}
	}

	logger.Info("main loop exited")
	return nil
}

// handleEvent routes one input event to the controller.
func (v *Viewer) handleEvent(e input.Event) {
	switch e.Type {
	case input.EventQuit:
		v.controller.RequestQuit()

	case input.EventKeyDown:
		if e.Key == sdl.SCANCODE_ESCAPE {
			v.controller.RequestQuit()
		}

	case input.EventWindowResize:
		// The drawable size can differ from the reported window size on
		// high-DPI displays; the GL viewport needs the former.
		width, height := v.window.DrawableSize()
		v.controller.Resized(width, height)
		v.renderer.Resize(width, height)

	case input.EventMouseMove:
		v.controller.MouseMoved(float32(e.MouseX), float32(e.MouseY))

	case input.EventMouseDown, input.EventMouseUp:
		pressed := e.Type == input.EventMouseDown
		switch e.Button {
		case sdl.BUTTON_LEFT:
			v.controller.ButtonChanged(controller.ButtonLeft, pressed)
		case sdl.BUTTON_RIGHT:
			v.controller.ButtonChanged(controller.ButtonRight, pressed)
		}

	case input.EventMouseWheel:
		v.controller.Scrolled(e.WheelY)
	}
}

// Close releases GPU resources and destroys the window. Idempotent, and
// safe on a viewer whose construction failed partway.
func (v *Viewer) Close() {
	if v.closed {
		return
	}
	v.closed = true

	logger.Info("closing viewer")
	if v.renderer != nil {
		v.renderer.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}
