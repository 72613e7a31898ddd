package view

import (
	"desk-scene/internal/input"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	nearPlane       = 0.1
	farPlane        = 100.0
	orthoHalfExtent = 10.0

	// Movement is scaled by delta time; this rate makes MovementSpeed feel
	// like the per-frame step it replaces at 60 FPS.
	moveUnitsPerSecond = 60.0
)

// UniformSink is the subset of shader state the view controller publishes.
type UniformSink interface {
	SetVec3(name string, v mgl32.Vec3)
	SetMat4(name string, m mgl32.Mat4)
}

// Controller owns the camera and turns input state into the per-frame
// view/projection uniforms.
type Controller struct {
	camera *Camera
	input  *input.Manager
	sink   UniformSink

	aspectRatio  float32
	orthographic bool
}

// NewController creates a view controller around an existing camera.
func NewController(camera *Camera, in *input.Manager, sink UniformSink, aspectRatio float32) *Controller {
	return &Controller{
		camera:      camera,
		input:       in,
		sink:        sink,
		aspectRatio: aspectRatio,
	}
}

// Camera exposes the controller's camera.
func (c *Controller) Camera() *Camera {
	return c.camera
}

// Orthographic reports whether the orthographic projection is selected.
func (c *Controller) Orthographic() bool {
	return c.orthographic
}

// InstallCallbacks registers the cursor and scroll handlers and captures
// the cursor.
func (c *Controller) InstallCallbacks(window *glfw.Window) {
	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		w.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
		c.camera.ProcessMouseMovement(xpos, ypos)
	})
	window.SetScrollCallback(func(w *glfw.Window, xoffset, yoffset float64) {
		c.camera.ProcessScroll(yoffset)
	})
}

// AdvanceFrame applies held movement actions to the camera, resolves the
// projection mode and publishes view, projection and camera position to the
// shader.
func (c *Controller) AdvanceFrame(dt float64) {
	c.applyMovement(dt)
	c.applyProjectionToggle()

	c.sink.SetMat4("view", c.camera.ViewMatrix())
	c.sink.SetMat4("projection", c.ProjectionMatrix())
	c.sink.SetVec3("viewPosition", c.camera.Position)
}

// QuitRequested reports whether the close action is held.
func (c *Controller) QuitRequested() bool {
	return c.input.IsActive(input.ActionQuit)
}

// ProjectionMatrix returns the projection for the current mode.
func (c *Controller) ProjectionMatrix() mgl32.Mat4 {
	if c.orthographic {
		return mgl32.Ortho(-orthoHalfExtent, orthoHalfExtent, -orthoHalfExtent, orthoHalfExtent, nearPlane, farPlane)
	}
	return mgl32.Perspective(mgl32.DegToRad(c.camera.Zoom), c.aspectRatio, nearPlane, farPlane)
}

func (c *Controller) applyMovement(dt float64) {
	cam := c.camera
	step := cam.MovementSpeed * float32(dt) * moveUnitsPerSecond

	if c.input.IsActive(input.ActionMoveForward) {
		cam.Position = cam.Position.Add(cam.Front.Mul(step))
	}
	if c.input.IsActive(input.ActionMoveBackward) {
		cam.Position = cam.Position.Sub(cam.Front.Mul(step))
	}
	if c.input.IsActive(input.ActionMoveLeft) {
		cam.Position = cam.Position.Sub(cam.RightVector().Mul(step))
	}
	if c.input.IsActive(input.ActionMoveRight) {
		cam.Position = cam.Position.Add(cam.RightVector().Mul(step))
	}
	if c.input.IsActive(input.ActionMoveUp) {
		cam.Position = cam.Position.Add(cam.Up.Mul(step))
	}
	if c.input.IsActive(input.ActionMoveDown) {
		cam.Position = cam.Position.Sub(cam.Up.Mul(step))
	}
}

// applyProjectionToggle resolves the two mode keys; the mode is sticky and
// the last held key wins.
func (c *Controller) applyProjectionToggle() {
	if c.input.IsActive(input.ActionPerspective) {
		c.orthographic = false
	}
	if c.input.IsActive(input.ActionOrthographic) {
		c.orthographic = true
	}
}
