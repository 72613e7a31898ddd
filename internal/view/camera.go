// Package view owns the fly camera and the per-frame view/projection
// update.
package view

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	mouseSensitivity = 0.1

	pitchLimit = 89.0

	minMovementSpeed = 0.1
	maxMovementSpeed = 1.0
	scrollSpeedStep  = 0.1
)

// Camera is the single first-person camera. Mutated by input callbacks and
// the per-frame update; all access happens on the render thread.
type Camera struct {
	Position mgl32.Vec3
	Front    mgl32.Vec3
	Up       mgl32.Vec3

	Yaw   float32 // degrees, unbounded
	Pitch float32 // degrees, clamped to ±pitchLimit

	Zoom          float32 // perspective field of view in degrees
	MovementSpeed float32 // clamped to [minMovementSpeed, maxMovementSpeed]

	lastX      float64
	lastY      float64
	firstMouse bool
}

// NewCamera returns the camera at the scene's start pose.
func NewCamera(fov, movementSpeed float32) *Camera {
	return &Camera{
		Position:      mgl32.Vec3{0, 5, 12},
		Front:         mgl32.Vec3{0, -0.5, -2}.Normalize(),
		Up:            mgl32.Vec3{0, 1, 0},
		Yaw:           -89,
		Pitch:         0,
		Zoom:          fov,
		MovementSpeed: clampSpeed(movementSpeed),
		firstMouse:    true,
	}
}

// ProcessMouseMovement accumulates a cursor sample into yaw/pitch and
// recomputes the front vector. The first sample only seeds the delta
// baseline and changes nothing.
func (c *Camera) ProcessMouseMovement(xpos, ypos float64) {
	if c.firstMouse {
		c.lastX = xpos
		c.lastY = ypos
		c.firstMouse = false
		return
	}

	xoffset := float32(xpos-c.lastX) * mouseSensitivity
	yoffset := float32(c.lastY-ypos) * mouseSensitivity
	c.lastX = xpos
	c.lastY = ypos

	c.Yaw += xoffset
	c.Pitch += yoffset

	// Constrain pitch to prevent flipping
	if c.Pitch > pitchLimit {
		c.Pitch = pitchLimit
	}
	if c.Pitch < -pitchLimit {
		c.Pitch = -pitchLimit
	}

	c.Front = frontVector(c.Yaw, c.Pitch)
}

// ProcessScroll adjusts the movement speed by the wheel delta, clamped so
// the camera can neither stall nor run away.
func (c *Camera) ProcessScroll(yoffset float64) {
	c.MovementSpeed = clampSpeed(c.MovementSpeed + float32(yoffset)*scrollSpeedStep)
}

// ResetMouse makes the next cursor sample seed the delta baseline again.
func (c *Camera) ResetMouse() {
	c.firstMouse = true
}

// RightVector returns the normalized strafe direction.
func (c *Camera) RightVector() mgl32.Vec3 {
	return c.Front.Cross(c.Up).Normalize()
}

// ViewMatrix derives the look-at view matrix from the camera pose.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)
}

// frontVector converts yaw/pitch into a unit direction.
func frontVector(yawDeg, pitchDeg float32) mgl32.Vec3 {
	yaw := float64(mgl32.DegToRad(yawDeg))
	pitch := float64(mgl32.DegToRad(pitchDeg))
	return mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}.Normalize()
}

func clampSpeed(speed float32) float32 {
	if speed < minMovementSpeed {
		return minMovementSpeed
	}
	if speed > maxMovementSpeed {
		return maxMovementSpeed
	}
	return speed
}
