package input_test

import (
	"testing"

	"desk-scene/internal/input"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func TestDefaultBindings(t *testing.T) {
	m := input.NewManager()

	bindings := map[glfw.Key]input.Action{
		glfw.KeyW:      input.ActionMoveForward,
		glfw.KeyS:      input.ActionMoveBackward,
		glfw.KeyA:      input.ActionMoveLeft,
		glfw.KeyD:      input.ActionMoveRight,
		glfw.KeyQ:      input.ActionMoveUp,
		glfw.KeyE:      input.ActionMoveDown,
		glfw.KeyP:      input.ActionPerspective,
		glfw.KeyO:      input.ActionOrthographic,
		glfw.KeyEscape: input.ActionQuit,
	}

	for key, action := range bindings {
		m.HandleKeyEvent(key, glfw.Press)
		if !m.IsActive(action) {
			t.Errorf("key %v must activate action %v", key, action)
		}
		m.HandleKeyEvent(key, glfw.Release)
		if m.IsActive(action) {
			t.Errorf("release of %v must deactivate action %v", key, action)
		}
	}
}

func TestJustPressedEdges(t *testing.T) {
	m := input.NewManager()

	m.HandleKeyEvent(glfw.KeyW, glfw.Press)
	if !m.JustPressed(input.ActionMoveForward) {
		t.Fatal("press must set the edge flag")
	}

	m.PostUpdate()
	if m.JustPressed(input.ActionMoveForward) {
		t.Error("edge flag must clear after PostUpdate")
	}
	if !m.IsActive(input.ActionMoveForward) {
		t.Error("held key must stay active across frames")
	}

	// Repeat while held is not a new edge.
	m.HandleKeyEvent(glfw.KeyW, glfw.Repeat)
	if m.JustPressed(input.ActionMoveForward) {
		t.Error("key repeat must not set the edge flag")
	}
}

func TestUnboundKeyIgnored(t *testing.T) {
	m := input.NewManager()
	m.HandleKeyEvent(glfw.KeyZ, glfw.Press)

	for a := input.Action(0); a < input.ActionCount; a++ {
		if m.IsActive(a) {
			t.Errorf("unbound key activated action %v", a)
		}
	}
}

func TestBindKeyMultipleActions(t *testing.T) {
	m := input.NewManager()
	m.BindKey(glfw.KeySpace, input.ActionMoveUp)
	m.BindKey(glfw.KeySpace, input.ActionQuit)

	m.HandleKeyEvent(glfw.KeySpace, glfw.Press)
	if !m.IsActive(input.ActionMoveUp) || !m.IsActive(input.ActionQuit) {
		t.Error("a key may drive several actions at once")
	}
}
