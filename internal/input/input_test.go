package input

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func TestKeyEdges(t *testing.T) {
	im := NewInputManager()

	im.HandleKeyEvent(glfw.KeyW, glfw.Press)
	if !im.IsActive(ActionMoveForward) || !im.JustPressed(ActionMoveForward) {
		t.Fatalf("W press not observed")
	}

	im.PostUpdate()
	im.HandleKeyEvent(glfw.KeyW, glfw.Repeat)
	if !im.IsActive(ActionMoveForward) {
		t.Fatalf("repeat released the action")
	}
	if im.JustPressed(ActionMoveForward) {
		t.Fatalf("repeat produced a second press edge")
	}

	im.HandleKeyEvent(glfw.KeyW, glfw.Release)
	if im.IsActive(ActionMoveForward) || !im.JustReleased(ActionMoveForward) {
		t.Fatalf("W release not observed")
	}
	im.PostUpdate()
	if im.JustReleased(ActionMoveForward) {
		t.Fatalf("PostUpdate kept the release edge")
	}
}

func TestPressAndReleaseInOneFrame(t *testing.T) {
	im := NewInputManager()
	im.HandleMouseButtonEvent(glfw.MouseButtonLeft, glfw.Press)
	im.HandleMouseButtonEvent(glfw.MouseButtonLeft, glfw.Release)

	if !im.JustPressed(ActionBreak) || !im.JustReleased(ActionBreak) {
		t.Fatalf("edges lost within a frame")
	}
	if im.IsActive(ActionBreak) {
		t.Fatalf("break still held")
	}
}

func TestSharedBindingHeldUntilLastKeyUp(t *testing.T) {
	im := NewInputManager()
	im.HandleKeyEvent(glfw.KeyW, glfw.Press)
	im.HandleKeyEvent(glfw.KeyUp, glfw.Press)
	im.PostUpdate()

	im.HandleKeyEvent(glfw.KeyUp, glfw.Release)
	if !im.IsActive(ActionMoveForward) {
		t.Fatalf("releasing Up dropped forward while W is down")
	}
	if im.JustReleased(ActionMoveForward) {
		t.Fatalf("release edge while W is still down")
	}
	if got := im.Axis(ActionMoveBackward, ActionMoveForward); got != 1 {
		t.Fatalf("Axis = %v, want 1", got)
	}

	im.HandleKeyEvent(glfw.KeyW, glfw.Release)
	if im.IsActive(ActionMoveForward) || !im.JustReleased(ActionMoveForward) {
		t.Fatalf("forward not released after the last key")
	}
}

func TestKeyAndButtonShareAction(t *testing.T) {
	im := NewInputManager()
	im.BindKey(glfw.KeyQ, ActionBreak)
	im.HandleKeyEvent(glfw.KeyQ, glfw.Press)
	im.HandleMouseButtonEvent(glfw.MouseButtonLeft, glfw.Press)
	im.HandleMouseButtonEvent(glfw.MouseButtonLeft, glfw.Release)
	if !im.IsActive(ActionBreak) {
		t.Fatalf("mouse release dropped break while Q is down")
	}
}

func TestUnbindHeldKey(t *testing.T) {
	im := NewInputManager()
	im.HandleKeyEvent(glfw.KeyW, glfw.Press)
	im.HandleKeyEvent(glfw.KeyUp, glfw.Press)

	im.UnbindKey(glfw.KeyUp)
	if !im.IsActive(ActionMoveForward) {
		t.Fatalf("unbinding Up released forward while W is down")
	}
	im.UnbindKey(glfw.KeyW)
	if im.IsActive(ActionMoveForward) {
		t.Fatalf("forward held with no bound key down")
	}
}

func TestDefaultBindings(t *testing.T) {
	im := NewInputManager()
	cases := []struct {
		key  glfw.Key
		want Action
	}{
		{glfw.KeyW, ActionMoveForward},
		{glfw.KeyDown, ActionMoveBackward},
		{glfw.KeyA, ActionMoveLeft},
		{glfw.KeyRight, ActionMoveRight},
		{glfw.KeyEscape, ActionReleaseCursor},
		{glfw.KeyF, ActionToggleWireframe},
	}
	for _, tc := range cases {
		im.HandleKeyEvent(tc.key, glfw.Press)
		if !im.IsActive(tc.want) {
			t.Errorf("key %d did not activate %v", tc.key, tc.want)
		}
	}

	im.HandleMouseButtonEvent(glfw.MouseButtonRight, glfw.Press)
	if !im.JustPressed(ActionPlace) {
		t.Errorf("right button did not press place")
	}
}

func TestUnboundAndInvalid(t *testing.T) {
	im := NewInputManager()
	im.HandleKeyEvent(glfw.KeyZ, glfw.Press)
	for a := Action(0); a < ActionCount; a++ {
		if im.IsActive(a) {
			t.Fatalf("unbound key activated %v", a)
		}
	}

	im.BindKey(glfw.KeyZ, ActionCount)
	im.BindKey(glfw.KeyZ, -1)
	if im.IsActive(ActionCount) || im.JustPressed(-1) {
		t.Fatalf("out-of-range action reported active")
	}

	im.UnbindKey(glfw.KeyW)
	im.HandleKeyEvent(glfw.KeyW, glfw.Press)
	if im.IsActive(ActionMoveForward) {
		t.Fatalf("unbound W still moves forward")
	}
	if Action(99).String() != "unknown" {
		t.Fatalf("out-of-range String = %q", Action(99).String())
	}
}

func TestScrollAccumulates(t *testing.T) {
	im := NewInputManager()
	im.HandleScroll(1)
	im.HandleScroll(2)
	im.HandleScroll(-0.5)
	if got := im.ConsumeScroll(); got != 2.5 {
		t.Fatalf("ConsumeScroll = %v, want 2.5", got)
	}
	if got := im.ConsumeScroll(); got != 0 {
		t.Fatalf("second ConsumeScroll = %v, want 0", got)
	}
}

func TestAxisAndReset(t *testing.T) {
	im := NewInputManager()
	im.HandleKeyEvent(glfw.KeyD, glfw.Press)
	if got := im.Axis(ActionMoveLeft, ActionMoveRight); got != 1 {
		t.Fatalf("Axis = %v, want 1", got)
	}
	im.HandleKeyEvent(glfw.KeyA, glfw.Press)
	if got := im.Axis(ActionMoveLeft, ActionMoveRight); got != 0 {
		t.Fatalf("Axis with both held = %v, want 0", got)
	}

	im.HandleScroll(3)
	im.Reset()
	if im.IsActive(ActionMoveRight) || im.ConsumeScroll() != 0 {
		t.Fatalf("Reset kept state")
	}
}
