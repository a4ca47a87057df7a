package input

import (
	"slices"
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action is a logical control, independent of the physical key bound to it.
type Action int

const (
	ActionMoveForward Action = iota
	ActionMoveBackward
	ActionMoveLeft
	ActionMoveRight
	ActionBreak
	ActionPlace
	ActionReleaseCursor
	ActionToggleWireframe
	ActionCount // Sentinel value for array sizing
)

var actionNames = [ActionCount]string{
	ActionMoveForward:     "move_forward",
	ActionMoveBackward:    "move_backward",
	ActionMoveLeft:        "move_left",
	ActionMoveRight:       "move_right",
	ActionBreak:           "break",
	ActionPlace:           "place",
	ActionReleaseCursor:   "release_cursor",
	ActionToggleWireframe: "toggle_wireframe",
}

func (a Action) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

// InputManager tracks held and edge-triggered actions fed from GLFW
// callbacks. Callbacks run on the main thread during PollEvents, but the
// state is guarded so it can be read from elsewhere.
type InputManager struct {
	mu sync.RWMutex

	keyToActions         map[glfw.Key][]Action
	mouseButtonToActions map[glfw.MouseButton][]Action

	// Physical keys and buttons currently down. An action is held while
	// any of its bindings is.
	keysDown    map[glfw.Key]bool
	buttonsDown map[glfw.MouseButton]bool

	currentState [ActionCount]bool
	justPressed  [ActionCount]bool
	justReleased [ActionCount]bool

	// Scroll offset accumulated since the last ConsumeScroll
	scrollY float64
}

// NewInputManager creates an InputManager with the default bindings.
func NewInputManager() *InputManager {
	im := &InputManager{
		keyToActions:         make(map[glfw.Key][]Action),
		mouseButtonToActions: make(map[glfw.MouseButton][]Action),
		keysDown:             make(map[glfw.Key]bool),
		buttonsDown:          make(map[glfw.MouseButton]bool),
	}

	im.BindKey(glfw.KeyW, ActionMoveForward)
	im.BindKey(glfw.KeyUp, ActionMoveForward)
	im.BindKey(glfw.KeyS, ActionMoveBackward)
	im.BindKey(glfw.KeyDown, ActionMoveBackward)
	im.BindKey(glfw.KeyA, ActionMoveLeft)
	im.BindKey(glfw.KeyLeft, ActionMoveLeft)
	im.BindKey(glfw.KeyD, ActionMoveRight)
	im.BindKey(glfw.KeyRight, ActionMoveRight)
	im.BindKey(glfw.KeyEscape, ActionReleaseCursor)
	im.BindKey(glfw.KeyF, ActionToggleWireframe)

	im.BindMouseButton(glfw.MouseButtonLeft, ActionBreak)
	im.BindMouseButton(glfw.MouseButtonRight, ActionPlace)

	return im
}

// BindKey binds a physical key to an action. A key may drive several
// actions and several keys may drive one action.
func (im *InputManager) BindKey(key glfw.Key, action Action) {
	if action < 0 || action >= ActionCount {
		return
	}
	im.mu.Lock()
	defer im.mu.Unlock()
	im.keyToActions[key] = append(im.keyToActions[key], action)
	im.refresh([]Action{action})
}

// UnbindKey removes all action bindings for a key. Actions it was holding
// are released unless another binding still holds them.
func (im *InputManager) UnbindKey(key glfw.Key) {
	im.mu.Lock()
	defer im.mu.Unlock()
	actions := im.keyToActions[key]
	delete(im.keyToActions, key)
	im.refresh(actions)
}

// BindMouseButton binds a mouse button to an action.
func (im *InputManager) BindMouseButton(button glfw.MouseButton, action Action) {
	if action < 0 || action >= ActionCount {
		return
	}
	im.mu.Lock()
	defer im.mu.Unlock()
	im.mouseButtonToActions[button] = append(im.mouseButtonToActions[button], action)
	im.refresh([]Action{action})
}

// HandleKeyEvent updates state from a key callback. Repeat counts as held.
func (im *InputManager) HandleKeyEvent(key glfw.Key, action glfw.Action) {
	im.mu.Lock()
	defer im.mu.Unlock()

	if action == glfw.Press || action == glfw.Repeat {
		im.keysDown[key] = true
	} else {
		delete(im.keysDown, key)
	}
	im.refresh(im.keyToActions[key])
}

// HandleMouseButtonEvent updates state from a mouse button callback.
func (im *InputManager) HandleMouseButtonEvent(button glfw.MouseButton, action glfw.Action) {
	im.mu.Lock()
	defer im.mu.Unlock()

	if action == glfw.Press {
		im.buttonsDown[button] = true
	} else {
		delete(im.buttonsDown, button)
	}
	im.refresh(im.mouseButtonToActions[button])
}

// refresh re-derives the held state of actions from the bindings still
// down. Edges are recorded as events arrive so a press and release inside
// one frame are both observed. Caller holds mu.
func (im *InputManager) refresh(actions []Action) {
	for _, act := range actions {
		held := im.held(act)
		if held && !im.currentState[act] {
			im.justPressed[act] = true
		}
		if !held && im.currentState[act] {
			im.justReleased[act] = true
		}
		im.currentState[act] = held
	}
}

func (im *InputManager) held(act Action) bool {
	for key := range im.keysDown {
		if slices.Contains(im.keyToActions[key], act) {
			return true
		}
	}
	for button := range im.buttonsDown {
		if slices.Contains(im.mouseButtonToActions[button], act) {
			return true
		}
	}
	return false
}

// HandleScroll accumulates a scroll callback offset.
func (im *InputManager) HandleScroll(yoff float64) {
	im.mu.Lock()
	defer im.mu.Unlock()
	im.scrollY += yoff
}

// ConsumeScroll returns the accumulated vertical scroll and resets it.
func (im *InputManager) ConsumeScroll() float64 {
	im.mu.Lock()
	defer im.mu.Unlock()
	y := im.scrollY
	im.scrollY = 0
	return y
}

// Install registers key, mouse button and scroll callbacks on the window.
func (im *InputManager) Install(window *glfw.Window) {
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleKeyEvent(key, action)
	})
	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleMouseButtonEvent(button, action)
	})
	window.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		im.HandleScroll(yoff)
	})
}

// PostUpdate clears edge flags. Call once at the end of each frame.
func (im *InputManager) PostUpdate() {
	im.mu.Lock()
	defer im.mu.Unlock()
	clear(im.justPressed[:])
	clear(im.justReleased[:])
}

// Reset drops all held state, e.g. when the window loses focus.
func (im *InputManager) Reset() {
	im.mu.Lock()
	defer im.mu.Unlock()
	clear(im.keysDown)
	clear(im.buttonsDown)
	clear(im.currentState[:])
	clear(im.justPressed[:])
	clear(im.justReleased[:])
	im.scrollY = 0
}

// IsActive reports whether the action is held.
func (im *InputManager) IsActive(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.currentState[action]
}

// JustPressed reports whether the action went down this frame.
func (im *InputManager) JustPressed(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.justPressed[action]
}

// JustReleased reports whether the action went up this frame.
func (im *InputManager) JustReleased(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.justReleased[action]
}

// Axis returns -1, 0 or 1 from a pair of opposing actions.
func (im *InputManager) Axis(negative, positive Action) float32 {
	var v float32
	if im.IsActive(positive) {
		v++
	}
	if im.IsActive(negative) {
		v--
	}
	return v
}
