package main

import (
	"fmt"
	"log"
	"time"

	"quadcraft/internal/config"
	"quadcraft/internal/input"
	"quadcraft/internal/profiling"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// GameLoop manages the main loop state
type GameLoop struct {
	window       *glfw.Window
	game         *GameComponents
	cfg          *config.Config
	inputManager *input.InputManager

	cursorCaptured bool
	fpsLimiter     *profiling.FPSLimiter

	// Timing
	frames           int
	lastFPSCheckTime time.Time
	lastTime         time.Time
	lastDT           float64
}

// NewGameLoop creates a new game loop with all components
func NewGameLoop(window *glfw.Window, game *GameComponents, cfg *config.Config) *GameLoop {
	return &GameLoop{
		window:           window,
		game:             game,
		cfg:              cfg,
		inputManager:     input.NewInputManager(),
		cursorCaptured:   true,
		fpsLimiter:       newFPSLimiter(cfg.Window),
		lastFPSCheckTime: time.Now(),
		lastTime:         time.Now(),
	}
}

// Run drives frames until the window closes. A meshing failure ends the
// loop with an error.
func (gl *GameLoop) Run() error {
	for !gl.window.ShouldClose() {
		if err := gl.tick(); err != nil {
			return err
		}
	}
	return nil
}

func (gl *GameLoop) tick() error {
	profiling.ResetFrame()
	now := time.Now()
	dt := now.Sub(gl.lastTime).Seconds()
	gl.lastTime = now
	gl.lastDT = dt

	func() { defer profiling.Track("glfw.PollEvents")(); glfw.PollEvents() }()

	func() { defer profiling.Track("player.Update")(); gl.handleInputActions(float32(dt)) }()
	gl.game.Camera.Update()

	var err error
	func() {
		defer profiling.Track("meshing.Update")()
		_, err = gl.game.Scheduler.Update()
	}()
	if err != nil {
		return fmt.Errorf("rebuild chunk mesh: %w", err)
	}

	gl.game.Renderer.Render(dt, config.GetWireframe())

	func() { defer profiling.Track("glfw.SwapBuffers")(); gl.window.SwapBuffers() }()

	// Clear edge flags at end of frame
	gl.inputManager.PostUpdate()

	gl.updateFPS()

	gl.fpsLimiter.Wait()
	return nil
}

// newFPSLimiter disables limiting under vsync, which already paces frames
func newFPSLimiter(wc config.WindowConfig) *profiling.FPSLimiter {
	if wc.VSync {
		return profiling.NewFPSLimiter(0)
	}
	return profiling.NewFPSLimiter(wc.FPSLimit)
}

func (gl *GameLoop) handleInputActions(dt float32) {
	im := gl.inputManager

	if im.JustPressed(input.ActionReleaseCursor) && gl.cursorCaptured {
		gl.setCursorCaptured(false)
	}
	if im.JustPressed(input.ActionToggleWireframe) {
		log.Printf("wireframe: %v", config.ToggleWireframe())
	}

	if !gl.cursorCaptured {
		// A click recaptures without editing
		if im.JustPressed(input.ActionBreak) || im.JustPressed(input.ActionPlace) {
			gl.setCursorCaptured(true)
		}
		im.ConsumeScroll()
		return
	}

	cam := gl.game.Camera
	wish := cam.Forward.Mul(im.Axis(input.ActionMoveBackward, input.ActionMoveForward)).
		Add(cam.Right.Mul(im.Axis(input.ActionMoveLeft, input.ActionMoveRight)))
	cam.Move(wish, dt, gl.cfg.Camera.MoveSpeed)

	in := gl.game.Interactor
	if im.JustPressed(input.ActionBreak) {
		in.Remove(cam.Position, cam.Forward)
	}
	if im.JustPressed(input.ActionPlace) {
		in.Place(cam.Position, cam.Forward)
	}
	if y := im.ConsumeScroll(); y != 0 {
		log.Printf("selected block: %v", in.HandleScroll(y))
	}
}

func (gl *GameLoop) setCursorCaptured(captured bool) {
	gl.cursorCaptured = captured
	if captured {
		gl.window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
		gl.game.Camera.FirstMouse = true
	} else {
		gl.window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	}
}

// RefreshRender redraws during a window resize, when the loop is blocked
func (gl *GameLoop) RefreshRender() {
	gl.game.Camera.Update()
	gl.game.Renderer.Render(gl.lastDT, config.GetWireframe())
	gl.window.SwapBuffers()
}

func (gl *GameLoop) updateFPS() {
	gl.frames++
	if time.Since(gl.lastFPSCheckTime) < time.Second {
		return
	}
	pos := gl.game.Camera.Position
	log.Printf("fps: %d, pos %s, glfw %s, frame %s", gl.frames, formatVec(pos),
		profiling.SumWithPrefix("glfw."), profiling.TopN(3))
	gl.frames = 0
	gl.lastFPSCheckTime = time.Now()
}

func formatVec(v mgl32.Vec3) string {
	return fmt.Sprintf("(%.1f, %.1f, %.1f)", v.X(), v.Y(), v.Z())
}
