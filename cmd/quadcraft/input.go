package main

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

func setupInputHandlers(window *glfw.Window, gameLoop *GameLoop) {
	gameLoop.inputManager.Install(window)

	// Mouse look only while the cursor is captured
	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		if gameLoop.cursorCaptured {
			gameLoop.game.Camera.HandleMouseMovement(xpos, ypos, gameLoop.cfg.Camera.Sensitivity)
		}
	})

	window.SetFramebufferSizeCallback(func(w *glfw.Window, fbWidth, fbHeight int) {
		gameLoop.game.Renderer.UpdateViewport(fbWidth, fbHeight)
	})

	// Drop held keys when focus is lost so movement does not stick
	window.SetFocusCallback(func(w *glfw.Window, focused bool) {
		if !focused {
			gameLoop.inputManager.Reset()
		}
	})

	window.SetRefreshCallback(func(w *glfw.Window) {
		gameLoop.RefreshRender()
	})

	fbWidth, fbHeight := window.GetFramebufferSize()
	gameLoop.game.Renderer.UpdateViewport(fbWidth, fbHeight)
}
