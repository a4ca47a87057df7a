package main

import (
	"flag"
	"log"
	"runtime"

	"quadcraft/internal/config"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"
)

func init() {
	// GLFW and GL calls must stay on the main thread
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file (default $"+config.EnvPath+")")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		closer.Fatalln(err)
	}
	config.ApplyDebug(cfg.Debug)

	if err := glfw.Init(); err != nil {
		closer.Fatalln("glfw init:", err)
	}

	window, err := setupWindow(cfg.Window)
	if err != nil {
		glfw.Terminate()
		closer.Fatalln("create window:", err)
	}

	game, err := setupGame(cfg)
	if err != nil {
		window.Destroy()
		glfw.Terminate()
		closer.Fatalln(err)
	}

	gameLoop := NewGameLoop(window, game, cfg)
	setupInputHandlers(window, gameLoop)

	runErr := gameLoop.Run()

	// GL resources are released here on the main thread; closer handlers
	// run on their own goroutine and only stop background work.
	game.Dispose()
	window.Destroy()
	glfw.Terminate()

	if runErr != nil {
		closer.Fatalln(runErr)
	}
	log.Printf("bye")
	closer.Close()
}
