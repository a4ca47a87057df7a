package renderer

import (
	"quadcraft/internal/player"
)

// RenderContext provides shared per-frame state for all renderables
type RenderContext struct {
	Camera    *player.Camera
	DT        float64
	Wireframe bool
}

// Renderable interface defines the lifecycle for renderable features
type Renderable interface {
	Init() error
	Render(ctx RenderContext)
	Dispose()
	SetViewport(width, height int)
}
