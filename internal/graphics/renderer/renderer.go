package renderer

import (
	"fmt"

	"quadcraft/internal/player"
	"quadcraft/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Sky colour behind the chunk
var ClearColor = mgl32.Vec4{0.53, 0.81, 0.92, 1.0}

// Renderer orchestrates rendering via renderable features
type Renderer struct {
	renderables []Renderable
	camera      *player.Camera
}

// NewRenderer configures global GL state and initializes every renderable
// in order. On failure the already initialized ones are disposed.
func NewRenderer(camera *player.Camera, rs ...Renderable) (*Renderer, error) {
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)

	r := &Renderer{camera: camera}
	for i, rb := range rs {
		if err := rb.Init(); err != nil {
			r.Dispose()
			return nil, fmt.Errorf("init renderable %d (%T): %w", i, rb, err)
		}
		r.renderables = append(r.renderables, rb)
	}
	return r, nil
}

// Render clears the frame and draws every feature
func (r *Renderer) Render(dt float64, wireframe bool) {
	defer profiling.Track("renderer.Render")()

	gl.ClearColor(ClearColor[0], ClearColor[1], ClearColor[2], ClearColor[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	ctx := RenderContext{
		Camera:    r.camera,
		DT:        dt,
		Wireframe: wireframe,
	}
	for _, rb := range r.renderables {
		rb.Render(ctx)
	}
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
	r.renderables = nil
}

// UpdateViewport propagates a framebuffer resize
func (r *Renderer) UpdateViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	gl.Viewport(0, 0, int32(width), int32(height))
	r.camera.SetViewport(width, height)
	for _, rb := range r.renderables {
		rb.SetViewport(width, height)
	}
}
