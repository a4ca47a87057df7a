package crosshair

import (
	"path/filepath"

	"quadcraft/internal/graphics"
	renderer "quadcraft/internal/graphics/renderer"
	"quadcraft/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
)

const (
	VertShader = "crosshair.vert"
	FragShader = "crosshair.frag"
)

// Two lines in clip space; x is divided by the aspect ratio in the shader.
var Vertices = []float32{
	-0.02, 0.0,
	0.02, 0.0,
	0.0, -0.02,
	0.0, 0.02,
}

// Crosshair marks the screen centre, the direction Place and Remove target
type Crosshair struct {
	shaderDir string
	shader    *graphics.Shader
	vao       uint32
	vbo       uint32
}

// NewCrosshair creates a new crosshair renderable
func NewCrosshair(shaderDir string) *Crosshair {
	return &Crosshair{shaderDir: shaderDir}
}

// Init compiles the shader and uploads the line vertices
func (c *Crosshair) Init() error {
	var err error
	c.shader, err = graphics.NewShader(
		filepath.Join(c.shaderDir, VertShader),
		filepath.Join(c.shaderDir, FragShader),
	)
	if err != nil {
		return err
	}

	gl.GenVertexArrays(1, &c.vao)
	gl.BindVertexArray(c.vao)

	gl.GenBuffers(1, &c.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, c.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(Vertices)*4, gl.Ptr(Vertices), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 2*4, 0)
	gl.BindVertexArray(0)

	return nil
}

// Render draws the crosshair on top of the scene
func (c *Crosshair) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.renderCrosshair")()

	gl.Disable(gl.DEPTH_TEST)
	defer gl.Enable(gl.DEPTH_TEST)

	c.shader.Use()
	c.shader.SetFloat("aspectRatio", ctx.Camera.Aspect)

	gl.BindVertexArray(c.vao)
	gl.DrawArrays(gl.LINES, 0, 4)
	gl.BindVertexArray(0)
}

// SetViewport is a no-op; the aspect ratio is read from the camera
func (c *Crosshair) SetViewport(width, height int) {}

// Dispose cleans up OpenGL resources
func (c *Crosshair) Dispose() {
	if c.vbo != 0 {
		gl.DeleteBuffers(1, &c.vbo)
	}
	if c.vao != 0 {
		gl.DeleteVertexArrays(1, &c.vao)
	}
	if c.shader != nil {
		c.shader.Dispose()
	}
}
