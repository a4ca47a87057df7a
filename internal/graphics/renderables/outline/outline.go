package outline

import (
	"path/filepath"

	"quadcraft/internal/graphics"
	renderer "quadcraft/internal/graphics/renderer"
	"quadcraft/internal/player"
	"quadcraft/internal/profiling"
	"quadcraft/internal/world"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	VertShader = "outline.vert"
	FragShader = "outline.frag"
)

// Unit cube edges with the origin at the cell's minimum corner
var cubeEdges = []float32{
	// Bottom
	0, 0, 0, 1, 0, 0,
	1, 0, 0, 1, 0, 1,
	1, 0, 1, 0, 0, 1,
	0, 0, 1, 0, 0, 0,
	// Top
	0, 1, 0, 1, 1, 0,
	1, 1, 0, 1, 1, 1,
	1, 1, 1, 0, 1, 1,
	0, 1, 1, 0, 1, 0,
	// Verticals
	0, 0, 0, 0, 1, 0,
	1, 0, 0, 1, 1, 0,
	1, 0, 1, 1, 1, 1,
	0, 0, 1, 0, 1, 1,
}

// Outline draws the edges of the cell that Place and Remove would edit
type Outline struct {
	shaderDir string
	chunk     *world.Chunk
	shader    *graphics.Shader
	vao       uint32
	vbo       uint32
}

// NewOutline creates the target outline for cells of c
func NewOutline(shaderDir string, c *world.Chunk) *Outline {
	return &Outline{shaderDir: shaderDir, chunk: c}
}

// Init initializes the outline shader and cube edges
func (o *Outline) Init() error {
	var err error
	o.shader, err = graphics.NewShader(
		filepath.Join(o.shaderDir, VertShader),
		filepath.Join(o.shaderDir, FragShader),
	)
	if err != nil {
		return err
	}

	gl.GenVertexArrays(1, &o.vao)
	gl.BindVertexArray(o.vao)

	gl.GenBuffers(1, &o.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, o.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(cubeEdges)*4, gl.Ptr(cubeEdges), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.BindVertexArray(0)

	return nil
}

// Render outlines the targeted cell when it lies inside the chunk
func (o *Outline) Render(ctx renderer.RenderContext) {
	target := player.Target(ctx.Camera.Position, ctx.Camera.Forward)
	if !world.InBounds(target[0], target[1], target[2]) {
		return
	}
	defer profiling.Track("renderer.renderOutline")()

	// Grow slightly around the centre so lines are not hidden by faces
	const grow = 1.002
	// Interaction works in chunk-local coordinates, as does Target
	origin := mgl32.Vec3{float32(target[0]), float32(target[1]), float32(target[2])}
	model := mgl32.Translate3D(origin.X()+0.5, origin.Y()+0.5, origin.Z()+0.5).
		Mul4(mgl32.Scale3D(grow, grow, grow)).
		Mul4(mgl32.Translate3D(-0.5, -0.5, -0.5))

	color := mgl32.Vec3{0, 0, 0}
	if o.chunk.IsAir(target[0], target[1], target[2]) {
		color = mgl32.Vec3{1, 1, 1}
	}

	o.shader.Use()
	o.shader.SetMatrix4("viewProj", ctx.Camera.ViewProj)
	o.shader.SetMatrix4("model", model)
	o.shader.SetVector3("color", color)

	gl.BindVertexArray(o.vao)
	gl.DrawArrays(gl.LINES, 0, int32(len(cubeEdges)/3))
	gl.BindVertexArray(0)
}

// SetViewport is a no-op
func (o *Outline) SetViewport(width, height int) {}

// Dispose cleans up OpenGL resources
func (o *Outline) Dispose() {
	if o.vbo != 0 {
		gl.DeleteBuffers(1, &o.vbo)
	}
	if o.vao != 0 {
		gl.DeleteVertexArrays(1, &o.vao)
	}
	if o.shader != nil {
		o.shader.Dispose()
	}
}
