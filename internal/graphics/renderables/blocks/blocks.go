package blocks

import (
	"path/filepath"
	"unsafe"

	"quadcraft/internal/graphics"
	renderer "quadcraft/internal/graphics/renderer"
	"quadcraft/internal/meshing"
	"quadcraft/internal/profiling"
	"quadcraft/internal/world"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	VertShader = "chunk.vert"
	FragShader = "chunk.frag"
)

var vertexStride = int32(unsafe.Sizeof(meshing.Vertex{}))

// Blocks draws a single chunk mesh. The vertex and index buffers are
// allocated once at the mesher's worst case and never grow. It implements
// meshing.Uploader.
type Blocks struct {
	shaderDir string
	textures  *graphics.TextureArray

	shader *graphics.Shader
	vao    uint32
	vbo    uint32
	ebo    uint32

	indices int32
	model   mgl32.Mat4
	min     mgl32.Vec3
	max     mgl32.Vec3
}

var _ meshing.Uploader = (*Blocks)(nil)

// NewBlocks creates the chunk renderable. Shaders are read from shaderDir.
func NewBlocks(shaderDir string, textures *graphics.TextureArray, c *world.Chunk) *Blocks {
	origin := mgl32.Vec3{
		float32(c.X * world.ChunkSizeX),
		float32(c.Y * world.ChunkSizeY),
		float32(c.Z * world.ChunkSizeZ),
	}
	return &Blocks{
		shaderDir: shaderDir,
		textures:  textures,
		model:     mgl32.Translate3D(origin.X(), origin.Y(), origin.Z()),
		min:       origin,
		max:       origin.Add(mgl32.Vec3{world.ChunkSizeX, world.ChunkSizeY, world.ChunkSizeZ}),
	}
}

// Init compiles the chunk shader and allocates the buffers
func (b *Blocks) Init() error {
	var err error
	b.shader, err = graphics.NewShader(
		filepath.Join(b.shaderDir, VertShader),
		filepath.Join(b.shaderDir, FragShader),
	)
	if err != nil {
		return err
	}
	b.shader.Use()
	b.shader.SetInt("textures", 0)

	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)

	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, meshing.MaxVertexCount*int(vertexStride), nil, gl.DYNAMIC_DRAW)

	indices := meshing.QuadIndices(meshing.MaxQuadCount)
	gl.GenBuffers(1, &b.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	// location 0: position, 1: normal, 2: texture layer
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, vertexStride, unsafe.Offsetof(meshing.Vertex{}.Position))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, vertexStride, unsafe.Offsetof(meshing.Vertex{}.Normal))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 1, gl.FLOAT, false, vertexStride, unsafe.Offsetof(meshing.Vertex{}.Layer))

	gl.BindVertexArray(0)
	return nil
}

// Upload replaces the buffer contents with a freshly built mesh
func (b *Blocks) Upload(vertices []meshing.Vertex) {
	defer profiling.Track("renderer.blocks.upload")()

	b.indices = int32(meshing.IndexCount(len(vertices)))
	if len(vertices) == 0 {
		return
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(vertices)*int(vertexStride), gl.Ptr(vertices))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// Render draws the chunk if any part of it is in view
func (b *Blocks) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.renderBlocks")()

	if b.indices == 0 || !ctx.Camera.Frustum().IntersectsAABB(b.min, b.max) {
		return
	}

	if ctx.Wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
		defer gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}

	b.shader.Use()
	b.shader.SetMatrix4("viewProj", ctx.Camera.ViewProj)
	b.shader.SetMatrix4("model", b.model)
	b.textures.Bind(0)

	gl.BindVertexArray(b.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, b.indices, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
}

// SetViewport is a no-op; the camera carries the projection
func (b *Blocks) SetViewport(width, height int) {}

// Dispose cleans up OpenGL resources
func (b *Blocks) Dispose() {
	if b.ebo != 0 {
		gl.DeleteBuffers(1, &b.ebo)
	}
	if b.vbo != 0 {
		gl.DeleteBuffers(1, &b.vbo)
	}
	if b.vao != 0 {
		gl.DeleteVertexArrays(1, &b.vao)
	}
	if b.shader != nil {
		b.shader.Dispose()
	}
}
