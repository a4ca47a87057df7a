package meshing

import (
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"quadcraft/internal/profiling"
	"quadcraft/internal/registry"
	"quadcraft/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// MaxQuadCount assumes every cell shows all six faces. It is not
	// reachable, but the GPU buffer is allocated once at this size.
	MaxQuadCount   = world.ChunkVolume * int(world.DirectionCount)
	MaxVertexCount = MaxQuadCount * 4
	MaxIndexCount  = MaxQuadCount * 6
)

// ErrCapacityExceeded is returned when a chunk needs more vertices than the
// mesher's buffer can hold. No partial mesh is returned with it.
var ErrCapacityExceeded = errors.New("mesh vertex capacity exceeded")

// Vertex is one quad corner. The layout is 7 packed float32s.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	Layer    float32
}

// PropertiesLookup resolves the draw properties of a block type.
type PropertiesLookup interface {
	Block(bt world.BlockType) registry.BlockProperties
}

// Recorder receives diagnostics for every meshing pass.
type Recorder interface {
	RecordMesh(s Stats)
	RecordFailure()
}

// FacePolicy decides whether a face is hidden by its neighbour.
type FacePolicy int

const (
	// FaceIfEmpty emits a face only when the neighbour is air.
	FaceIfEmpty FacePolicy = iota
	// FaceIfTransparent also emits faces against transparent blocks of a
	// different type.
	FaceIfTransparent
)

func (p FacePolicy) String() string {
	switch p {
	case FaceIfEmpty:
		return "empty"
	case FaceIfTransparent:
		return "transparent"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// ParseFacePolicy resolves a policy name as written in config files.
func ParseFacePolicy(name string) (FacePolicy, error) {
	switch name {
	case "", "empty":
		return FaceIfEmpty, nil
	case "transparent":
		return FaceIfTransparent, nil
	}
	return FaceIfEmpty, fmt.Errorf("unknown face policy %q", name)
}

// Stats describes the output of one meshing pass.
type Stats struct {
	Vertices int
	Quads    int
	Capacity int
	// Usage is Vertices/Capacity, for capacity planning only.
	Usage    float32
	Duration time.Duration
}

// Option configures a Mesher.
type Option func(*Mesher)

// WithLookup replaces the built-in block table.
func WithLookup(l PropertiesLookup) Option {
	return func(m *Mesher) { m.lookup = l }
}

// WithPolicy selects the face exposure policy.
func WithPolicy(p FacePolicy) Option {
	return func(m *Mesher) { m.policy = p }
}

// WithRecorder attaches a diagnostics sink.
func WithRecorder(r Recorder) Option {
	return func(m *Mesher) { m.recorder = r }
}

// WithUsageLog logs buffer usage after every successful pass.
func WithUsageLog(enabled bool) Option {
	return func(m *Mesher) { m.logUsage = enabled }
}

// Mesher turns chunk contents into one textured quad per exposed face.
// The vertex buffer is allocated once and reused by every pass.
type Mesher struct {
	vertices []Vertex
	capacity int
	lookup   PropertiesLookup
	policy   FacePolicy
	recorder Recorder
	logUsage bool
	last     Stats
}

// NewMesher creates a mesher whose buffer holds capacity vertices. A
// capacity <= 0 selects MaxVertexCount.
func NewMesher(capacity int, opts ...Option) *Mesher {
	if capacity <= 0 {
		capacity = MaxVertexCount
	}
	m := &Mesher{
		vertices: make([]Vertex, 0, capacity),
		capacity: capacity,
		lookup:   registry.Default,
		policy:   FaceIfEmpty,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Capacity returns the vertex capacity of the buffer.
func (m *Mesher) Capacity() int {
	return m.capacity
}

// LastStats returns the stats of the most recent successful pass.
func (m *Mesher) LastStats() Stats {
	return m.last
}

// Mesh rebuilds the vertex buffer from the chunk's current contents. The
// returned slice aliases the mesher's buffer and is valid until the next
// call. The chunk's dirty flag is not touched; see Rebuild.
func (m *Mesher) Mesh(c *world.Chunk) ([]Vertex, error) {
	defer profiling.Track("meshing.Mesh")()
	start := time.Now()

	m.vertices = m.vertices[:0]

	for z := range world.ChunkSizeZ {
		for y := range world.ChunkSizeY {
			for x := range world.ChunkSizeX {
				current := c.GetBlock(x, y, z)
				if current == world.BlockTypeAir {
					continue
				}
				props := m.lookup.Block(current)

				for dir := world.DirPosX; dir < world.DirectionCount; dir++ {
					dx, dy, dz := dir.Offset()
					neighbour := c.GetBlock(x+dx, y+dy, z+dz)
					if !m.exposed(current, neighbour) {
						continue
					}

					if len(m.vertices)+4 > m.capacity {
						m.vertices = m.vertices[:0]
						if m.recorder != nil {
							m.recorder.RecordFailure()
						}
						return nil, fmt.Errorf("%w: capacity %d reached at cell (%d,%d,%d)", ErrCapacityExceeded, m.capacity, x, y, z)
					}

					m.addQuad(x, y, z, dir, float32(props.Texture(dir)))
				}
			}
		}
	}

	n := len(m.vertices)
	m.last = Stats{
		Vertices: n,
		Quads:    n / 4,
		Capacity: m.capacity,
		Usage:    float32(n) / float32(m.capacity),
		Duration: time.Since(start),
	}
	if m.recorder != nil {
		m.recorder.RecordMesh(m.last)
	}
	if m.logUsage {
		log.Printf("mesh rebuilt: %d quads, buffer usage %.2f%%", m.last.Quads, m.last.Usage*100)
	}

	return m.vertices, nil
}

// Rebuild meshes the chunk if it is dirty and clears the flag once the pass
// succeeded. It reports false without touching the buffer when the chunk is
// clean. On error the chunk stays dirty.
func (m *Mesher) Rebuild(c *world.Chunk) ([]Vertex, bool, error) {
	if !c.IsDirty() {
		return nil, false, nil
	}
	verts, err := m.Mesh(c)
	if err != nil {
		return nil, false, err
	}
	c.SetClean()
	return verts, true, nil
}

func (m *Mesher) exposed(current, neighbour world.BlockType) bool {
	if neighbour == world.BlockTypeAir {
		return true
	}
	if m.policy == FaceIfTransparent {
		return neighbour != current && m.lookup.Block(neighbour).Transparent
	}
	return false
}

// addQuad appends the four corners of the face of cell (x,y,z) that points
// in dir, counter-clockwise when seen from outside.
func (m *Mesher) addQuad(x, y, z int, dir world.Direction, layer float32) {
	normal := dir.Normal()

	up := mgl32.Vec3{0, 1, 0}
	if float32(math.Abs(float64(normal.Y()))) > 0.9 {
		up = mgl32.Vec3{1, 0, 0}
	}
	tangent := up.Cross(normal).Normalize()
	bitangent := normal.Cross(tangent)

	center := mgl32.Vec3{float32(x) + 0.5, float32(y) + 0.5, float32(z) + 0.5}.Add(normal.Mul(0.5))

	t := tangent.Mul(0.5)
	b := bitangent.Mul(0.5)
	corners := [4]mgl32.Vec3{
		center.Sub(t).Sub(b),
		center.Add(t).Sub(b),
		center.Add(t).Add(b),
		center.Sub(t).Add(b),
	}

	for _, p := range corners {
		m.vertices = append(m.vertices, Vertex{
			Position: p,
			Normal:   normal,
			Layer:    layer,
		})
	}
}
