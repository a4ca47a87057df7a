package world

const (
	// Chunk dimensions
	ChunkSizeX = 16
	ChunkSizeY = 16
	ChunkSizeZ = 16

	ChunkVolume = ChunkSizeX * ChunkSizeY * ChunkSizeZ
)

// Chunk represents a 16x16x16 block of the world. Cells are stored in a flat
// array ordered X first, then Y, then Z.
type Chunk struct {
	X, Y, Z int
	blocks  [ChunkVolume]BlockType
	dirty   bool
	version uint64
}

// NewChunk creates an empty chunk at the specified chunk coordinates
func NewChunk(x, y, z int) *Chunk {
	return &Chunk{
		X:     x,
		Y:     y,
		Z:     z,
		dirty: true,
	}
}

// InBounds reports whether local coordinates address a cell of the chunk.
func InBounds(x, y, z int) bool {
	return x >= 0 && x < ChunkSizeX && y >= 0 && y < ChunkSizeY && z >= 0 && z < ChunkSizeZ
}

// Index converts in-bounds local coordinates to the flat cell index.
func Index(x, y, z int) int {
	return x + y*ChunkSizeX + z*ChunkSizeX*ChunkSizeY
}

// Init fills the chunk with layered terrain and marks it dirty.
func (c *Chunk) Init(terrain TerrainSettings) {
	NewLayeredGenerator(terrain).PopulateChunk(c)
}

// GetBlock returns the block type at the specified local coordinates.
// Coordinates outside the chunk read as air.
func (c *Chunk) GetBlock(x, y, z int) BlockType {
	if !InBounds(x, y, z) {
		return BlockTypeAir
	}
	return c.blocks[Index(x, y, z)]
}

// SetBlock sets the block type at the specified local coordinates and
// reports whether the cell changed. Writes outside the chunk, and writes of
// the value already stored, leave the chunk untouched.
func (c *Chunk) SetBlock(x, y, z int, blockType BlockType) bool {
	if !InBounds(x, y, z) {
		return false
	}

	idx := Index(x, y, z)
	if c.blocks[idx] == blockType {
		return false
	}

	c.blocks[idx] = blockType
	c.dirty = true
	c.version++
	return true
}

// IsAir checks if the block at the specified local coordinates is air
func (c *Chunk) IsAir(x, y, z int) bool {
	return c.GetBlock(x, y, z) == BlockTypeAir
}

// IsDirty returns whether the chunk has been modified since its last mesh
func (c *Chunk) IsDirty() bool {
	return c.dirty
}

// SetClean marks the chunk as clean (not modified)
func (c *Chunk) SetClean() {
	c.dirty = false
}

// Version increases with every change to the cells. A snapshot whose
// version still matches describes the current contents.
func (c *Chunk) Version() uint64 {
	return c.version
}

// Cells returns a copy of the cell array in linear index order.
func (c *Chunk) Cells() []BlockType {
	out := make([]BlockType, ChunkVolume)
	copy(out, c.blocks[:])
	return out
}

// Snapshot returns an independent copy of the chunk, dirty flag included.
func (c *Chunk) Snapshot() *Chunk {
	cp := *c
	return &cp
}

// CountSolid returns the number of non-air cells.
func (c *Chunk) CountSolid() int {
	n := 0
	for _, b := range c.blocks {
		if b != BlockTypeAir {
			n++
		}
	}
	return n
}
