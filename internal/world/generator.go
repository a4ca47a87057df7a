package world

import "fmt"

// TerrainSettings holds the thresholds of the layered terrain fill.
type TerrainSettings struct {
	// Surface is the Y level of the grass layer.
	Surface int
	// StoneCeiling is the first Y level above the stone layer.
	StoneCeiling int
}

// DefaultTerrain is the stock fill: stone below y=3, dirt up to y=8, a
// single grass layer at y=8.
var DefaultTerrain = TerrainSettings{
	Surface:      8,
	StoneCeiling: 3,
}

// Validate checks that the thresholds describe a fill that fits the chunk.
func (s TerrainSettings) Validate() error {
	if s.StoneCeiling < 0 {
		return fmt.Errorf("stone ceiling %d is negative", s.StoneCeiling)
	}
	if s.Surface < 0 || s.Surface >= ChunkSizeY {
		return fmt.Errorf("surface %d outside chunk height [0,%d)", s.Surface, ChunkSizeY)
	}
	if s.StoneCeiling > s.Surface {
		return fmt.Errorf("stone ceiling %d above surface %d", s.StoneCeiling, s.Surface)
	}
	return nil
}

// LayeredGenerator produces flat stone/dirt/grass terrain.
type LayeredGenerator struct {
	settings TerrainSettings
}

// NewLayeredGenerator creates a generator for the given thresholds.
func NewLayeredGenerator(settings TerrainSettings) *LayeredGenerator {
	return &LayeredGenerator{settings: settings}
}

// BlockAt returns the block the fill places at height y.
func (g *LayeredGenerator) BlockAt(y int) BlockType {
	switch {
	case y == g.settings.Surface:
		return BlockTypeGrass
	case y < g.settings.StoneCeiling:
		return BlockTypeStone
	case y < g.settings.Surface:
		return BlockTypeDirt
	default:
		return BlockTypeAir
	}
}

// PopulateChunk overwrites every cell and marks the chunk dirty.
func (g *LayeredGenerator) PopulateChunk(c *Chunk) {
	for z := range ChunkSizeZ {
		for y := range ChunkSizeY {
			bt := g.BlockAt(y)
			for x := range ChunkSizeX {
				c.blocks[Index(x, y, z)] = bt
			}
		}
	}
	c.dirty = true
	c.version++
}
