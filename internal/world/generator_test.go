package world

import (
	"crypto/sha256"
	"testing"
)

func TestInitLayers(t *testing.T) {
	c := NewChunk(0, 0, 0)
	c.SetClean()
	c.Init(DefaultTerrain)

	if !c.IsDirty() {
		t.Fatalf("Init should mark the chunk dirty")
	}

	for z := range ChunkSizeZ {
		for y := range ChunkSizeY {
			var want BlockType
			switch {
			case y > 8:
				want = BlockTypeAir
			case y == 8:
				want = BlockTypeGrass
			case y >= 3:
				want = BlockTypeDirt
			default:
				want = BlockTypeStone
			}
			for x := range ChunkSizeX {
				if got := c.GetBlock(x, y, z); got != want {
					t.Fatalf("GetBlock(%d,%d,%d) = %v, want %v", x, y, z, got, want)
				}
			}
		}
	}
}

func TestInitCustomThresholds(t *testing.T) {
	g := NewLayeredGenerator(TerrainSettings{Surface: 4, StoneCeiling: 1})
	cases := map[int]BlockType{
		0:  BlockTypeStone,
		1:  BlockTypeDirt,
		3:  BlockTypeDirt,
		4:  BlockTypeGrass,
		5:  BlockTypeAir,
		15: BlockTypeAir,
	}
	for y, want := range cases {
		if got := g.BlockAt(y); got != want {
			t.Errorf("BlockAt(%d) = %v, want %v", y, got, want)
		}
	}
}

func TestInitOverwritesPreviousContents(t *testing.T) {
	c := NewChunk(0, 0, 0)
	c.SetBlock(0, 15, 0, BlockTypeBrick)
	c.Init(DefaultTerrain)
	if got := c.GetBlock(0, 15, 0); got != BlockTypeAir {
		t.Fatalf("Init left %v above the surface", got)
	}
}

func TestTerrainSettingsValidate(t *testing.T) {
	if err := DefaultTerrain.Validate(); err != nil {
		t.Fatalf("default terrain invalid: %v", err)
	}

	bad := []TerrainSettings{
		{Surface: 8, StoneCeiling: -1},
		{Surface: ChunkSizeY, StoneCeiling: 3},
		{Surface: -1, StoneCeiling: 0},
		{Surface: 2, StoneCeiling: 3},
	}
	for _, s := range bad {
		if err := s.Validate(); err == nil {
			t.Errorf("Validate(%+v) = nil, want error", s)
		}
	}
}

// hashChunkBlocks computes a SHA-256 hash of all blocks in a chunk
func hashChunkBlocks(c *Chunk) [32]byte {
	h := sha256.New()
	for _, b := range c.Cells() {
		h.Write([]byte{byte(b)})
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

func TestInitDeterministic(t *testing.T) {
	a := NewChunk(0, 0, 0)
	b := NewChunk(0, 0, 0)
	a.Init(DefaultTerrain)
	b.Init(DefaultTerrain)

	if hashChunkBlocks(a) != hashChunkBlocks(b) {
		t.Fatalf("two Init calls produced different grids")
	}

	// 16x16 grass + 5 layers of dirt + 3 layers of stone.
	if n := a.CountSolid(); n != 16*16*9 {
		t.Fatalf("CountSolid = %d, want %d", n, 16*16*9)
	}
}
