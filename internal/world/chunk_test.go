package world

import "testing"

func TestSetThenGetRoundTrip(t *testing.T) {
	c := NewChunk(0, 0, 0)
	for z := range ChunkSizeZ {
		for y := range ChunkSizeY {
			for x := range ChunkSizeX {
				bt := BlockType((x + y + z) % int(BlockTypeCount))
				c.SetBlock(x, y, z, bt)
				if got := c.GetBlock(x, y, z); got != bt {
					t.Fatalf("GetBlock(%d,%d,%d) = %v, want %v", x, y, z, got, bt)
				}
			}
		}
	}
}

func TestOutOfBoundsAccess(t *testing.T) {
	c := NewChunk(0, 0, 0)
	c.Init(DefaultTerrain)
	c.SetClean()
	before := c.Cells()

	points := [][3]int{
		{-1, 0, 0}, {0, -1, 0}, {0, 0, -1},
		{ChunkSizeX, 0, 0}, {0, ChunkSizeY, 0}, {0, 0, ChunkSizeZ},
		{-100, 200, 7}, {ChunkSizeX + 5, -3, ChunkSizeZ},
	}
	for _, p := range points {
		if got := c.GetBlock(p[0], p[1], p[2]); got != BlockTypeAir {
			t.Errorf("GetBlock(%v) = %v, want air", p, got)
		}
		if c.SetBlock(p[0], p[1], p[2], BlockTypeBrick) {
			t.Errorf("SetBlock(%v) reported a change", p)
		}
	}

	if c.IsDirty() {
		t.Fatalf("out-of-bounds writes marked chunk dirty")
	}
	after := c.Cells()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("cell %d changed from %v to %v", i, before[i], after[i])
		}
	}
}

func TestSetSameValueKeepsClean(t *testing.T) {
	c := NewChunk(0, 0, 0)
	c.Init(DefaultTerrain)
	c.SetClean()

	if c.SetBlock(4, 8, 4, BlockTypeGrass) {
		t.Fatalf("rewriting grass with grass reported a change")
	}
	if c.IsDirty() {
		t.Fatalf("rewriting the same value marked chunk dirty")
	}

	if !c.SetBlock(4, 8, 4, BlockTypeAir) {
		t.Fatalf("clearing grass reported no change")
	}
	if !c.IsDirty() {
		t.Fatalf("changing a cell did not mark chunk dirty")
	}
}

func TestNewChunkIsEmptyAndDirty(t *testing.T) {
	c := NewChunk(1, 2, 3)
	if c.X != 1 || c.Y != 2 || c.Z != 3 {
		t.Errorf("origin = (%d,%d,%d), want (1,2,3)", c.X, c.Y, c.Z)
	}
	if !c.IsDirty() {
		t.Errorf("new chunk should start dirty")
	}
	if n := c.CountSolid(); n != 0 {
		t.Errorf("new chunk has %d solid cells, want 0", n)
	}
}

func TestIndexOrder(t *testing.T) {
	if Index(0, 0, 0) != 0 {
		t.Fatalf("Index(0,0,0) = %d", Index(0, 0, 0))
	}
	if Index(1, 0, 0) != 1 {
		t.Errorf("x stride = %d, want 1", Index(1, 0, 0))
	}
	if Index(0, 1, 0) != ChunkSizeX {
		t.Errorf("y stride = %d, want %d", Index(0, 1, 0), ChunkSizeX)
	}
	if Index(0, 0, 1) != ChunkSizeX*ChunkSizeY {
		t.Errorf("z stride = %d, want %d", Index(0, 0, 1), ChunkSizeX*ChunkSizeY)
	}
	if last := Index(ChunkSizeX-1, ChunkSizeY-1, ChunkSizeZ-1); last != ChunkVolume-1 {
		t.Errorf("last index = %d, want %d", last, ChunkVolume-1)
	}

	c := NewChunk(0, 0, 0)
	c.SetBlock(3, 5, 7, BlockTypeLog)
	cells := c.Cells()
	if cells[3+5*ChunkSizeX+7*ChunkSizeX*ChunkSizeY] != BlockTypeLog {
		t.Fatalf("Cells() does not follow x + y*SizeX + z*SizeX*SizeY")
	}
}

func TestSnapshotIsIndependent(t *testing.T) {
	c := NewChunk(0, 0, 0)
	c.Init(DefaultTerrain)

	snap := c.Snapshot()
	c.SetBlock(0, 15, 0, BlockTypeBrick)

	if got := snap.GetBlock(0, 15, 0); got != BlockTypeAir {
		t.Fatalf("snapshot observed later write: %v", got)
	}
	if !snap.IsDirty() {
		t.Fatalf("snapshot should carry the dirty flag")
	}
}

func TestCellsReturnsCopy(t *testing.T) {
	c := NewChunk(0, 0, 0)
	cells := c.Cells()
	cells[0] = BlockTypeStone
	if c.GetBlock(0, 0, 0) != BlockTypeAir {
		t.Fatalf("mutating Cells() result changed the chunk")
	}
}

func TestVersionTracksChanges(t *testing.T) {
	c := NewChunk(0, 0, 0)
	v0 := c.Version()

	c.SetBlock(1, 1, 1, BlockTypeAir)
	if c.Version() != v0 {
		t.Fatalf("no-op write bumped version")
	}

	c.SetBlock(1, 1, 1, BlockTypeStone)
	v1 := c.Version()
	if v1 == v0 {
		t.Fatalf("write did not bump version")
	}

	snap := c.Snapshot()
	if snap.Version() != v1 {
		t.Fatalf("snapshot version = %d, want %d", snap.Version(), v1)
	}

	c.Init(DefaultTerrain)
	if c.Version() == v1 {
		t.Fatalf("Init did not bump version")
	}
}
