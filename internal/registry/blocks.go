package registry

import (
	"fmt"

	"quadcraft/internal/world"
)

// BlockProperties defines how a block type is drawn
type BlockProperties struct {
	Transparent bool
	// Textures is indexed by world.Direction.
	Textures [world.DirectionCount]TextureID
}

// Texture returns the texture of the face pointing in dir.
func (p BlockProperties) Texture(dir world.Direction) TextureID {
	return p.Textures[dir]
}

func uniform(id TextureID) [world.DirectionCount]TextureID {
	return [world.DirectionCount]TextureID{id, id, id, id, id, id}
}

func column(top, bottom, side TextureID) [world.DirectionCount]TextureID {
	return [world.DirectionCount]TextureID{
		world.DirPosX: side,
		world.DirPosY: top,
		world.DirPosZ: side,
		world.DirNegX: side,
		world.DirNegY: bottom,
		world.DirNegZ: side,
	}
}

var blocks = [world.BlockTypeCount]BlockProperties{
	world.BlockTypeAir:    {Transparent: true},
	world.BlockTypeDirt:   {Textures: uniform(TextureDirt)},
	world.BlockTypeStone:  {Textures: uniform(TextureStone)},
	world.BlockTypeGrass:  {Textures: column(TextureGrassTop, TextureDirt, TextureGrassSide)},
	world.BlockTypeBrick:  {Textures: uniform(TextureBrick)},
	world.BlockTypePlanks: {Textures: uniform(TexturePlanks)},
	world.BlockTypeLog:    {Textures: column(TextureLogTop, TextureLogTop, TextureLogSide)},
}

func init() {
	if err := checkBlocks(); err != nil {
		panic("registry: " + err.Error())
	}
	if err := checkTextures(); err != nil {
		panic("registry: " + err.Error())
	}
}

// checkBlocks catches block types added to the enumeration without a table
// entry: a missing keyed element compiles as the zero value, which has no
// textures and is opaque.
func checkBlocks() error {
	if !blocks[world.BlockTypeAir].Transparent {
		return fmt.Errorf("air must be transparent")
	}
	for bt := world.BlockTypeAir + 1; bt < world.BlockTypeCount; bt++ {
		for dir, tex := range blocks[bt].Textures {
			if tex == TextureError || tex >= TextureCount {
				return fmt.Errorf("block %v has no texture for face %v", bt, world.Direction(dir))
			}
		}
	}
	return nil
}

// Block returns the properties of a block type. Values outside the
// enumeration are reported as air.
func Block(bt world.BlockType) BlockProperties {
	if !bt.Valid() {
		return blocks[world.BlockTypeAir]
	}
	return blocks[bt]
}

// Table is the built-in block table exposed as a lookup value.
type Table struct{}

// Default is the lookup backed by the built-in block table.
var Default Table

// Block implements the mesher's properties lookup.
func (Table) Block(bt world.BlockType) BlockProperties {
	return Block(bt)
}
