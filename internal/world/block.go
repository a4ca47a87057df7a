package world

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

type BlockType uint8

const (
	BlockTypeAir BlockType = iota
	BlockTypeDirt
	BlockTypeStone
	BlockTypeGrass
	BlockTypeBrick
	BlockTypePlanks
	BlockTypeLog

	BlockTypeCount // keep last
)

var blockNames = [BlockTypeCount]string{
	BlockTypeAir:    "air",
	BlockTypeDirt:   "dirt",
	BlockTypeStone:  "stone",
	BlockTypeGrass:  "grass",
	BlockTypeBrick:  "brick",
	BlockTypePlanks: "planks",
	BlockTypeLog:    "log",
}

// String returns the lowercase block name used in config files and logs.
func (b BlockType) String() string {
	if b < BlockTypeCount {
		return blockNames[b]
	}
	return fmt.Sprintf("block(%d)", uint8(b))
}

// Valid reports whether b is one of the enumerated block types.
func (b BlockType) Valid() bool {
	return b < BlockTypeCount
}

// ParseBlockType resolves a block name such as "stone".
func ParseBlockType(name string) (BlockType, error) {
	for i, n := range blockNames {
		if n == name {
			return BlockType(i), nil
		}
	}
	return BlockTypeAir, fmt.Errorf("unknown block type %q", name)
}

// Direction identifies one of the six axis-aligned faces of a cell.
type Direction int

const (
	DirPosX Direction = iota
	DirPosY
	DirPosZ
	DirNegX
	DirNegY
	DirNegZ

	DirectionCount
)

var (
	directionOffsets = [DirectionCount][3]int{
		DirPosX: {1, 0, 0},
		DirPosY: {0, 1, 0},
		DirPosZ: {0, 0, 1},
		DirNegX: {-1, 0, 0},
		DirNegY: {0, -1, 0},
		DirNegZ: {0, 0, -1},
	}

	// Normals are looked up, never computed, so identical faces carry
	// bit-identical normals.
	directionNormals = [DirectionCount]mgl32.Vec3{
		DirPosX: {1, 0, 0},
		DirPosY: {0, 1, 0},
		DirPosZ: {0, 0, 1},
		DirNegX: {-1, 0, 0},
		DirNegY: {0, -1, 0},
		DirNegZ: {0, 0, -1},
	}

	directionNames = [DirectionCount]string{"+x", "+y", "+z", "-x", "-y", "-z"}
)

// Offset returns the unit step towards the neighbouring cell.
func (d Direction) Offset() (dx, dy, dz int) {
	o := directionOffsets[d]
	return o[0], o[1], o[2]
}

// Normal returns the outward unit normal of the face.
func (d Direction) Normal() mgl32.Vec3 {
	return directionNormals[d]
}

func (d Direction) String() string {
	if d >= 0 && d < DirectionCount {
		return directionNames[d]
	}
	return fmt.Sprintf("dir(%d)", int(d))
}
