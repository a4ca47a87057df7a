package player

import (
	"math"

	"quadcraft/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

// Interactor edits the chunk at the cell one unit in front of the viewer.
type Interactor struct {
	Chunk    *world.Chunk
	Selected world.BlockType
}

// NewInteractor creates an interactor placing the given block type.
func NewInteractor(c *world.Chunk, selected world.BlockType) *Interactor {
	return &Interactor{Chunk: c, Selected: selected}
}

// Target returns the cell containing position + forward. Each axis is
// floored so points just below zero resolve to cell -1.
func Target(position, forward mgl32.Vec3) [3]int {
	p := position.Add(forward)
	return [3]int{
		int(math.Floor(float64(p.X()))),
		int(math.Floor(float64(p.Y()))),
		int(math.Floor(float64(p.Z()))),
	}
}

// Remove clears the targeted cell and reports whether it changed.
func (in *Interactor) Remove(position, forward mgl32.Vec3) bool {
	t := Target(position, forward)
	return in.Chunk.SetBlock(t[0], t[1], t[2], world.BlockTypeAir)
}

// Place writes the selected block type into the targeted cell and reports
// whether it changed.
func (in *Interactor) Place(position, forward mgl32.Vec3) bool {
	t := Target(position, forward)
	return in.Chunk.SetBlock(t[0], t[1], t[2], in.Selected)
}

// Cycle moves the selection by delta through every block type, wrapping in
// both directions.
func (in *Interactor) Cycle(delta int) world.BlockType {
	n := int(world.BlockTypeCount)
	in.Selected = world.BlockType(((int(in.Selected)+delta)%n + n) % n)
	return in.Selected
}

// SelectNext advances the selection by one.
func (in *Interactor) SelectNext() world.BlockType {
	return in.Cycle(1)
}

// SelectPrev moves the selection back by one.
func (in *Interactor) SelectPrev() world.BlockType {
	return in.Cycle(-1)
}

// HandleScroll cycles the selection from a scroll wheel offset. yoff > 0
// is up.
func (in *Interactor) HandleScroll(yoff float64) world.BlockType {
	if yoff > 0 {
		return in.SelectNext()
	} else if yoff < 0 {
		return in.SelectPrev()
	}
	return in.Selected
}
