package player

import (
	"math"
	"testing"

	"quadcraft/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

func TestTargetFloors(t *testing.T) {
	cases := []struct {
		pos, fwd mgl32.Vec3
		want     [3]int
	}{
		{mgl32.Vec3{0, 0, 3}, mgl32.Vec3{0, 0, -1}, [3]int{0, 0, 2}},
		{mgl32.Vec3{4.5, 9.2, 4.5}, mgl32.Vec3{0, -1, 0}, [3]int{4, 8, 4}},
		{mgl32.Vec3{0.2, 0.5, 0.5}, mgl32.Vec3{-1, 0, 0}, [3]int{-1, 0, 0}},
		{mgl32.Vec3{-0.5, -0.5, -0.5}, mgl32.Vec3{0, 0, 0}, [3]int{-1, -1, -1}},
	}
	for _, tc := range cases {
		if got := Target(tc.pos, tc.fwd); got != tc.want {
			t.Errorf("Target(%v, %v) = %v, want %v", tc.pos, tc.fwd, got, tc.want)
		}
	}
}

func TestPlaceThenRemove(t *testing.T) {
	c := world.NewChunk(0, 0, 0)
	c.Init(world.DefaultTerrain)
	before := c.Cells()

	in := NewInteractor(c, world.BlockTypeBrick)
	pos := mgl32.Vec3{5.5, 10.5, 5.5}
	fwd := mgl32.Vec3{0, 0, 1}

	if !in.Place(pos, fwd) {
		t.Fatalf("Place reported no change")
	}
	if got := c.GetBlock(5, 10, 6); got != world.BlockTypeBrick {
		t.Fatalf("placed cell = %v, want brick", got)
	}
	if !in.Remove(pos, fwd) {
		t.Fatalf("Remove reported no change")
	}

	after := c.Cells()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("cell %d changed from %v to %v", i, before[i], after[i])
		}
	}
}

func TestPlaceOutsideChunkIsNoop(t *testing.T) {
	c := world.NewChunk(0, 0, 0)
	c.SetClean()
	in := NewInteractor(c, world.BlockTypeStone)

	if in.Place(mgl32.Vec3{-3, 2, 2}, mgl32.Vec3{1, 0, 0}) {
		t.Fatalf("Place outside the chunk reported a change")
	}
	if c.IsDirty() {
		t.Fatalf("Place outside the chunk marked it dirty")
	}
}

func TestCycleWraps(t *testing.T) {
	in := NewInteractor(world.NewChunk(0, 0, 0), world.BlockTypeAir)

	if got := in.SelectPrev(); got != world.BlockTypeCount-1 {
		t.Fatalf("SelectPrev from air = %v, want %v", got, world.BlockTypeCount-1)
	}
	if got := in.SelectNext(); got != world.BlockTypeAir {
		t.Fatalf("SelectNext from last = %v, want air", got)
	}

	in.Selected = world.BlockTypeStone
	if got := in.Cycle(-3 * int(world.BlockTypeCount)); got != world.BlockTypeStone {
		t.Fatalf("Cycle by a negative multiple = %v, want stone", got)
	}
	if got := in.Cycle(-int(world.BlockTypeStone) - 1); !got.Valid() {
		t.Fatalf("Cycle produced invalid type %d", got)
	}

	in.Selected = world.BlockTypeDirt
	if got := in.HandleScroll(-1); got != world.BlockTypeAir {
		t.Fatalf("scroll down from dirt = %v, want air", got)
	}
	if got := in.HandleScroll(0); got != world.BlockTypeAir {
		t.Fatalf("zero scroll changed selection to %v", got)
	}
}

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-5
}

func TestCameraDefaults(t *testing.T) {
	c := NewCamera(90, 16.0/9.0)
	if !approx(c.Forward.X(), 0) || !approx(c.Forward.Y(), 0) || !approx(c.Forward.Z(), -1) {
		t.Fatalf("default forward = %v, want (0,0,-1)", c.Forward)
	}
	if !approx(c.Right.X(), 1) {
		t.Fatalf("default right = %v, want (1,0,0)", c.Right)
	}
	if !approx(c.Up.Y(), 1) {
		t.Fatalf("default up = %v, want (0,1,0)", c.Up)
	}
}

func TestCameraPitchClamp(t *testing.T) {
	c := NewCamera(90, 1)
	c.Pitch = 120
	c.Update()
	if c.Pitch != MaxPitch {
		t.Fatalf("pitch = %v, want %v", c.Pitch, MaxPitch)
	}
	if l := c.Forward.Len(); !approx(l, 1) {
		t.Fatalf("forward length = %v", l)
	}

	c.Look(0, 1e6, 0.25)
	if c.Pitch != MinPitch {
		t.Fatalf("pitch after look = %v, want %v", c.Pitch, MinPitch)
	}
}

func TestCameraMouseLook(t *testing.T) {
	c := NewCamera(90, 1)
	c.HandleMouseMovement(100, 100, 0.25)
	if c.Yaw != -90 || c.Pitch != 0 {
		t.Fatalf("first sample moved camera: yaw %v pitch %v", c.Yaw, c.Pitch)
	}
	c.HandleMouseMovement(140, 60, 0.25)
	if c.Yaw != -80 || c.Pitch != 10 {
		t.Fatalf("yaw %v pitch %v, want -80 / 10", c.Yaw, c.Pitch)
	}
}

func TestCameraMove(t *testing.T) {
	c := NewCamera(90, 1)
	c.Move(mgl32.Vec3{}, 1, 5)
	if c.Position != (mgl32.Vec3{}) {
		t.Fatalf("zero wish moved camera to %v", c.Position)
	}
	c.Move(mgl32.Vec3{0, 0, -3}, 0.5, 4)
	if !approx(c.Position.Z(), -2) {
		t.Fatalf("position = %v, want z=-2", c.Position)
	}
}

func TestCameraViewport(t *testing.T) {
	c := NewCamera(90, 1)
	c.SetViewport(1600, 900)
	if !approx(c.Aspect, 16.0/9.0) {
		t.Fatalf("aspect = %v", c.Aspect)
	}
	c.SetViewport(0, 900)
	if !approx(c.Aspect, 16.0/9.0) {
		t.Fatalf("zero width changed aspect to %v", c.Aspect)
	}
}

func TestFrustumCulling(t *testing.T) {
	c := NewCamera(90, 1)
	c.Position = mgl32.Vec3{8, 8, 30}
	c.Update()
	f := c.Frustum()

	chunkMin, chunkMax := mgl32.Vec3{0, 0, 0}, mgl32.Vec3{16, 16, 16}
	if !f.IntersectsAABB(chunkMin, chunkMax) {
		t.Fatalf("chunk in front of camera culled")
	}

	// Turn around.
	c.Yaw = 90
	c.Update()
	if c.Frustum().IntersectsAABB(chunkMin, chunkMax) {
		t.Fatalf("chunk behind camera not culled")
	}

	// Camera inside the box always intersects.
	c.Position = mgl32.Vec3{8, 8, 8}
	c.Update()
	if !c.Frustum().IntersectsAABB(chunkMin, chunkMax) {
		t.Fatalf("enclosing box culled")
	}

	// Beyond the far plane.
	c.Position = mgl32.Vec3{8, 8, 2000}
	c.Yaw = -90
	c.Update()
	if c.Frustum().IntersectsAABB(chunkMin, chunkMax) {
		t.Fatalf("box past far plane not culled")
	}
}
