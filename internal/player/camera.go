package player

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Pitch is kept just short of straight up/down to avoid gimbal lock.
const (
	MaxPitch = 89.999
	MinPitch = -89.999
)

// Camera is a free-flying first-person camera.
type Camera struct {
	Position mgl32.Vec3
	Forward  mgl32.Vec3
	Right    mgl32.Vec3
	Up       mgl32.Vec3

	// Degrees. Yaw -90 looks down -Z.
	Yaw   float32
	Pitch float32

	FOV    float32
	Aspect float32
	Near   float32
	Far    float32

	View     mgl32.Mat4
	Proj     mgl32.Mat4
	ViewProj mgl32.Mat4

	// Mouse look state
	FirstMouse bool
	LastMouseX float64
	LastMouseY float64
}

// NewCamera creates a camera at the origin looking down -Z.
func NewCamera(fov, aspect float32) *Camera {
	c := &Camera{
		Yaw:        -90,
		FOV:        fov,
		Aspect:     aspect,
		Near:       0.1,
		Far:        1000,
		FirstMouse: true,
	}
	c.Update()
	return c
}

// Update clamps the pitch and recomputes the basis vectors and matrices.
func (c *Camera) Update() {
	c.Pitch = mgl32.Clamp(c.Pitch, MinPitch, MaxPitch)

	yaw := float64(mgl32.DegToRad(c.Yaw))
	pitch := float64(mgl32.DegToRad(c.Pitch))
	fx := float32(math.Cos(yaw) * math.Cos(pitch))
	fy := float32(math.Sin(pitch))
	fz := float32(math.Sin(yaw) * math.Cos(pitch))

	c.Forward = mgl32.Vec3{fx, fy, fz}.Normalize()
	c.Right = c.Forward.Cross(mgl32.Vec3{0, 1, 0}).Normalize()
	c.Up = c.Right.Cross(c.Forward).Normalize()

	c.Proj = mgl32.Perspective(mgl32.DegToRad(c.FOV), c.Aspect, c.Near, c.Far)
	c.View = mgl32.LookAtV(c.Position, c.Position.Add(c.Forward), c.Up)
	c.ViewProj = c.Proj.Mul4(c.View)
}

// HandleMouseMovement turns cursor motion into yaw and pitch. The first
// sample after FirstMouse is set only records the cursor position.
func (c *Camera) HandleMouseMovement(xpos, ypos float64, sensitivity float32) {
	if c.FirstMouse {
		c.LastMouseX = xpos
		c.LastMouseY = ypos
		c.FirstMouse = false
		return
	}

	dx := float32(xpos - c.LastMouseX)
	dy := float32(ypos - c.LastMouseY)
	c.LastMouseX = xpos
	c.LastMouseY = ypos

	c.Look(dx, dy, sensitivity)
}

// Look applies a cursor delta. Moving the cursor up (negative dy) pitches up.
func (c *Camera) Look(dx, dy, sensitivity float32) {
	c.Yaw += dx * sensitivity
	c.Pitch = mgl32.Clamp(c.Pitch-dy*sensitivity, MinPitch, MaxPitch)
}

// Move translates the camera along the normalized wish direction. A zero
// wish leaves the camera in place.
func (c *Camera) Move(wish mgl32.Vec3, dt, speed float32) {
	if wish.Len() == 0 {
		return
	}
	c.Position = c.Position.Add(wish.Normalize().Mul(dt * speed))
}

// SetViewport updates the aspect ratio for a resized framebuffer.
func (c *Camera) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.Aspect = float32(width) / float32(height)
}
