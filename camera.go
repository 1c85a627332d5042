package cursorfx

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const defaultFOV = math.Pi / 3 // 60 degrees vertical

// moveAnim holds active move-to tweens for the camera position.
type moveAnim struct {
	tweens [3]*gween.Tween
	done   [3]bool
}

// Camera is a perspective camera that turns screen positions into picking rays.
// With Yaw and Pitch at zero it looks down -Z with +Y up.
type Camera struct {
	// Position is the eye position in world space.
	Position Vec3
	// Yaw rotates the view around +Y (radians, counter-clockwise seen from above).
	Yaw float64
	// Pitch tilts the view up (positive) or down (radians).
	Pitch float64
	// FOV is the vertical field of view in radians.
	FOV float64
	// Viewport is the screen-space rectangle the camera renders into.
	Viewport Rect

	followTarget *Node
	followOffset Vec3
	followLerp   float64

	move *moveAnim
}

// NewCamera creates a Camera with default values and the given viewport.
func NewCamera(viewport Rect) *Camera {
	return &Camera{
		FOV:      defaultFOV,
		Viewport: viewport,
	}
}

// Forward returns the unit view direction.
func (c *Camera) Forward() Vec3 {
	sy, cy := math.Sincos(c.Yaw)
	sp, cp := math.Sincos(c.Pitch)
	return Vec3{-sy * cp, sp, -cy * cp}
}

// Right returns the unit vector pointing to the right of the view.
func (c *Camera) Right() Vec3 {
	sy, cy := math.Sincos(c.Yaw)
	return Vec3{cy, 0, -sy}
}

// Up returns the unit vector pointing up in the view.
func (c *Camera) Up() Vec3 {
	return c.Right().Cross(c.Forward())
}

// ScreenRay returns the world-space ray through the screen point (sx, sy).
// The viewport center maps to the forward direction.
func (c *Camera) ScreenRay(sx, sy float64) Ray {
	vp := c.Viewport
	if vp.Width == 0 || vp.Height == 0 {
		return Ray{Origin: c.Position, Direction: c.Forward()}
	}
	nx := (sx-vp.X)/vp.Width*2 - 1
	ny := 1 - (sy-vp.Y)/vp.Height*2
	aspect := vp.Width / vp.Height
	tanHalf := math.Tan(c.FOV / 2)

	dir := c.Forward().
		Add(c.Right().Scale(nx * tanHalf * aspect)).
		Add(c.Up().Scale(ny * tanHalf))
	return Ray{Origin: c.Position, Direction: dir.Normalize()}
}

// WorldToScreen projects a world point onto the viewport. ok is false for
// points behind the camera or when the viewport is empty.
func (c *Camera) WorldToScreen(p Vec3) (sx, sy float64, ok bool) {
	vp := c.Viewport
	if vp.Width == 0 || vp.Height == 0 {
		return 0, 0, false
	}
	d := p.Sub(c.Position)
	z := d.Dot(c.Forward())
	if z <= 0 {
		return 0, 0, false
	}
	tanHalf := math.Tan(c.FOV / 2)
	aspect := vp.Width / vp.Height
	nx := d.Dot(c.Right()) / (z * tanHalf * aspect)
	ny := d.Dot(c.Up()) / (z * tanHalf)
	sx = vp.X + (nx+1)/2*vp.Width
	sy = vp.Y + (1-ny)/2*vp.Height
	return sx, sy, true
}

// Follow makes the camera track a target node with the given offset and lerp factor.
// A lerp of 1.0 snaps immediately; lower values give smoother following.
func (c *Camera) Follow(node *Node, offset Vec3, lerp float64) {
	c.followTarget = node
	c.followOffset = offset
	c.followLerp = lerp
}

// Unfollow stops tracking the current target node.
func (c *Camera) Unfollow() {
	c.followTarget = nil
}

// MoveTo animates the camera to the given world position over duration seconds.
func (c *Camera) MoveTo(to Vec3, duration float32, easeFn ease.TweenFunc) {
	c.move = &moveAnim{tweens: [3]*gween.Tween{
		gween.New(float32(c.Position.X), float32(to.X), duration, easeFn),
		gween.New(float32(c.Position.Y), float32(to.Y), duration, easeFn),
		gween.New(float32(c.Position.Z), float32(to.Z), duration, easeFn),
	}}
}

// Moving reports whether a MoveTo animation is in progress.
func (c *Camera) Moving() bool {
	return c.move != nil
}

// update advances follow and move animations.
func (c *Camera) update(dt float32) {
	if c.followTarget != nil && !c.followTarget.IsDisposed() {
		target := c.followTarget.WorldPosition().Add(c.followOffset)
		c.Position = c.Position.Add(target.Sub(c.Position).Scale(c.followLerp))
	}

	if c.move != nil {
		fields := [3]*float64{&c.Position.X, &c.Position.Y, &c.Position.Z}
		allDone := true
		for i, tw := range c.move.tweens {
			if c.move.done[i] {
				continue
			}
			val, done := tw.Update(dt)
			*fields[i] = float64(val)
			c.move.done[i] = done
			if !done {
				allDone = false
			}
		}
		if allDone {
			c.move = nil
		}
	}
}
