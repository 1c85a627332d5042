package cursorfx

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestCameraDefaults(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	assertNear(t, "FOV", cam.FOV, math.Pi/3)
	if cam.Viewport.Width != 800 || cam.Viewport.Height != 600 {
		t.Errorf("Viewport = %v, want 800x600", cam.Viewport)
	}
	assertVec(t, "Forward", cam.Forward(), Vec3{Z: -1})
	assertVec(t, "Right", cam.Right(), Vec3{X: 1})
	assertVec(t, "Up", cam.Up(), Vec3{Y: 1})
}

func TestCameraYaw90(t *testing.T) {
	cam := NewCamera(Rect{Width: 100, Height: 100})
	cam.Yaw = math.Pi / 2 // turn left
	assertVec(t, "Forward", cam.Forward(), Vec3{X: -1})
	assertVec(t, "Right", cam.Right(), Vec3{Z: -1})
}

func TestCameraPitch(t *testing.T) {
	cam := NewCamera(Rect{Width: 100, Height: 100})
	cam.Pitch = math.Pi / 2
	assertVec(t, "Forward", cam.Forward(), Vec3{Y: 1})
}

func TestScreenRayCenter(t *testing.T) {
	cam := NewCamera(Rect{X: 10, Y: 20, Width: 800, Height: 600})
	cam.Position = Vec3{1, 2, 3}
	r := cam.ScreenRay(410, 320)
	assertVec(t, "origin", r.Origin, Vec3{1, 2, 3})
	assertVec(t, "direction", r.Direction, Vec3{Z: -1})
}

func TestScreenRayEdges(t *testing.T) {
	cam := NewCamera(Rect{Width: 200, Height: 100})
	tanHalf := math.Tan(cam.FOV / 2)

	// Top edge center: straight up by half the vertical FOV.
	top := cam.ScreenRay(100, 0)
	assertNear(t, "top slope", top.Direction.Y/-top.Direction.Z, tanHalf)
	assertNear(t, "top x", top.Direction.X, 0)

	// Right edge center: aspect-scaled horizontal spread.
	right := cam.ScreenRay(200, 50)
	assertNear(t, "right slope", right.Direction.X/-right.Direction.Z, 2*tanHalf)

	assertNear(t, "unit length", right.Direction.Len(), 1)
}

func TestScreenRayZeroViewport(t *testing.T) {
	cam := NewCamera(Rect{})
	cam.Yaw = math.Pi
	r := cam.ScreenRay(123, 456)
	assertVec(t, "direction", r.Direction, cam.Forward())
}

func TestCameraFollow(t *testing.T) {
	cam := NewCamera(Rect{Width: 100, Height: 100})
	target := NewGroup("t")
	target.Position = Vec3{10, 0, 0}
	cam.Follow(target, Vec3{Z: 5}, 1)
	cam.update(1.0 / 60)
	assertVec(t, "Position", cam.Position, Vec3{10, 0, 5})

	cam.Unfollow()
	target.Position = Vec3{}
	cam.update(1.0 / 60)
	assertVec(t, "after Unfollow", cam.Position, Vec3{10, 0, 5})
}

func TestCameraFollowLerp(t *testing.T) {
	cam := NewCamera(Rect{Width: 100, Height: 100})
	target := NewGroup("t")
	target.Position = Vec3{X: 10}
	cam.Follow(target, Vec3{}, 0.5)
	cam.update(1.0 / 60)
	assertNear(t, "X", cam.Position.X, 5)
}

func TestCameraFollowDisposedTarget(t *testing.T) {
	cam := NewCamera(Rect{Width: 100, Height: 100})
	target := NewGroup("t")
	target.Position = Vec3{X: 10}
	cam.Follow(target, Vec3{}, 1)
	target.Dispose()
	cam.update(1.0 / 60)
	assertNear(t, "X", cam.Position.X, 0)
}

func TestCameraMoveTo(t *testing.T) {
	cam := NewCamera(Rect{Width: 100, Height: 100})
	cam.MoveTo(Vec3{10, -4, 2}, 1.0, ease.Linear)
	if !cam.Moving() {
		t.Fatal("Moving() = false right after MoveTo")
	}

	cam.update(0.5)
	if math.Abs(cam.Position.X-5) > 0.01 || math.Abs(cam.Position.Y+2) > 0.01 {
		t.Errorf("halfway Position = %+v, want about (5, -2, 1)", cam.Position)
	}

	cam.update(0.6)
	if cam.Moving() {
		t.Error("Moving() = true after the tween finished")
	}
	if math.Abs(cam.Position.X-10) > 1e-4 || math.Abs(cam.Position.Z-2) > 1e-4 {
		t.Errorf("final Position = %+v, want (10, -4, 2)", cam.Position)
	}
}

func TestSceneUpdateAdvancesCameras(t *testing.T) {
	s := NewScene()
	cam := s.NewCamera(Rect{Width: 100, Height: 100})
	cam.MoveTo(Vec3{X: 4}, 0.1, ease.Linear)
	s.Update(0.2)
	if cam.Moving() {
		t.Error("scene update did not advance the camera tween")
	}
	if math.Abs(cam.Position.X-4) > 1e-4 {
		t.Errorf("Position.X = %v, want 4", cam.Position.X)
	}
}

func TestWorldToScreenInvertsScreenRay(t *testing.T) {
	cam := NewCamera(Rect{X: 5, Y: 10, Width: 320, Height: 200})
	cam.Position = Vec3{1, -2, 4}
	cam.Yaw = 0.3
	cam.Pitch = -0.2

	for _, pt := range [][2]float64{{5, 10}, {165, 110}, {300, 40}, {20, 190}} {
		r := cam.ScreenRay(pt[0], pt[1])
		sx, sy, ok := cam.WorldToScreen(r.At(7))
		if !ok {
			t.Fatalf("(%v, %v): point in front of the camera not projected", pt[0], pt[1])
		}
		if math.Abs(sx-pt[0]) > 1e-6 || math.Abs(sy-pt[1]) > 1e-6 {
			t.Errorf("roundtrip (%v, %v) -> (%v, %v)", pt[0], pt[1], sx, sy)
		}
	}
}

func TestWorldToScreenBehindCamera(t *testing.T) {
	cam := NewCamera(Rect{Width: 100, Height: 100})
	if _, _, ok := cam.WorldToScreen(Vec3{Z: 3}); ok {
		t.Error("point behind the camera should not project")
	}
	if _, _, ok := NewCamera(Rect{}).WorldToScreen(Vec3{Z: -3}); ok {
		t.Error("empty viewport should not project")
	}
}
