package effects

import (
	"io"
	"testing"

	"github.com/phanxgames/cursorfx"
	"golang.org/x/image/math/f64"
)

func rayTo(x, y float64) cursorfx.HostRay {
	// From the origin through (x, y, -1).
	return cursorfx.HostRay{Direction: f64.Vec3{x, y, -1}}
}

func TestDragFollowsRay(t *testing.T) {
	fx := newRemapper(t)
	box := newBox("box")
	box.Position = cursorfx.Vec3{Z: -5}
	fx.Register(box)
	d := NewDrag()
	fx.Bind(d, box)

	fx.Dispatch(cursorfx.RawEvent{Type: cursorfx.KindCursorDown, TargetID: "box", Ray: rayTo(0, 0)})
	if d.Held() != box {
		t.Fatal("box not held after cursordown")
	}

	// Untargeted movement still refreshes the ray the drag reads.
	fx.Dispatch(cursorfx.RawEvent{Type: cursorfx.KindCursorMove, Ray: cursorfx.HostRay{Direction: f64.Vec3{1, 0, 0}}})
	fx.Step(1.0 / 60)
	if !near(box.Position.X, 5) || !near(box.Position.Z, 0) {
		t.Errorf("Position = %+v, want (5, 0, 0)", box.Position)
	}

	fx.Dispatch(cursorfx.RawEvent{Type: cursorfx.KindCursorUp, TargetID: "box", Ray: rayTo(1, 0)})
	if d.Held() != nil {
		t.Error("box still held after cursorup")
	}
	before := box.Position
	fx.Dispatch(cursorfx.RawEvent{Type: cursorfx.KindCursorMove, Ray: rayTo(-1, 0)})
	fx.Step(1.0 / 60)
	if box.Position != before {
		t.Error("released box kept moving")
	}
}

func TestDragKeepsGrabOffset(t *testing.T) {
	d := NewDrag()
	box := newBox("box")
	box.Position = cursorfx.Vec3{X: 0.5, Z: -4}

	d.CursorDown(box, cursorfx.Event{Ray: cursorfx.Ray{Direction: cursorfx.Vec3{Z: -1}}})
	state := cursorfx.State{cursorfx.StateLastEvent: cursorfx.Event{
		Ray: cursorfx.Ray{Origin: cursorfx.Vec3{Y: 2}, Direction: cursorfx.Vec3{Z: -1}},
	}}
	d.Update(state)

	want := cursorfx.Vec3{X: 0.5, Y: 2, Z: -4}
	if box.Position.Sub(want).Len() > 1e-9 {
		t.Errorf("Position = %+v, want %+v", box.Position, want)
	}
}

func TestDragConvertsToParentSpace(t *testing.T) {
	parent := cursorfx.NewGroup("parent")
	parent.Position = cursorfx.Vec3{X: 10}
	parent.Scale = 2
	box := newBox("box")
	box.Position = cursorfx.Vec3{X: -5, Z: -2} // world (0, 0, -4)
	parent.AddChild(box)

	d := NewDrag()
	d.CursorDown(box, cursorfx.Event{Ray: cursorfx.Ray{Direction: cursorfx.Vec3{Z: -1}}})
	d.Update(cursorfx.State{cursorfx.StateLastEvent: cursorfx.Event{
		Ray: cursorfx.Ray{Origin: cursorfx.Vec3{X: 2}, Direction: cursorfx.Vec3{Z: -1}},
	}})

	world := box.WorldPosition()
	if !near(world.X, 2) || !near(world.Z, -4) {
		t.Errorf("world position = %+v, want (2, 0, -4)", world)
	}
}

func TestDragLegacyScheme(t *testing.T) {
	fx := cursorfx.New(cursorfx.Options{Logger: cursorfx.NewLogger(io.Discard)})
	box := newBox("box")
	fx.Register(box)
	d := NewDrag()
	fx.Bind(d, box)

	fx.Dispatch(cursorfx.RawEvent{Type: cursorfx.KindHoloCursorDown, TargetID: "box", Ray: rayTo(0, 0)})
	if d.Held() != box {
		t.Error("legacy down did not grab")
	}
	fx.Dispatch(cursorfx.RawEvent{Type: cursorfx.KindHoloCursorUp, TargetID: "box"})
	if d.Held() != nil {
		t.Error("legacy up did not release")
	}
}

func TestDragReleasesDisposed(t *testing.T) {
	d := NewDrag()
	box := newBox("box")
	d.CursorDown(box, cursorfx.Event{Ray: cursorfx.Ray{Direction: cursorfx.Vec3{Z: -1}}})
	box.Dispose()
	d.Update(cursorfx.State{})
	if d.Held() != nil {
		t.Error("disposed node still held")
	}
}
