package effects

import "github.com/phanxgames/cursorfx"

// Drag moves an object along the cursor ray while it is held. The object
// keeps its distance from the ray origin and its offset from the grab point.
//
// Between press and release only the per-frame update moves the object; it
// reads the newest ray from the effect state, which is refreshed by every
// dispatched event, including untargeted movement.
type Drag struct {
	held     *cursorfx.Node
	distance float64
	offset   cursorfx.Vec3
}

// NewDrag creates a Drag effect.
func NewDrag() *Drag {
	return &Drag{}
}

// Held returns the object being dragged, or nil.
func (d *Drag) Held() *cursorfx.Node {
	return d.held
}

func (d *Drag) CursorDown(obj *cursorfx.Node, ev cursorfx.Event) {
	dir := ev.Ray.Direction.Normalize()
	pos := obj.WorldPosition()
	d.held = obj
	d.distance = pos.Sub(ev.Ray.Origin).Dot(dir)
	d.offset = pos.Sub(ev.Ray.Origin.Add(dir.Scale(d.distance)))
}

func (d *Drag) CursorUp(_ *cursorfx.Node, _ cursorfx.Event) {
	d.held = nil
}

// HoloCursorDown and HoloCursorUp let Drag work with the legacy scheme.
func (d *Drag) HoloCursorDown(obj *cursorfx.Node, ev cursorfx.Event) { d.CursorDown(obj, ev) }

func (d *Drag) HoloCursorUp(obj *cursorfx.Node, ev cursorfx.Event) { d.CursorUp(obj, ev) }

func (d *Drag) Update(state cursorfx.State) cursorfx.State {
	if d.held == nil {
		return nil
	}
	if d.held.IsDisposed() {
		d.held = nil
		return nil
	}
	ev, ok := state.LastEvent()
	if !ok {
		return nil
	}
	dir := ev.Ray.Direction.Normalize()
	target := ev.Ray.Origin.Add(dir.Scale(d.distance)).Add(d.offset)
	if p := d.held.Parent; p != nil {
		target = p.WorldToLocal(target)
	}
	d.held.Position = target
	return nil
}
