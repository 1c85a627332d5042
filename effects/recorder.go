package effects

import "github.com/phanxgames/cursorfx"

// Call is one handler invocation seen by a Recorder.
type Call struct {
	Method   string
	ObjectID string
	Event    cursorfx.Event
}

// Recorder records every handler call and counts update passes. It is handy
// for wiring checks and debugging overlays.
type Recorder struct {
	Calls   []Call
	Updates int
	// Limit caps Calls to the most recent entries. Zero keeps everything.
	Limit int
}

func (r *Recorder) record(method string, obj *cursorfx.Node, ev cursorfx.Event) {
	if r.Limit > 0 && len(r.Calls) >= r.Limit {
		n := copy(r.Calls, r.Calls[len(r.Calls)-r.Limit+1:])
		r.Calls = r.Calls[:n]
	}
	r.Calls = append(r.Calls, Call{Method: method, ObjectID: obj.ID, Event: ev})
}

func (r *Recorder) CursorDown(obj *cursorfx.Node, ev cursorfx.Event)  { r.record("CursorDown", obj, ev) }
func (r *Recorder) CursorUp(obj *cursorfx.Node, ev cursorfx.Event)    { r.record("CursorUp", obj, ev) }
func (r *Recorder) CursorEnter(obj *cursorfx.Node, ev cursorfx.Event) { r.record("CursorEnter", obj, ev) }
func (r *Recorder) CursorLeave(obj *cursorfx.Node, ev cursorfx.Event) { r.record("CursorLeave", obj, ev) }
func (r *Recorder) CursorMove(obj *cursorfx.Node, ev cursorfx.Event)  { r.record("CursorMove", obj, ev) }

func (r *Recorder) HoloCursorDown(obj *cursorfx.Node, ev cursorfx.Event) {
	r.record("HoloCursorDown", obj, ev)
}
func (r *Recorder) HoloCursorUp(obj *cursorfx.Node, ev cursorfx.Event) {
	r.record("HoloCursorUp", obj, ev)
}
func (r *Recorder) HoloCursorEnter(obj *cursorfx.Node, ev cursorfx.Event) {
	r.record("HoloCursorEnter", obj, ev)
}
func (r *Recorder) HoloCursorLeave(obj *cursorfx.Node, ev cursorfx.Event) {
	r.record("HoloCursorLeave", obj, ev)
}
func (r *Recorder) HoloCursorMove(obj *cursorfx.Node, ev cursorfx.Event) {
	r.record("HoloCursorMove", obj, ev)
}

func (r *Recorder) Update(cursorfx.State) cursorfx.State {
	r.Updates++
	return nil
}

// Last returns the most recent call.
func (r *Recorder) Last() (Call, bool) {
	if len(r.Calls) == 0 {
		return Call{}, false
	}
	return r.Calls[len(r.Calls)-1], true
}

// Reset clears recorded calls.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
	r.Updates = 0
}
