package cursorfx

import "reflect"

// Effect is a pluggable handler. Its capabilities are discovered by the
// optional handler interfaces below; an effect may implement any subset.
type Effect any

// Current-scheme handlers.
type (
	CursorDownHandler interface {
		CursorDown(obj *Node, ev Event)
	}
	CursorUpHandler interface {
		CursorUp(obj *Node, ev Event)
	}
	CursorEnterHandler interface {
		CursorEnter(obj *Node, ev Event)
	}
	CursorLeaveHandler interface {
		CursorLeave(obj *Node, ev Event)
	}
	CursorMoveHandler interface {
		CursorMove(obj *Node, ev Event)
	}
)

// Legacy-scheme handlers. They also receive current-scheme events when the
// effect has no current-scheme handler for that kind.
type (
	HoloCursorDownHandler interface {
		HoloCursorDown(obj *Node, ev Event)
	}
	HoloCursorUpHandler interface {
		HoloCursorUp(obj *Node, ev Event)
	}
	HoloCursorEnterHandler interface {
		HoloCursorEnter(obj *Node, ev Event)
	}
	HoloCursorLeaveHandler interface {
		HoloCursorLeave(obj *Node, ev Event)
	}
	HoloCursorMoveHandler interface {
		HoloCursorMove(obj *Node, ev Event)
	}
)

// Updater is implemented by effects that run once per frame. Update receives
// the state left by the previous updater; a non-nil result replaces it.
type Updater interface {
	Update(state State) State
}

// State is threaded through the per-frame update pass.
type State map[string]any

// Reserved State keys.
const (
	StateLastEvent = "lastEvent" // most recently dispatched Event
	StateDelta     = "dt"        // seconds covered by the current frame, float32
)

// LastEvent returns the most recently dispatched event, if any.
func (s State) LastEvent() (Event, bool) {
	ev, ok := s[StateLastEvent].(Event)
	return ev, ok
}

// Delta returns the frame time recorded for the current update pass.
func (s State) Delta() float32 {
	dt, _ := s[StateDelta].(float32)
	return dt
}

// invoker calls one handler capability of e, reporting whether e had it.
type invoker func(e Effect, obj *Node, ev Event) bool

var currentInvokers = [actionCount]invoker{
	ActionDown: func(e Effect, obj *Node, ev Event) bool {
		h, ok := e.(CursorDownHandler)
		if ok {
			h.CursorDown(obj, ev)
		}
		return ok
	},
	ActionUp: func(e Effect, obj *Node, ev Event) bool {
		h, ok := e.(CursorUpHandler)
		if ok {
			h.CursorUp(obj, ev)
		}
		return ok
	},
	ActionEnter: func(e Effect, obj *Node, ev Event) bool {
		h, ok := e.(CursorEnterHandler)
		if ok {
			h.CursorEnter(obj, ev)
		}
		return ok
	},
	ActionLeave: func(e Effect, obj *Node, ev Event) bool {
		h, ok := e.(CursorLeaveHandler)
		if ok {
			h.CursorLeave(obj, ev)
		}
		return ok
	},
	ActionMove: func(e Effect, obj *Node, ev Event) bool {
		h, ok := e.(CursorMoveHandler)
		if ok {
			h.CursorMove(obj, ev)
		}
		return ok
	},
}

var legacyInvokers = [actionCount]invoker{
	ActionDown: func(e Effect, obj *Node, ev Event) bool {
		h, ok := e.(HoloCursorDownHandler)
		if ok {
			h.HoloCursorDown(obj, ev)
		}
		return ok
	},
	ActionUp: func(e Effect, obj *Node, ev Event) bool {
		h, ok := e.(HoloCursorUpHandler)
		if ok {
			h.HoloCursorUp(obj, ev)
		}
		return ok
	},
	ActionEnter: func(e Effect, obj *Node, ev Event) bool {
		h, ok := e.(HoloCursorEnterHandler)
		if ok {
			h.HoloCursorEnter(obj, ev)
		}
		return ok
	},
	ActionLeave: func(e Effect, obj *Node, ev Event) bool {
		h, ok := e.(HoloCursorLeaveHandler)
		if ok {
			h.HoloCursorLeave(obj, ev)
		}
		return ok
	},
	ActionMove: func(e Effect, obj *Node, ev Event) bool {
		h, ok := e.(HoloCursorMoveHandler)
		if ok {
			h.HoloCursorMove(obj, ev)
		}
		return ok
	},
}

// kindInvokers lists, per event kind, the handlers to try in order: the
// exact-kind handler, then the "holo"-prefixed one. Legacy kinds have no
// further fallback.
var kindInvokers = func() map[string][]invoker {
	m := make(map[string][]invoker, 2*int(actionCount))
	for a := Action(0); a < actionCount; a++ {
		m[kindTable[SchemeCurrent][a]] = []invoker{currentInvokers[a], legacyInvokers[a]}
		m[kindTable[SchemeLegacy][a]] = []invoker{legacyInvokers[a]}
	}
	return m
}()

// effectChain holds effects in two orders: a flat registration-ordered list
// for the update pass, and per-object binding lists for dispatch.
type effectChain struct {
	all      []Effect
	byObject map[string][]Effect
	global   []Effect
	state    State
}

func newEffectChain() *effectChain {
	return &effectChain{
		byObject: make(map[string][]Effect),
		state:    State{},
	}
}

// bind appends e to obj's binding list and to the flat list if absent.
func (c *effectChain) bind(e Effect, obj *Node) {
	c.byObject[obj.ID] = append(c.byObject[obj.ID], e)
	c.track(e)
}

// track appends e to the flat list unless it is already there.
func (c *effectChain) track(e Effect) {
	if c.indexOf(e) < 0 {
		c.all = append(c.all, e)
	}
}

func (c *effectChain) indexOf(e Effect) int {
	for i, x := range c.all {
		if sameEffect(x, e) {
			return i
		}
	}
	return -1
}

// unbindObject drops obj's binding list. Effects stay in the flat list.
func (c *effectChain) unbindObject(obj *Node) {
	delete(c.byObject, obj.ID)
}

// bound returns the effects bound to obj in binding order.
func (c *effectChain) bound(obj *Node) []Effect {
	if obj == nil {
		return nil
	}
	return c.byObject[obj.ID]
}

// dispatch records ev as the latest event, then invokes the matching handler
// of every effect bound to obj, in binding order.
func (c *effectChain) dispatch(obj *Node, ev Event) {
	if c.state == nil {
		c.state = State{}
	}
	c.state[StateLastEvent] = ev
	if obj == nil {
		return
	}
	invokers := kindInvokers[ev.Type]
	if len(invokers) == 0 {
		return
	}
	for _, e := range c.byObject[obj.ID] {
		for _, inv := range invokers {
			if inv(e, obj, ev) {
				break
			}
		}
	}
}

// update runs every Updater in registration order, replacing the state with
// each non-nil result before the next updater runs.
func (c *effectChain) update(dt float32) {
	if c.state == nil {
		c.state = State{}
	}
	c.state[StateDelta] = dt
	for _, e := range c.all {
		u, ok := e.(Updater)
		if !ok {
			continue
		}
		if next := u.Update(c.state); next != nil {
			c.state = next
		}
	}
}

// sameEffect compares effect identity. Maps compare by reference;
// funcs and other non-comparable values are never considered equal.
func sameEffect(a, b Effect) bool {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || ta == nil {
		return false
	}
	if ta.Kind() == reflect.Map {
		return reflect.ValueOf(a).UnsafePointer() == reflect.ValueOf(b).UnsafePointer()
	}
	if !ta.Comparable() {
		return false
	}
	return a == b
}
