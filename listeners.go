package cursorfx

// --- Handler registry ---

type listener[T any] struct {
	id uint32
	fn func(T)
}

// listenerSet holds callbacks grouped by event kind, in registration order.
type listenerSet[T any] struct {
	byKind map[string][]listener[T]
	nextID uint32
}

func (s *listenerSet[T]) add(kind string, fn func(T)) uint32 {
	if s.byKind == nil {
		s.byKind = make(map[string][]listener[T])
	}
	s.nextID++
	s.byKind[kind] = append(s.byKind[kind], listener[T]{id: s.nextID, fn: fn})
	return s.nextID
}

// remove drops the entry from the slice to avoid nil iteration waste.
func (s *listenerSet[T]) remove(kind string, id uint32) {
	ls := s.byKind[kind]
	for i := range ls {
		if ls[i].id == id {
			copy(ls[i:], ls[i+1:])
			ls[len(ls)-1] = listener[T]{}
			ls = ls[:len(ls)-1]
			if len(ls) == 0 {
				delete(s.byKind, kind)
			} else {
				s.byKind[kind] = ls
			}
			return
		}
	}
}

func (s *listenerSet[T]) emit(kind string, v T) {
	for _, l := range s.byKind[kind] {
		l.fn(v)
	}
}

func (s *listenerSet[T]) count(kind string) int {
	return len(s.byKind[kind])
}

func (s *listenerSet[T]) clear() {
	s.byKind = nil
}

// listenerTable identifies which of a node's registries a handle belongs to.
type listenerTable uint8

const (
	tableCursor listenerTable = iota // native host events
	tableEvent                       // renamed object events
)

// ListenerHandle allows removing a registered listener.
type ListenerHandle struct {
	node  *Node
	table listenerTable
	kind  string
	id    uint32
}

// Remove unregisters the listener so it no longer fires. The zero handle is a no-op.
func (h ListenerHandle) Remove() {
	if h.node == nil {
		return
	}
	switch h.table {
	case tableCursor:
		h.node.cursorListeners.remove(h.kind, h.id)
	case tableEvent:
		h.node.eventListeners.remove(h.kind, h.id)
	}
}

// Kind returns the event kind the handle was registered for.
func (h ListenerHandle) Kind() string {
	return h.kind
}
