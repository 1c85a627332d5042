package cursorfx

import "github.com/google/uuid"

// HitShape is a pickable region in a node's local space.
type HitShape interface {
	// IntersectRay returns the smallest non-negative ray parameter at which r
	// enters the shape.
	IntersectRay(r Ray) (float64, bool)
}

// Node is the fundamental scene graph element. A single flat struct is used for
// groups and meshes.
type Node struct {
	// Identity
	ID   string
	Name string
	Type NodeType

	// Hierarchy
	Parent   *Node
	children []*Node

	// Transform (local). Scale is uniform.
	Position Vec3
	Scale    float64

	// Visibility
	Visible bool
	Color   Color

	// Metadata
	UserData any

	// Hit testing (used by PointerController)
	HitShape HitShape

	cursorListeners listenerSet[RawEvent]
	eventListeners  listenerSet[Event]

	disposed bool
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ID = uuid.NewString()
	n.Scale = 1
	n.Visible = true
	n.Color = ColorWhite
}

// NewGroup creates a group node with no geometry.
func NewGroup(name string) *Node {
	n := &Node{Name: name, Type: NodeTypeGroup}
	nodeDefaults(n)
	return n
}

// NewMesh creates a renderable node with the given hit shape (may be nil).
func NewMesh(name string, shape HitShape) *Node {
	n := &Node{Name: name, Type: NodeTypeMesh, HitShape: shape}
	nodeDefaults(n)
	return n
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("cursorfx: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("cursorfx: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	if globalDebug {
		debugCheckTreeDepth(child)
	}
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("cursorfx: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// PrimaryChild returns the node the host reports the object's own events
// against: the first mesh child, else the first child, else n itself.
func (n *Node) PrimaryChild() *Node {
	for _, c := range n.children {
		if c.Type == NodeTypeMesh {
			return c
		}
	}
	if len(n.children) > 0 {
		return n.children[0]
	}
	return n
}

// Traverse calls fn for n and every descendant, depth-first, parents before
// children.
func (n *Node) Traverse(fn func(*Node)) {
	fn(n)
	for _, c := range n.children {
		c.Traverse(fn)
	}
}

// --- Events ---

// OnCursor registers a native cursor listener. Native events bubble: a
// listener also sees events fired on any descendant.
func (n *Node) OnCursor(kind string, fn func(RawEvent)) ListenerHandle {
	id := n.cursorListeners.add(kind, fn)
	return ListenerHandle{node: n, table: tableCursor, kind: kind, id: id}
}

// FireCursor delivers a native cursor event to n and then to each ancestor.
// If ev.Target is nil it is set to n.
func (n *Node) FireCursor(ev RawEvent) {
	if ev.Target == nil {
		ev.Target = n
	}
	for p := n; p != nil; p = p.Parent {
		p.cursorListeners.emit(ev.Type, ev)
	}
}

// AddEventListener registers a listener for renamed events emitted on n.
func (n *Node) AddEventListener(kind string, fn func(Event)) ListenerHandle {
	id := n.eventListeners.add(kind, fn)
	return ListenerHandle{node: n, table: tableEvent, kind: kind, id: id}
}

// DispatchEvent invokes n's listeners for ev.Type. Renamed events do not bubble.
func (n *Node) DispatchEvent(ev Event) {
	n.eventListeners.emit(ev.Type, ev)
}

// ListenerCount returns the number of native and renamed listeners for kind.
func (n *Node) ListenerCount(kind string) int {
	return n.cursorListeners.count(kind) + n.eventListeners.count(kind)
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.Parent = nil
	n.HitShape = nil
	n.UserData = nil
	n.cursorListeners.clear()
	n.eventListeners.clear()
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

