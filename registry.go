package cursorfx

// registry maps object identity to registered objects, plus descendant mesh
// identity to the owning object's identity.
type registry struct {
	objects     map[string]*Node
	order       []*Node
	childOwners map[string]string
}

func newRegistry() *registry {
	return &registry{
		objects:     make(map[string]*Node),
		childOwners: make(map[string]string),
	}
}

func (r *registry) has(id string) bool {
	_, ok := r.objects[id]
	return ok
}

func (r *registry) add(obj *Node) {
	r.objects[obj.ID] = obj
	r.order = append(r.order, obj)
}

// mapDescendants records every mesh below obj as owned by obj. The host
// sometimes reports events against these nodes instead of the object.
func (r *registry) mapDescendants(obj *Node) {
	obj.Traverse(func(n *Node) {
		if n == obj || n.Type != NodeTypeMesh {
			return
		}
		r.childOwners[n.ID] = obj.ID
	})
}

func (r *registry) remove(obj *Node) {
	delete(r.objects, obj.ID)
	for i, o := range r.order {
		if o == obj {
			copy(r.order[i:], r.order[i+1:])
			r.order[len(r.order)-1] = nil
			r.order = r.order[:len(r.order)-1]
			break
		}
	}
	for child, owner := range r.childOwners {
		if owner == obj.ID {
			delete(r.childOwners, child)
		}
	}
}

// resolve returns the object with the given id. The child mapping is only
// consulted when useChildren is set (inside the host).
func (r *registry) resolve(id string, useChildren bool) (*Node, bool) {
	if obj, ok := r.objects[id]; ok {
		return obj, true
	}
	if !useChildren {
		return nil, false
	}
	owner, ok := r.childOwners[id]
	if !ok {
		return nil, false
	}
	obj, ok := r.objects[owner]
	return obj, ok
}

// registered returns objects in registration order. The slice MUST NOT be mutated.
func (r *registry) registered() []*Node {
	return r.order
}

func (r *registry) len() int {
	return len(r.objects)
}
