package cursorfx

// Dispatch routes one raw cursor event: normalize, resolve the target, emit
// the renamed event on it, then run the effects bound to it. Events without
// a target go to the default target. The latest event is always recorded in
// the effect state, even when nothing receives it.
func (r *Remapper) Dispatch(raw RawEvent) {
	ev := r.norm.normalize(raw)
	r.stats.Dispatched++

	if ev.HasTarget() {
		obj, ok := r.objects.resolve(ev.TargetID, r.inHost)
		if !ok {
			r.stats.Unresolved++
			r.tracef("%s: no registered object for target %q", ev.Type, ev.TargetID)
			r.effects.dispatch(nil, ev)
			return
		}
		r.emit(obj, ev)
		r.effects.dispatch(obj, ev)
		return
	}

	if r.defaultTarget != nil {
		r.emit(r.defaultTarget, ev)
	} else {
		r.stats.Untargeted++
	}
	r.effects.dispatch(r.defaultTarget, ev)
}

func (r *Remapper) emit(obj *Node, ev Event) {
	r.stats.Emitted++
	obj.DispatchEvent(ev)
	if r.store != nil {
		r.store.EmitEvent(ev)
	}
}

// InteractionDetail is what a pointer controller reports with each interaction.
type InteractionDetail struct {
	Ray Ray
	// Point is the world-space hit point; zero when nothing was hit.
	Point Vec3
	// Distance is the ray parameter of the hit; zero when nothing was hit.
	Distance float64
}

// InteractionDelegate receives a pointer controller's interactions.
// obj is nil when the pointer is over no registered object.
type InteractionDelegate interface {
	HoverOver(obj *Node, d InteractionDetail)
	HoverOut(obj *Node, d InteractionDetail)
	Select(obj *Node, d InteractionDetail)
	Deselect(obj *Node, d InteractionDetail)
	Move(obj *Node, d InteractionDetail)
}

// Interact translates a controller interaction into a cursor event of the
// active scheme and dispatches it. Unknown interactions are logged and dropped.
func (r *Remapper) Interact(name Interaction, obj *Node, d InteractionDetail) {
	kind, err := r.names.ForInteraction(name)
	if err != nil {
		r.errorf("interact: %v", err)
		return
	}
	raw := RawEvent{Type: kind, Ray: HostRayOf(d.Ray)}
	if obj != nil {
		raw.Target = obj
		raw.TargetID = obj.ID
	}
	r.Dispatch(raw)
}

// interactionBridge adapts a Remapper to InteractionDelegate.
type interactionBridge struct {
	r *Remapper
}

func (b interactionBridge) HoverOver(obj *Node, d InteractionDetail) {
	b.r.Interact(InteractionHoverOver, obj, d)
}

func (b interactionBridge) HoverOut(obj *Node, d InteractionDetail) {
	b.r.Interact(InteractionHoverOut, obj, d)
}

func (b interactionBridge) Select(obj *Node, d InteractionDetail) {
	b.r.Interact(InteractionSelect, obj, d)
}

func (b interactionBridge) Deselect(obj *Node, d InteractionDetail) {
	b.r.Interact(InteractionDeselect, obj, d)
}

func (b interactionBridge) Move(obj *Node, d InteractionDetail) {
	b.r.Interact(InteractionMove, obj, d)
}
