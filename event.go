package cursorfx

// RawEvent is a cursor event as the host platform (or an emulating caller)
// delivers it.
type RawEvent struct {
	// Type is the event kind, in whichever scheme the source uses.
	Type string
	// Target is the node the host reported the event against. Inside the
	// host this may be a descendant mesh rather than the registered object,
	// or the scene root for scene-wide events.
	Target *Node
	// TargetID is a pre-resolved identifier, used by legacy-format hosts and
	// by callers emulating the host.
	TargetID string
	// Ray is the cursor ray in the host's vector format.
	Ray HostRay
}

// Event is the normalized, object-addressed cursor event. The same value is
// emitted on the resolved object and handed to its effects.
type Event struct {
	Type string
	// TargetID is empty when the event has no object target.
	TargetID string
	Ray      Ray
}

// HasTarget reports whether the event names an object.
func (e Event) HasTarget() bool {
	return e.TargetID != ""
}

// normalizer turns raw host events into Events. It holds only values fixed
// at construction.
type normalizer struct {
	inHost  bool
	scheme  Scheme
	sceneID string
}

// normalize copies the ray into plain triples and resolves the target id.
// Outside the host, or with legacy-format events, the pre-resolved TargetID is
// used. Otherwise the reported target's ID is used, and an event reported
// against the scene itself is treated as untargeted.
func (n normalizer) normalize(raw RawEvent) Event {
	ev := Event{Type: raw.Type, Ray: raw.Ray.ray()}
	if !n.inHost || n.scheme == SchemeLegacy {
		ev.TargetID = raw.TargetID
		return ev
	}
	if raw.Target != nil {
		ev.TargetID = raw.Target.ID
	}
	if n.sceneID != "" && ev.TargetID == n.sceneID {
		ev.TargetID = ""
	}
	return ev
}
