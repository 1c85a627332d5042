package cursorfx

import (
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

// Host is the host platform's event source.
type Host interface {
	// InClient reports whether the program runs inside the host platform.
	InClient() bool
	// OnCursor subscribes fn to the host's global cursor event stream.
	// Legacy-format hosts deliver every cursor event here, with TargetID
	// already resolved.
	OnCursor(kind string, fn func(RawEvent))
}

// EventStore is the interface for optional ECS integration.
// When set, every emitted event is forwarded to the store.
type EventStore interface {
	EmitEvent(event Event)
}

// Options configures a Remapper.
type Options struct {
	// Trace enables verbose logging, including unresolved targets.
	Trace bool
	// DefaultTarget receives events that carry no object target.
	DefaultTarget *Node
	// Scene selects the current naming scheme when set, the legacy one otherwise.
	Scene *Scene
	// Host is the platform event source. Nil means running outside the host.
	Host Host
	// Store receives every emitted event.
	Store EventStore
	// Logger receives diagnostics. Defaults to a stderr logger.
	Logger *log.Logger

	// LateBind applies effects bound to all objects to objects registered later.
	LateBind bool
	// AllowUnregister enables Unregister. Without it registrations are permanent.
	AllowUnregister bool
}

// Remapper turns host cursor events into object-addressed events and drives
// the effect chain.
type Remapper struct {
	names         EventNames
	norm          normalizer
	inHost        bool
	scene         *Scene
	defaultTarget *Node
	store         EventStore

	objects   *registry
	listeners map[string][]ListenerHandle
	effects   *effectChain
	pointer   *PointerController
	script    *ScriptRunner

	sceneHandle ListenerHandle

	lateBind        bool
	allowUnregister bool

	trace bool
	log   *log.Logger
	stats DispatchStats
}

// New creates a Remapper. The naming scheme is fixed here: current when
// opts.Scene is set, legacy otherwise.
func New(opts Options) *Remapper {
	scheme := SchemeLegacy
	if opts.Scene != nil {
		scheme = SchemeCurrent
	}
	inHost := opts.Host != nil && opts.Host.InClient()
	logger := opts.Logger
	if logger == nil {
		logger = NewLogger(os.Stderr)
	}

	r := &Remapper{
		names:           NewEventNames(scheme),
		inHost:          inHost,
		scene:           opts.Scene,
		defaultTarget:   opts.DefaultTarget,
		store:           opts.Store,
		objects:         newRegistry(),
		listeners:       make(map[string][]ListenerHandle),
		effects:         newEffectChain(),
		lateBind:        opts.LateBind,
		allowUnregister: opts.AllowUnregister,
		trace:           opts.Trace,
		log:             logger,
	}
	r.norm = normalizer{inHost: inHost, scheme: scheme}

	if opts.Scene != nil {
		r.norm.sceneID = opts.Scene.ID()
		// Scene-wide movement is reported against the scene itself.
		r.sceneHandle = opts.Scene.Root().OnCursor(r.names.Kind(ActionMove), r.Dispatch)
	} else if opts.Host != nil {
		for a := Action(0); a < actionCount; a++ {
			opts.Host.OnCursor(r.names.Kind(a), r.Dispatch)
		}
	}

	r.tracef("created: scheme=%s inHost=%t defaultTarget=%t", scheme, inHost, opts.DefaultTarget != nil)
	return r
}

// Scheme returns the naming scheme chosen at construction.
func (r *Remapper) Scheme() Scheme {
	return r.names.Scheme()
}

// Names returns the event name table in use.
func (r *Remapper) Names() EventNames {
	return r.names
}

// --- Registration ---

// Register makes obj addressable by its ID. Registering an already
// registered ID is a no-op.
func (r *Remapper) Register(obj *Node) {
	if obj == nil {
		r.errorf("register: nil object")
		return
	}
	if r.objects.has(obj.ID) {
		return
	}
	r.objects.add(obj)

	if r.names.Scheme() == SchemeCurrent {
		target := obj.PrimaryChild()
		handles := make([]ListenerHandle, 0, len(discreteActions))
		for _, a := range discreteActions {
			handles = append(handles, target.OnCursor(r.names.Kind(a), r.Dispatch))
		}
		r.listeners[obj.ID] = handles
	}
	if r.inHost {
		r.objects.mapDescendants(obj)
	}
	if r.pointer != nil {
		r.pointer.Register(obj)
	}
	if r.lateBind {
		for _, e := range r.effects.global {
			r.effects.bind(e, obj)
		}
	}
	r.tracef("registered %q (%s)", obj.Name, obj.ID)
}

// Unregister removes obj and everything registration attached to it. It is
// only honored when Options.AllowUnregister is set.
func (r *Remapper) Unregister(obj *Node) {
	if obj == nil {
		r.errorf("unregister: nil object")
		return
	}
	if !r.allowUnregister {
		r.errorf("unregister %q: registrations are permanent (AllowUnregister is off)", obj.ID)
		return
	}
	if !r.objects.has(obj.ID) {
		return
	}
	for _, h := range r.listeners[obj.ID] {
		h.Remove()
	}
	delete(r.listeners, obj.ID)
	r.objects.remove(obj)
	r.effects.unbindObject(obj)
	if r.pointer != nil {
		r.pointer.Unregister(obj)
	}
	r.tracef("unregistered %q (%s)", obj.Name, obj.ID)
}

// Registered reports whether an object with id is registered.
func (r *Remapper) Registered(id string) bool {
	return r.objects.has(id)
}

// Lookup resolves id the same way dispatch does.
func (r *Remapper) Lookup(id string) (*Node, bool) {
	return r.objects.resolve(id, r.inHost)
}

// --- Effects ---

// Bind attaches e to obj. With a nil obj, e is attached to every object
// registered so far (and, with LateBind, to objects registered later).
func (r *Remapper) Bind(e Effect, obj *Node) {
	if e == nil {
		r.errorf("bind: nil effect")
		return
	}
	if obj != nil {
		r.effects.bind(e, obj)
		return
	}
	for _, o := range r.objects.registered() {
		r.effects.bind(e, o)
	}
	r.effects.track(e)
	if r.lateBind {
		r.effects.global = append(r.effects.global, e)
	}
}

// Effects returns the effects bound to obj in dispatch order.
// The returned slice MUST NOT be mutated.
func (r *Remapper) Effects(obj *Node) []Effect {
	return r.effects.bound(obj)
}

// State returns the current effect state.
func (r *Remapper) State() State {
	return r.effects.state
}

// --- Listening ---

// On registers fn for renamed events of kind on obj. kind may be written in
// either scheme; it is translated to the active one.
func (r *Remapper) On(obj *Node, kind string, fn func(Event)) ListenerHandle {
	if obj == nil {
		r.errorf("on %s: nil object", kind)
		return ListenerHandle{}
	}
	translated, ok := r.names.Normalize(kind)
	if !ok {
		r.tracef("on %s: not a cursor event kind, registering as is", kind)
	}
	return obj.AddEventListener(translated, fn)
}

// --- Pointer interaction ---

// EnablePointerInteraction starts a pointer controller that picks objects
// through cam. Already registered objects are handed to it.
func (r *Remapper) EnablePointerInteraction(cam *Camera) {
	if cam == nil {
		r.errorf("enable pointer interaction: nil camera")
		return
	}
	r.pointer = NewPointerController(cam, interactionBridge{r: r})
	for _, obj := range r.objects.registered() {
		r.pointer.Register(obj)
	}
	r.tracef("pointer interaction enabled for %d objects", r.objects.len())
}

// PointerController returns the active controller, or nil.
func (r *Remapper) PointerController() *PointerController {
	return r.pointer
}

// SetScriptRunner attaches a ScriptRunner stepped once per Update.
func (r *Remapper) SetScriptRunner(runner *ScriptRunner) {
	r.script = runner
}

// --- Frame tick ---

// Update advances one frame at the Ebitengine tick rate.
func (r *Remapper) Update() {
	r.Step(float32(1.0 / float64(ebiten.TPS())))
}

// Step advances one frame of dt seconds: camera animation, scripted input,
// the pointer controller, then the effect update pass.
func (r *Remapper) Step(dt float32) {
	if r.scene != nil {
		r.scene.Update(dt)
	}
	if r.script != nil {
		r.script.step(r)
	}
	if r.pointer != nil {
		if r.scene == nil || !r.scene.hasCamera(r.pointer.camera) {
			r.pointer.camera.update(dt)
		}
		r.pointer.Update()
	}
	r.effects.update(dt)
}
