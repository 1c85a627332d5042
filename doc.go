// Package cursorfx remaps a VR host's cursor events onto a 3D scene graph and
// chains pluggable effects onto them.
//
// The host reports low-level cursor events (down, up, enter, leave, move)
// carrying a ray and an opaque target. cursorfx resolves that target to a
// registered [Node], re-emits the event on it, and hands the same [Event] to
// the effects bound to the node. Once per frame, [Remapper.Update] runs every
// effect's Update, threading a [State] from one effect to the next.
//
// # Quick start
//
//	scene := cursorfx.NewScene()
//	box := cursorfx.NewGroup("box")
//	box.AddChild(cursorfx.NewMesh("box-mesh", cursorfx.HitSphere{Radius: 1}))
//	scene.Root().AddChild(box)
//
//	fx := cursorfx.New(cursorfx.Options{Scene: scene, Host: host})
//	fx.Register(box)
//	fx.On(box, cursorfx.KindCursorDown, func(ev cursorfx.Event) { ... })
//	fx.Bind(effects.NewHoverScale(1.2, 0.15), box)
//
// Then call [Remapper.Update] once per frame, or let [Run] drive it from an
// Ebitengine game loop.
//
// # Naming schemes
//
// Passing a [Scene] selects the current event names (cursordown, ...).
// Without one the legacy names (holocursordown, ...) are used, and a [Host]
// is expected to deliver every event on its global stream with the target
// already resolved. The scheme is fixed for the life of the [Remapper].
//
// # Effects
//
// An effect is any value. It reacts to an event kind by implementing the
// matching handler interface ([CursorDownHandler], ...). For current-scheme
// events an effect without the exact handler falls back to its legacy one
// ([HoloCursorDownHandler], ...). Effects implementing [Updater] run once per
// frame in the order they were first bound; an updater that returns a
// non-nil [State] replaces the state seen by the ones after it.
//
// # Pointer interaction
//
// Outside the host, [Remapper.EnablePointerInteraction] starts a
// [PointerController] that casts rays through a [Camera] from the mouse
// position and feeds hoverOver, hoverOut, select, deselect and move
// interactions back through the same dispatch path.
package cursorfx
