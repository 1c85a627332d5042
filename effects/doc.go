// Package effects provides ready-made cursorfx effects.
//
// Bind them to registered objects with [cursorfx.Remapper.Bind]:
//
//	fx := cursorfx.New(cursorfx.Options{Scene: scene})
//	fx.Register(box)
//	fx.Bind(effects.NewHoverScale(1.2, 0.15), box)
//	fx.Bind(effects.NewDrag(), box)
//
// Animated effects advance by the frame time the remapper records in the
// effect state, so they need [cursorfx.Remapper.Update] to run every frame.
// Tweens use [gween].
//
// [gween]: https://github.com/tanema/gween
package effects
