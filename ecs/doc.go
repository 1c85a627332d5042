// Package ecs provides ECS adapters for cursorfx's dispatched events.
//
// The primary adapter is [NewDonburiStore], which bridges object-addressed
// cursor events into a [Donburi] world as typed events. Subscribe to
// [CursorEventType] in your ECS systems to receive them.
//
// Usage:
//
//	fx := cursorfx.New(cursorfx.Options{
//		Scene: scene,
//		Store: ecs.NewDonburiStore(world),
//	})
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
