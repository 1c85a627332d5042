// Package ecs provides ECS adapters for cursorfx.
package ecs

import (
	"github.com/phanxgames/cursorfx"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// CursorEventType is the Donburi event type for dispatched cursor events.
// Subscribe to this in your ECS systems to receive every event the remapper
// emits on an object or on its default target.
var CursorEventType = events.NewEventType[cursorfx.Event]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventStore backed by a Donburi world.
// Events are published to CursorEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) cursorfx.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event cursorfx.Event) {
	CursorEventType.Publish(s.world, event)
}
