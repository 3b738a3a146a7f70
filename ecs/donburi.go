package ecs

import (
	"github.com/phanxgames/parallax"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType is the Donburi event type for parallax interaction
// events. Subscribe to this in your ECS systems to receive clicks and hover
// changes.
var InteractionEventType = events.NewEventType[parallax.InteractionEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Interaction events are published to InteractionEventType and can be
// consumed with events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) parallax.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event parallax.InteractionEvent) {
	InteractionEventType.Publish(s.world, event)
}

// OnEvent subscribes fn to interaction events of one type, such as
// parallax.EventClick or parallax.EventPointerEnter. Events are delivered
// when the world's events are processed.
func OnEvent(world donburi.World, typ parallax.EventType, fn func(w donburi.World, e parallax.InteractionEvent)) {
	InteractionEventType.Subscribe(world, func(w donburi.World, e parallax.InteractionEvent) {
		if e.Type == typ {
			fn(w, e)
		}
	})
}
