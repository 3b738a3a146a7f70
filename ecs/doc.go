// Package ecs provides ECS adapters for parallax.
//
// The Donburi adapter forwards click and hover events from a parallax
// engine into a Donburi world as events:
//
//	world := donburi.NewWorld()
//	engine.SetEntityStore(ecs.NewDonburiStore(world))
//
//	ecs.InteractionEventType.Subscribe(world, func(w donburi.World, e parallax.InteractionEvent) {
//		// handle event
//	})
//
// OnEvent subscribes to a single event type:
//
//	ecs.OnEvent(world, parallax.EventClick, func(w donburi.World, e parallax.InteractionEvent) {
//		// e.ID was clicked
//	})
//
// Only entities with a non-zero EntityID are forwarded.
package ecs
