// Package ecs provides ECS adapters for reel.
package ecs

import (
	"github.com/phanxgames/reel"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// AnimationEventType is the Donburi event type for reel animation events.
// Subscribe to this in your ECS systems to receive sequence start/complete
// signals and per-leaf movement events.
var AnimationEventType = events.NewEventType[reel.AnimationEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Animation
// events are published to AnimationEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) reel.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event reel.AnimationEvent) {
	AnimationEventType.Publish(s.world, event)
}
