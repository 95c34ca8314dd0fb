// Package ecs provides ECS adapters for tempo.
package ecs

import (
	"github.com/phanxgames/tempo"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ActionEventType is the Donburi event type for tempo action lifecycle events.
// Subscribe to this in your ECS systems to react to actions starting,
// finishing, or being removed.
var ActionEventType = events.NewEventType[tempo.ActionEvent]()

// PropsComponent stores the animatable properties of an entity.
var PropsComponent = donburi.NewComponentType[tempo.Props](tempo.Props{
	ScaleX:  1,
	ScaleY:  1,
	Alpha:   1,
	Color:   tempo.ColorWhite,
	Visible: true,
})

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Action events are published to ActionEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) tempo.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitActionEvent(event tempo.ActionEvent) {
	ActionEventType.Publish(s.world, event)
}

// EntityTarget is a tempo target backed by a Donburi entity. It implements
// tempo.Tweenable when the entity has a PropsComponent, and reports itself
// disposed once the entity is removed from the world so that running tweens
// finish without touching freed storage.
type EntityTarget struct {
	tempo.Handle
	world  donburi.World
	entity donburi.Entity
}

// NewEntityTarget wraps entity. Create one per entity and keep it for as long
// as actions or callbacks are registered against it.
func NewEntityTarget(world donburi.World, entity donburi.Entity) *EntityTarget {
	return &EntityTarget{
		Handle: tempo.NewHandle(),
		world:  world,
		entity: entity,
	}
}

// Entity returns the wrapped entity.
func (t *EntityTarget) Entity() donburi.Entity {
	return t.entity
}

// IsDisposed reports whether the entity is no longer alive.
func (t *EntityTarget) IsDisposed() bool {
	return !t.world.Valid(t.entity)
}

// TweenProps returns the entity's PropsComponent. A removed entity, or one
// without the component, gets a detached Props value so writes are harmless.
func (t *EntityTarget) TweenProps() *tempo.Props {
	if t.IsDisposed() {
		return &tempo.Props{}
	}
	entry := t.world.Entry(t.entity)
	if !entry.HasComponent(PropsComponent) {
		return &tempo.Props{}
	}
	return PropsComponent.Get(entry)
}
