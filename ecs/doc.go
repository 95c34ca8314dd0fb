// Package ecs provides ECS adapters for tempo's action engine.
//
// [NewDonburiSink] bridges action lifecycle events (started, finished,
// removed) into a [Donburi] world as typed events. Subscribe to
// [ActionEventType] in your ECS systems to receive them.
//
// [NewEntityTarget] turns a Donburi entity into a tempo target whose tweenable
// properties live in the entity's [PropsComponent], so tweens and instant
// actions animate ECS data directly:
//
//	director.ActionManager().SetEventSink(ecs.NewDonburiSink(world))
//	e := world.Create(ecs.PropsComponent)
//	director.RunAction(ecs.NewEntityTarget(world, e), tempo.TweenAlpha(0, 1, ease.Linear))
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
