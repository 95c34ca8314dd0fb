// Package tempo is a frame-driven scheduling and action engine for
// [Ebitengine] games.
//
// Tempo provides the per-frame update dispatch, interval callbacks, and
// time-evolving actions (tweens, sequences, delays) that every non-trivial 2D
// game needs, in a form that tolerates callbacks adding and removing work,
// their own included, while a frame is being dispatched.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	d := tempo.NewDirector(tempo.DefaultConfig())
//	hero := tempo.NewNode("hero")
//	d.RunAction(hero, tempo.TweenPosition(200, 100, 1.5, ease.OutQuad))
//	tempo.Run(d, tempo.RunConfig{Title: "My Game", Width: 640, Height: 480})
//
// For full control, implement [ebiten.Game] yourself and call
// [Director.Tick] with your own dt, or drive a bare [Scheduler]:
//
//	s := tempo.NewScheduler()
//	s.ScheduleUpdate(hero, 0, false)
//	s.Update(1.0 / 60)
//
// # Scheduler
//
// A [Scheduler] runs two kinds of work each frame. Update targets
// ([Updatable]) are called once per frame in ascending priority order.
// Interval callbacks ([Scheduler.Schedule]) fire every interval seconds on
// behalf of a [Target], optionally after a delay and a fixed number of times:
//
//	s.Schedule(enemy, "fire", func(elapsed float64) {
//		enemy.shoot()
//	}, 0.5, tempo.RepeatForever, 1, false)
//
// Targets are identified by [TargetID]. Embed [Handle] in your own types to
// make them targets.
//
// # Actions
//
// An [ActionManager] steps [Action] values once per frame. The Director
// registers its manager at [PrioritySystem] so actions run before user
// updates. Finite actions compose with [NewSequence], [NewSpawn],
// [NewRepeat] and [NewDelay]; tweens are driven by [gween]:
//
//	d.RunAction(hero, tempo.NewSequence(
//		tempo.TweenAlpha(0, 0.3, ease.Linear),
//		tempo.NewHide(),
//		tempo.NewCallFunc(func(tempo.Target) { log.Println("gone") }),
//	))
//
// Lifecycle events can be forwarded to an ECS through [EventSink]; see the
// [Donburi] adapter in tempo/ecs. The tempo/script package exposes the
// scheduler to Lua.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package tempo
