// Package ecs connects fireworks shows to a [Donburi] world.
//
// [NewDonburiSink] forwards the engine's phase events (burst, fizzle,
// expire) as typed donburi events on [PhaseEventType]. [Mirror] keeps one
// entity per particle in sync with a population, so systems can query a
// running show through the [Particle] component.
//
//	engine := fireworks.NewEngine(nil)
//	engine.Sink = ecs.NewDonburiSink(world)
//	mirror := ecs.NewMirror(world)
//	// each frame:
//	mirror.Sync(launcher.Snapshot())
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
