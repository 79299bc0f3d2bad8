// Package fireworks animates a formation of fireworks launched from a tapped
// element.
//
// A show starts from two rectangles: the bounds of the element that was
// tapped and a destination band on screen. [Generate] places one rocket per
// set cell of a [Formation] grid laid over the destination. Rockets leave
// from random points inside the tapped bounds with a small staggered delay,
// and all arrive at the same instant. On arrival each rocket bursts into a
// star, each star fizzles into a poof and each poof expires.
//
// # Particles
//
// Every phase shares the [Particle] shape; [Kind] picks the motion tweens
// and the transition taken when the phase ends. Particles are values:
// [Tick] and [Engine.Update] return new copies.
//
//	pop, _ := fireworks.Generate(tapped, dest, now)
//	for ; len(pop) > 0; now += 16 {
//		pop = fireworks.Tick(pop, now)
//		draw(pop.Visible(now))
//	}
//
// Times are Unix milliseconds. Randomness comes from the engine's [Source],
// so a seeded source reproduces a show exactly.
//
// # Sessions and the launcher
//
// An [Engine] starts a [Session], which owns one population, publishes
// snapshots for readers on other goroutines and stops when the sky is empty
// or its time budget runs out. A [Launcher] sits in front of the engine the
// way a host would: it debounces taps, shows help when a tap carries no
// bounds, replaces a running show when a new one starts and logs with zap.
//
//	l := fireworks.NewLauncher(fireworks.NewEngine(nil), fireworks.DefaultLauncherConfig(w, h))
//	l.InjectTapAt(x, y, 48)
//	l.Update(fireworks.SystemClock()) // once per frame
//
// # Events
//
// Set [Engine.Sink] to receive a [PhaseEvent] whenever a particle bursts,
// fizzles or expires. [MultiSink] fans events out to several sinks.
//
// # Scripts
//
// [LoadScript] reads a YAML or JSON list of tap, wait and snapshot steps and
// [Simulate] replays it on a fixed frame clock for reproducible runs.
package fireworks
