// Package parallax is a proximity-reactive canvas engine for [Ebitengine].
//
// An [Engine] owns a handful to a few dozen entities (solid rectangles or
// images) and repaints them every frame so that their size reacts to the
// pointer: an entity grows up to 2× as the pointer approaches its center
// and returns to its base size past a cutoff distance. Accumulated pointer
// travel drives a parallax translation of the whole surface. Clicks are
// resolved against the same animated bounds that were painted, so entities
// behave as clickable objects on a canvas with no per-object event targets.
//
// # Quick start
//
//	cfg := parallax.DefaultConfig()
//	cfg.Entities = []parallax.LayoutEntry{
//		{ID: "a", Left: 0.2, Top: 0.3, Width: 0.1, Height: 0.1,
//			Units: parallax.UnitsFraction, Color: "#3fa9f5"},
//	}
//	engine, err := parallax.NewEngine(cfg, 640, 480, nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	engine.OnClick(func(ctx parallax.ClickContext) { log.Println(ctx.ID) })
//	log.Fatal(parallax.Run(engine, parallax.RunConfig{Title: "demo", Width: 640, Height: 480}))
//
// # Frame loop
//
// A [Driver] runs [Engine.Tick] once per frame between Mount and Unmount.
// Frames come from a [Scheduler]: [Host] (Ebitengine), [ManualScheduler]
// (tests, headless) or the terminal host in parallax/term. Each tick polls
// asset readiness, advances every easing state, re-sorts the paint order
// (farthest from the pointer first) and paints onto a [Surface].
//
// # Easing policies
//
// One [EasingPolicy] drives every animated value of an engine:
// [PolicyProportional] chases a moving destination and never settles,
// [PolicyGuarded] freezes once the remaining gap is inside the acceleration
// band, and [PolicyTween] runs fixed-duration [gween] tweens whose
// destination is fixed when each tween starts.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package parallax
