// Package trance renders hypnotic procedural 2D patterns as a pure function
// of pixel position and time.
//
// Trance provides the evaluation core: coordinate normalization, angular
// symmetry, a small library of animated scalar fields (spirals, warped
// fractal noise, flow potentials), palette mapping, and post-effects, all
// driven by a declarative [ArchetypeDescriptor]. The companion player
// package hosts an evaluator in an [Ebitengine] window at 60 Hz.
//
// # Quick start
//
// Compile a built-in archetype and evaluate pixels:
//
//	desc, _ := trance.Preset("vortex")
//	ev, err := trance.NewEvaluator(desc)
//	if err != nil {
//		log.Fatal(err)
//	}
//	c := ev.Eval(trance.PixelContext{
//		Pos: trance.Vec2{X: 320, Y: 240},
//		Res: trance.Vec2{X: 640, Y: 480},
//		T:   1.5,
//	})
//
// [Evaluator.Eval] is a pure function: no hidden state, no randomness at
// evaluation time, identical inputs give identical colors. That makes frames
// embarrassingly parallel; render pixel ranges from as many goroutines as
// you like.
//
// # Archetypes
//
// An [ArchetypeDescriptor] is plain data: a list of [FieldNode] values
// composed through [BlendSpec] operations, an optional kaleidoscope fold,
// a [PaletteConfig], a [PostConfig], and a pointer response. Descriptors
// marshal to JSON and back without loss, so pattern collections live in
// files as naturally as in code. [Presets] ships a built-in catalog.
//
// # Guarantees
//
// Every field output is bounded, every division and logarithm is floored
// away from its singularity, and the final clamp scrubs any non-finite
// channel, so the evaluator never emits NaN or out-of-range colors no
// matter how long the clock runs. Malformed descriptors fail at
// [NewEvaluator]; evaluation itself cannot fail.
//
// [Ebitengine]: https://ebitengine.org
package trance
