// Package reel is a hierarchical keyframe animation engine.
//
// Reel animates arbitrary typed fields on arbitrary targets. A caller builds
// a tree of animation nodes composed in sequence or in parallel, attaches a
// playhead-driven [Timeline] to the root, and feeds it a wall-clock delta
// once per update. The engine maps playhead movement into boundary-correct
// local time windows per leaf and applies them as interpolated (absolute) or
// accumulated (additive) field mutations.
//
// # Quick start
//
//	type Sprite struct{ X, Alpha reel.Float }
//
//	sprite := &Sprite{Alpha: 1}
//
//	root := reel.NewSequence("fade")
//	reel.AttachLens(root, reel.Lens(func(s *Sprite) *reel.Float { return &s.Alpha }))
//	root.AddChild(reel.NewLeaf("out", 0.5, reel.NewKeyframe(reel.Float(0))))
//	root.AddChild(reel.NewLeaf("in", 0.5, reel.NewKeyframe(reel.Float(1))))
//
//	tl := reel.NewTimeline(root, sprite)
//	// each frame:
//	tl.Update(dt)
//
// # Composition
//
// Every animation element is a [Node]. Sequence nodes concatenate their
// children's time windows; Parallel nodes overlap them; leaves own a duration
// and zero or more animators. A leaf with a duration and no animators acts as
// a delay.
//
// # Values and lenses
//
// Any type satisfying [Value] can be animated: [Float], [Vec2], [Vec3],
// [Quat], [Color], and [Volume] ship with the package. A [FieldLens] binds
// the engine to one field of a target object; nodes without their own lens
// inherit the nearest ancestor's.
//
// # Evaluation strategies
//
// [Keyframe] interpolates from a captured start value to an absolute target.
// [Delta] accumulates a time-eased offset onto the current value and keeps no
// state, which makes it the preferred strategy when either works.
//
// Easing comes from [gween]'s ease subpackage; set [Node.Curve] to any
// ease.TweenFunc.
//
// [gween]: https://github.com/tanema/gween
package reel
