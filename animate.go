package reel

import "fmt"

// Animator consumes one leaf-local movement and mutates the node's effective
// target through its effective lens. Implementations are monomorphized per
// value type when the tree is built.
type Animator interface {
	apply(n *Node, m Movement) error
}

// keyframeSource lets a Keyframe of one value type discover the end value of
// an earlier keyframe of the same type during start-value resolution.
type keyframeSource[T any] interface {
	keyframeTarget() T
}

// Keyframe animates a field to an absolute target value. On its first
// movement it captures a start value — the most recent prior keyframe of the
// same value type in the tree, or the live field value for the very first
// leaf — and interpolates from it.
type Keyframe[T Value[T]] struct {
	Target T

	start    T
	hasStart bool
}

// NewKeyframe creates a keyframe animator with the given absolute target.
func NewKeyframe[T Value[T]](target T) *Keyframe[T] {
	return &Keyframe[T]{Target: target}
}

// Reset drops the cached start value so the next movement re-captures it.
func (k *Keyframe[T]) Reset() {
	k.hasStart = false
}

func (k *Keyframe[T]) keyframeTarget() T { return k.Target }

func (k *Keyframe[T]) apply(n *Node, m Movement) error {
	lens, ok := LensFor[T](n)
	if !ok {
		return fmt.Errorf("%w: no lens for %T visible from node %q", ErrFieldMissing, k.Target, n.Name)
	}

	// Entering the leaf from its local zero re-captures the start value, so
	// replays observe whatever the field holds now.
	if !k.hasStart || m.Start == 0 {
		start, err := k.fetchStart(n, lens)
		if err != nil {
			return err
		}
		k.start = start
		k.hasStart = true
	}

	t := 1.0
	if n.Duration != 0 {
		t = m.End / n.Duration
	}
	t = sampleCurve(n.Curve, t)

	return lens.Set(n.Target(), k.start.Lerp(k.Target, t))
}

// fetchStart resolves the interpolation start value: the end value of the
// most recent prior leaf carrying a keyframe of the same value type, falling
// back to the live field value read through the lens for the first leaf.
func (k *Keyframe[T]) fetchStart(n *Node, lens FieldLens[T]) (T, error) {
	var (
		prior    T
		hasPrior bool
	)
	for _, span := range leafSpans(n.Root()) {
		if span.node == n {
			break
		}
		for _, a := range span.node.Animators() {
			if src, ok := a.(keyframeSource[T]); ok {
				prior = src.keyframeTarget()
				hasPrior = true
			}
		}
	}
	if hasPrior {
		return prior, nil
	}

	target := n.Target()
	if target == nil {
		var zero T
		return zero, fmt.Errorf("%w: node %q has no prior keyframe and no target to sample", ErrMissingStartValue, n.Name)
	}
	value, err := lens.Get(target)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("%w: node %q: %v", ErrMissingStartValue, n.Name, err)
	}
	return value, nil
}

// Delta animates a field by a relative offset. It keeps no state: both edges
// of the movement window are eased from the value type's identity each time
// and only their difference is accumulated onto the field. That makes it
// deterministic for identical inputs and safe under reversal, re-entrant
// evaluation, and mid-flight duration changes.
type Delta[T Value[T]] struct {
	Offset T
}

// NewDelta creates a stateless additive animator with the given total offset.
func NewDelta[T Value[T]](offset T) *Delta[T] {
	return &Delta[T]{Offset: offset}
}

func (d *Delta[T]) apply(n *Node, m Movement) error {
	if m.Start == m.End {
		return nil
	}

	lens, ok := LensFor[T](n)
	if !ok {
		return fmt.Errorf("%w: no lens for %T visible from node %q", ErrFieldMissing, d.Offset, n.Name)
	}

	ts, te := 1.0, 1.0
	if n.Duration != 0 {
		ts = m.Start / n.Duration
		te = m.End / n.Duration
	}
	ts = sampleCurve(n.Curve, ts)
	te = sampleCurve(n.Curve, te)

	identity := d.Offset.Identity()
	startValue := identity.Lerp(d.Offset, ts)
	endValue := identity.Lerp(d.Offset, te)
	applied := endValue.Sub(startValue)

	current, err := lens.Get(n.Target())
	if err != nil {
		return err
	}
	return lens.Set(n.Target(), current.Add(applied))
}
