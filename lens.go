package reel

import (
	"fmt"
	"reflect"
)

// FieldLens is a type-erased read/write accessor for one field of type T on a
// target object. Both methods fail with ErrFieldMissing when the target does
// not carry the expected underlying field or type.
type FieldLens[T any] interface {
	Get(target any) (T, error)
	Set(target any, value T) error
}

// Lens builds a FieldLens from a pointer-to-field selector, the usual way to
// bind an animation to a struct field:
//
//	reel.Lens(func(s *Sprite) *reel.Float { return &s.Alpha })
//
// The returned lens only accepts *C targets.
func Lens[C any, T any](field func(*C) *T) FieldLens[T] {
	if field == nil {
		panic("reel: nil lens selector")
	}
	return funcLens[C, T]{field: field}
}

type funcLens[C any, T any] struct {
	field func(*C) *T
}

func (l funcLens[C, T]) Get(target any) (T, error) {
	c, ok := target.(*C)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: want %T, have %T", ErrFieldMissing, (*C)(nil), target)
	}
	return *l.field(c), nil
}

func (l funcLens[C, T]) Set(target any, value T) error {
	c, ok := target.(*C)
	if !ok {
		return fmt.Errorf("%w: want %T, have %T", ErrFieldMissing, (*C)(nil), target)
	}
	*l.field(c) = value
	return nil
}

// AttachLens binds a lens for value type T to a node and propagates it as the
// effective lens of every descendant that does not carry its own lens of the
// same value type. Exactly one lens per value type is visible to any node;
// the nearest ancestor wins.
func AttachLens[T any](n *Node, lens FieldLens[T]) {
	if lens == nil {
		panic("reel: cannot attach nil lens")
	}
	if n.debug {
		debugCheckDisposed(n, "AttachLens")
	}
	if n.ownLenses == nil {
		n.ownLenses = make(map[reflect.Type]any, 1)
	}
	n.ownLenses[reflect.TypeFor[T]()] = lens
	refreshResolution(n)
}

// LensFor returns the effective lens for value type T at this node, walking
// resolution set up by AttachLens. The second return is false when no lens of
// that type is visible.
func LensFor[T any](n *Node) (FieldLens[T], bool) {
	raw, ok := n.lenses[reflect.TypeFor[T]()]
	if !ok {
		return nil, false
	}
	lens, ok := raw.(FieldLens[T])
	return lens, ok
}

// SetTarget binds the object whose fields this subtree animates. Descendants
// without their own target inherit it, mirroring lens inheritance.
func SetTarget(n *Node, target any) {
	if n.debug {
		debugCheckDisposed(n, "SetTarget")
	}
	n.ownTarget = target
	refreshResolution(n)
}

// Target returns the effective animation target for this node, or nil when
// none was set anywhere up the tree.
func (n *Node) Target() any {
	return n.target
}

// refreshResolution recomputes the effective lenses and target for n's whole
// subtree from its own attachments and its parent's resolved state. Uses an
// explicit stack so deep trees cannot overflow and reads never alias writes.
func refreshResolution(start *Node) {
	stack := []*Node{start}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		var inherited map[reflect.Type]any
		if n.Parent != nil {
			inherited = n.Parent.lenses
		}
		if len(inherited) == 0 && len(n.ownLenses) == 0 {
			n.lenses = nil
		} else {
			resolved := make(map[reflect.Type]any, len(inherited)+len(n.ownLenses))
			for t, l := range inherited {
				resolved[t] = l
			}
			// A node's own lens of a value type blocks inheritance below it.
			for t, l := range n.ownLenses {
				resolved[t] = l
			}
			n.lenses = resolved
		}

		n.target = n.ownTarget
		if n.target == nil && n.Parent != nil {
			n.target = n.Parent.target
		}

		// Debug mode lives on the root and rides the same propagation pass,
		// so two timelines can run with different debug settings.
		if n.Parent != nil {
			n.debug = n.Parent.debug
		}

		for i := len(n.children) - 1; i >= 0; i-- {
			stack = append(stack, n.children[i])
		}
	}
}
