package reel

import (
	"math"
	"testing"
)

func TestAddChildSetsParent(t *testing.T) {
	parent := NewSequence("parent")
	child := NewLeaf("child", 1)

	parent.AddChild(child)

	if child.Parent != parent {
		t.Fatal("child.Parent not set")
	}
	if parent.NumChildren() != 1 || parent.ChildAt(0) != child {
		t.Fatal("child not in parent's children")
	}
}

func TestAddChildReparents(t *testing.T) {
	a := NewSequence("a")
	b := NewSequence("b")
	child := NewLeaf("child", 1)

	a.AddChild(child)
	b.AddChild(child)

	if child.Parent != b {
		t.Fatal("child not reparented to b")
	}
	if a.NumChildren() != 0 {
		t.Fatal("child still listed under a")
	}
}

func TestAddChildCyclePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on cycle")
		}
	}()
	a := NewSequence("a")
	b := NewSequence("b")
	a.AddChild(b)
	b.AddChild(a)
}

func TestAddChildNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on nil child")
		}
	}()
	NewSequence("a").AddChild(nil)
}

func TestAddChildAtInsertsAtIndex(t *testing.T) {
	parent := NewSequence("parent")
	a := NewLeaf("a", 1)
	b := NewLeaf("b", 1)
	c := NewLeaf("c", 1)
	parent.AddChild(a)
	parent.AddChild(c)

	parent.AddChildAt(b, 1)

	names := []string{"a", "b", "c"}
	for i, want := range names {
		if parent.ChildAt(i).Name != want {
			t.Errorf("child %d = %q, want %q", i, parent.ChildAt(i).Name, want)
		}
	}
}

func TestRemoveChildAtReturnsChild(t *testing.T) {
	parent := NewSequence("parent")
	a := NewLeaf("a", 1)
	b := NewLeaf("b", 1)
	parent.AddChild(a)
	parent.AddChild(b)

	got := parent.RemoveChildAt(0)

	if got != a {
		t.Fatal("wrong child removed")
	}
	if a.Parent != nil {
		t.Fatal("removed child still has a parent")
	}
	if parent.NumChildren() != 1 || parent.ChildAt(0) != b {
		t.Fatal("remaining children wrong")
	}
}

func TestSetChildIndexReorders(t *testing.T) {
	parent := NewSequence("parent")
	a := NewLeaf("a", 1)
	b := NewLeaf("b", 1)
	c := NewLeaf("c", 1)
	parent.AddChild(a)
	parent.AddChild(b)
	parent.AddChild(c)

	parent.SetChildIndex(c, 0)

	names := []string{"c", "a", "b"}
	for i, want := range names {
		if parent.ChildAt(i).Name != want {
			t.Errorf("child %d = %q, want %q", i, parent.ChildAt(i).Name, want)
		}
	}
}

func TestSpanSequenceSumsLeaves(t *testing.T) {
	root := NewSequence("root")
	root.AddChild(NewLeaf("a", 1))
	root.AddChild(NewLeaf("b", 0.5))
	root.AddChild(NewLeaf("c", 1.5))

	if got := root.Span(); math.Abs(got-3) > 1e-9 {
		t.Errorf("Span() = %v, want 3", got)
	}
}

func TestSpanParallelTakesMax(t *testing.T) {
	root := NewParallel("root")
	root.AddChild(NewLeaf("a", 1))
	root.AddChild(NewLeaf("b", 2.5))
	root.AddChild(NewLeaf("c", 0.5))

	if got := root.Span(); math.Abs(got-2.5) > 1e-9 {
		t.Errorf("Span() = %v, want 2.5", got)
	}
}

func TestSpanNestedComposition(t *testing.T) {
	root := NewSequence("root")
	root.AddChild(NewLeaf("a", 1))

	par := NewParallel("par")
	par.AddChild(NewLeaf("b", 2))
	par.AddChild(NewLeaf("c", 1))
	root.AddChild(par)

	root.AddChild(NewLeaf("d", 0.5))

	if got := root.Span(); math.Abs(got-3.5) > 1e-9 {
		t.Errorf("Span() = %v, want 3.5", got)
	}
}

func TestSpanChildlessNodeIsOwnDuration(t *testing.T) {
	delay := NewLeaf("delay", 0.75)
	if got := delay.Span(); got != 0.75 {
		t.Errorf("Span() = %v, want 0.75", got)
	}
}

func TestNewLeafNegativeDurationPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on negative duration")
		}
	}()
	NewLeaf("bad", -1)
}

func TestDisposeDetachesAndMarksSubtree(t *testing.T) {
	root := NewSequence("root")
	mid := NewSequence("mid")
	leaf := NewLeaf("leaf", 1)
	root.AddChild(mid)
	mid.AddChild(leaf)

	mid.Dispose()

	if root.NumChildren() != 0 {
		t.Fatal("disposed subtree still attached")
	}
	if !mid.IsDisposed() || !leaf.IsDisposed() {
		t.Fatal("subtree not marked disposed")
	}
	if leaf.Animators() != nil {
		t.Fatal("disposed leaf retains animators")
	}
}

func TestDisposeIsIdempotent(t *testing.T) {
	n := NewLeaf("n", 1)
	n.Dispose()
	n.Dispose()
	if !n.IsDisposed() {
		t.Fatal("node should stay disposed")
	}
}

func TestDisposedSubtreeExcludedFromSpanLayout(t *testing.T) {
	root := NewSequence("root")
	a := NewLeaf("a", 1)
	b := NewLeaf("b", 1)
	root.AddChild(a)
	root.AddChild(b)

	a.Dispose()

	spans := leafSpans(root)
	if len(spans) != 1 || spans[0].node != b {
		t.Fatalf("leafSpans after dispose = %d spans, want only %q", len(spans), b.Name)
	}
	if spans[0].start != 0 {
		t.Errorf("remaining leaf start = %v, want 0", spans[0].start)
	}
}

func TestRootReturnsTopmostAncestor(t *testing.T) {
	root := NewSequence("root")
	mid := NewSequence("mid")
	leaf := NewLeaf("leaf", 1)
	root.AddChild(mid)
	mid.AddChild(leaf)

	if leaf.Root() != root {
		t.Fatal("Root() did not return topmost ancestor")
	}
	if root.Root() != root {
		t.Fatal("detached root should be its own root")
	}
}

func TestAddAnimatorAppends(t *testing.T) {
	leaf := NewLeaf("leaf", 1)
	leaf.AddAnimator(NewDelta(Float(1)))
	leaf.AddAnimator(NewKeyframe(Float(2)))
	if len(leaf.Animators()) != 2 {
		t.Fatalf("animator count = %d, want 2", len(leaf.Animators()))
	}
}
