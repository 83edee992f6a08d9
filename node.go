package reel

import (
	"reflect"

	"github.com/tanema/gween/ease"
)

// nodeIDCounter is a plain counter (no atomic — reel is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is the fundamental animation tree element. A single flat struct is
// used for every composition kind to avoid interface dispatch on the hot path.
type Node struct {
	// Identity
	ID   uint32
	Name string
	Kind Kind

	// Hierarchy
	Parent   *Node
	children []*Node

	// Timing
	Duration float64        // own duration in seconds; leaves and delays only
	Curve    ease.TweenFunc // easing applied to this node's progress; nil is linear
	Complete CompleteAction

	// Animators attached to this leaf.
	animators []Animator

	// Lens and target resolution. The own* fields hold what was attached
	// directly to this node; the resolved fields hold the effective values
	// after nearest-ancestor inheritance (recomputed on attach and reparent).
	ownLenses map[reflect.Type]any
	lenses    map[reflect.Type]any
	ownTarget any
	target    any

	// Per-node callbacks (nil by default; zero cost when unused)
	OnComplete func(*Node)
	OnMovement func(*Node, Movement)

	// Internal
	disposed      bool
	completeFired bool
	debug         bool // mirrors the owning Timeline's debug mode, propagated on attach
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
}

// NewSequence creates a node whose children run one after another.
func NewSequence(name string) *Node {
	n := &Node{Name: name, Kind: KindSequence}
	nodeDefaults(n)
	return n
}

// NewParallel creates a node whose children run at the same time.
func NewParallel(name string) *Node {
	n := &Node{Name: name, Kind: KindParallel}
	nodeDefaults(n)
	return n
}

// NewLeaf creates a terminal node with the given duration in seconds and
// animators. A leaf with no animators acts as a delay.
func NewLeaf(name string, duration float64, animators ...Animator) *Node {
	if duration < 0 {
		panic("reel: leaf duration must be non-negative")
	}
	n := &Node{Name: name, Kind: KindLeaf, Duration: duration, animators: animators}
	nodeDefaults(n)
	return n
}

// Span returns the node's traversal duration: a childless node's own
// duration, the sum of child spans for a Sequence, and the maximum child
// span for a Parallel.
func (n *Node) Span() float64 {
	if len(n.children) == 0 {
		return n.Duration
	}
	if n.Kind == KindParallel {
		longest := 0.0
		for _, child := range n.children {
			if s := child.Span(); s > longest {
				longest = s
			}
		}
		return longest
	}
	total := 0.0
	for _, child := range n.children {
		total += child.Span()
	}
	return total
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("reel: cannot add nil child")
	}
	if n.debug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("reel: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	refreshResolution(child)
	if n.debug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(n)
	}
}

// AddChildAt inserts child at the given index.
// Same reparenting and cycle-check behavior as AddChild.
func (n *Node) AddChildAt(child *Node, index int) {
	if child == nil {
		panic("reel: cannot add nil child")
	}
	if n.debug {
		debugCheckDisposed(n, "AddChildAt (parent)")
		debugCheckDisposed(child, "AddChildAt (child)")
	}
	if isAncestor(child, n) {
		panic("reel: adding child would create a cycle")
	}
	if index < 0 || index > len(n.children) {
		panic("reel: child index out of range")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
	refreshResolution(child)
	if n.debug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(n)
	}
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if n.debug {
		debugCheckDisposed(n, "RemoveChild (parent)")
		debugCheckDisposed(child, "RemoveChild (child)")
	}
	if child.Parent != n {
		panic("reel: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
	refreshResolution(child)
}

// RemoveChildAt removes and returns the child at the given index.
func (n *Node) RemoveChildAt(index int) *Node {
	if n.debug {
		debugCheckDisposed(n, "RemoveChildAt")
	}
	if index < 0 || index >= len(n.children) {
		panic("reel: child index out of range")
	}
	child := n.children[index]
	copy(n.children[index:], n.children[index+1:])
	n.children[len(n.children)-1] = nil
	n.children = n.children[:len(n.children)-1]
	child.Parent = nil
	refreshResolution(child)
	return child
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// RemoveChildren detaches all children from this node.
// Children are NOT disposed.
func (n *Node) RemoveChildren() {
	for _, child := range n.children {
		child.Parent = nil
		refreshResolution(child)
	}
	n.children = n.children[:0]
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// SetChildIndex moves child to a new index among its siblings.
func (n *Node) SetChildIndex(child *Node, index int) {
	if child.Parent != n {
		panic("reel: child's parent is not this node")
	}
	nc := len(n.children)
	if index < 0 || index >= nc {
		panic("reel: child index out of range")
	}
	oldIndex := -1
	for i, c := range n.children {
		if c == child {
			oldIndex = i
			break
		}
	}
	if oldIndex == index {
		return
	}
	// Shift elements to fill the gap and open the target slot.
	if oldIndex < index {
		copy(n.children[oldIndex:], n.children[oldIndex+1:index+1])
	} else {
		copy(n.children[index+1:], n.children[index:oldIndex])
	}
	n.children[index] = child
}

// --- Animators ---

// Animators returns the node's animator list. The returned slice MUST NOT be
// mutated by the caller.
func (n *Node) Animators() []Animator {
	return n.animators
}

// AddAnimator appends an animator to this node.
func (n *Node) AddAnimator(a Animator) {
	if a == nil {
		panic("reel: cannot add nil animator")
	}
	n.animators = append(n.animators, a)
}

// clearAnimators detaches all animators, turning the node into a pure delay.
// Used by the CompleteRemove policy.
func (n *Node) clearAnimators() {
	n.animators = nil
}

// ResetCompleted re-arms the node's one-shot OnComplete callback so the next
// completion fires it again.
func (n *Node) ResetCompleted() {
	n.completeFired = false
}

// Root returns the topmost ancestor of this node (itself when detached).
func (n *Node) Root() *Node {
	root := n
	for root.Parent != nil {
		root = root.Parent
	}
	return root
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants. Pending movement stages that
// reference a disposed node are skipped silently.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.Parent = nil
	n.animators = nil
	n.ownLenses = nil
	n.lenses = nil
	n.ownTarget = nil
	n.target = nil
	n.Curve = nil
	n.OnComplete = nil
	n.OnMovement = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}
