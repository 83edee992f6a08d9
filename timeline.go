package reel

import (
	"errors"
	"time"
)

// Timeline binds a composition tree to a playhead and a driver and turns
// wall-clock deltas into field mutations. Exactly one update is processed per
// host tick; a single update may run multiple internal stages when the
// playhead crosses more than one leaf boundary.
type Timeline struct {
	root   *Node
	head   Playhead
	Driver TimeDriver

	// Signal callbacks (nil by default; zero cost when unused)
	OnSequenceStarted   func()
	OnSequenceCompleted func()

	sink    EventSink
	pending []func()
	debug   bool
}

// NewTimeline creates a timeline over the given tree root. When target is
// non-nil it becomes the tree's animation target, inherited by every node
// without its own (pass nil to wire targets per subtree with SetTarget).
// The driver starts playing at speed 1 in Once mode.
func NewTimeline(root *Node, target any) *Timeline {
	if root == nil {
		panic("reel: nil timeline root")
	}
	if target != nil {
		SetTarget(root, target)
	}
	return &Timeline{
		root:   root,
		Driver: TimeDriver{Speed: 1, State: StatePlay, Mode: ModeOnce},
	}
}

// Root returns the timeline's tree root.
func (tl *Timeline) Root() *Node {
	return tl.root
}

// Playhead returns the timeline's playhead. Use Set for a traversed seek and
// JumpTo for a silent one.
func (tl *Timeline) Playhead() *Playhead {
	return &tl.head
}

// SetEventSink sets the optional event bridge, e.g. an ECS adapter.
func (tl *Timeline) SetEventSink(sink EventSink) {
	tl.sink = sink
}

// SetDebugMode enables or disables debug mode for this timeline's tree. When
// enabled, disposed-node access panics, tree depth and child count warnings
// are printed, and per-update stage stats are logged to stderr. Other
// timelines are unaffected.
func (tl *Timeline) SetDebugMode(enabled bool) {
	tl.debug = enabled
	tl.root.debug = enabled
	refreshResolution(tl.root)
}

// Defer queues fn to run once the current stage's side effects have settled.
// Safe to call from animation callbacks that need to mutate the tree.
func (tl *Timeline) Defer(fn func()) {
	tl.pending = append(tl.pending, fn)
}

// Update advances the driver by dt seconds and processes the resulting
// playhead movement. Per-node evaluation errors are joined and returned; one
// node's failure does not abort its siblings.
func (tl *Timeline) Update(dt float64) error {
	tl.Driver.advance(&tl.head, dt)
	return tl.Step()
}

// Step processes any pending playhead movement without advancing the driver.
// Use it after a manual Playhead.Set to apply the seek.
func (tl *Timeline) Step() error {
	previous := tl.head.advance()
	current := tl.head.Position()
	if current == previous {
		return nil
	}

	var stats debugStats
	var t0 time.Time
	if tl.debug {
		t0 = time.Now()
	}

	stages, err := trace(tl.root, previous, current)
	if err != nil {
		return err
	}

	if tl.debug {
		stats.traceTime = time.Since(t0)
		stats.stageCount = len(stages)
		t0 = time.Now()
	}

	var errs []error
	for _, stage := range stages {
		for _, st := range stage {
			// Removed mid-update by an earlier stage; already settled.
			if st.node.IsDisposed() {
				continue
			}

			for _, a := range st.node.Animators() {
				if err := a.apply(st.node, st.movement); err != nil {
					errs = append(errs, err)
				}
			}
			tl.emitMovement(st.node, st.movement)
			tl.dispatchComplete(st.node, st.movement)

			if st.started {
				tl.emitSequence(EventSequenceStarted)
			}
			if st.ended {
				tl.emitSequence(EventSequenceCompleted)
				tl.Driver.onSequenceCompleted(&tl.head)
			}
			if tl.debug {
				stats.stepCount++
			}
		}
		tl.drainPending()
	}
	tl.drainPending()

	if tl.debug {
		stats.applyTime = time.Since(t0)
		tl.debugLog(stats)
	}

	return errors.Join(errs...)
}

// dispatchComplete fires the node's one-shot OnComplete callback and applies
// its completion policy the first time a movement crosses the node's
// duration boundary.
func (tl *Timeline) dispatchComplete(n *Node, m Movement) {
	if m.End < n.Duration {
		return
	}
	if !n.completeFired {
		n.completeFired = true
		if n.OnComplete != nil {
			n.OnComplete(n)
		}
	}
	switch n.Complete {
	case CompleteRemove:
		n.clearAnimators()
	case CompleteDespawn:
		n.Dispose()
	}
}

func (tl *Timeline) emitMovement(n *Node, m Movement) {
	if n.OnMovement != nil {
		n.OnMovement(n, m)
	}
	if tl.sink != nil {
		tl.sink.EmitEvent(AnimationEvent{
			Type:  EventMovementApplied,
			Node:  n,
			Start: m.Start,
			End:   m.End,
		})
	}
}

func (tl *Timeline) emitSequence(kind EventType) {
	switch kind {
	case EventSequenceStarted:
		if tl.OnSequenceStarted != nil {
			tl.OnSequenceStarted()
		}
	case EventSequenceCompleted:
		if tl.OnSequenceCompleted != nil {
			tl.OnSequenceCompleted()
		}
	}
	if tl.sink != nil {
		tl.sink.EmitEvent(AnimationEvent{Type: kind, Node: tl.root})
	}
}

// drainPending runs deferred commands queued during the stage that just
// settled. Commands queued by other commands run in the same drain.
func (tl *Timeline) drainPending() {
	for len(tl.pending) > 0 {
		fn := tl.pending[0]
		copy(tl.pending, tl.pending[1:])
		tl.pending[len(tl.pending)-1] = nil
		tl.pending = tl.pending[:len(tl.pending)-1]
		fn()
	}
}
