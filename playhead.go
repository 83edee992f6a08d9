package reel

// Playhead is a float position in seconds along a composition tree's total
// span. The driver moves the current position; the previous position is only
// ever advanced by the traversal itself.
type Playhead struct {
	position float64
	previous float64
}

// Position returns the current playhead position in seconds.
func (p *Playhead) Position() float64 {
	return p.position
}

// Set moves the playhead to a position. The movement is traversed on the
// next update.
func (p *Playhead) Set(position float64) {
	p.position = position
}

// JumpTo moves the playhead to a position without triggering any
// side effects: the skipped range is never traversed.
func (p *Playhead) JumpTo(position float64) {
	p.position = position
	p.previous = position
}

// advance returns the previous playhead position and moves the stored
// previous position up to the current one.
func (p *Playhead) advance() float64 {
	previous := p.previous
	p.previous = p.position
	return previous
}

// leafSpan is one leaf's window in tree-global time.
type leafSpan struct {
	node  *Node
	start float64
	end   float64
}

// leafSpans returns the tree's leaves in tree order with their cumulative
// start offsets: Sequence children are concatenated, Parallel children all
// share their parent's offset. Disposed subtrees are skipped.
func leafSpans(root *Node) []leafSpan {
	return appendLeafSpans(nil, root, 0)
}

func appendLeafSpans(spans []leafSpan, n *Node, offset float64) []leafSpan {
	if n.disposed {
		return spans
	}
	if len(n.children) == 0 {
		return append(spans, leafSpan{node: n, start: offset, end: offset + n.Duration})
	}
	if n.Kind == KindParallel {
		for _, child := range n.children {
			spans = appendLeafSpans(spans, child, offset)
		}
		return spans
	}
	for _, child := range n.children {
		spans = appendLeafSpans(spans, child, offset)
		offset += child.Span()
	}
	return spans
}

// step is one leaf-local movement application queued for a stage, tagged with
// the sequence boundary flags it should fire.
type step struct {
	node     *Node
	movement Movement
	started  bool
	ended    bool
}

// trace maps a playhead movement from prev to cur into ordered stages of
// leaf-local movement steps. Stages must be applied strictly in order: a
// later stage may depend on side effects of an earlier one.
func trace(root *Node, prev, cur float64) ([][]step, error) {
	switch {
	case cur > prev:
		return traceForward(root, prev, cur), nil
	case cur < prev:
		return traceBackward(root, prev, cur)
	}
	return nil, nil
}

// traceForward scans the leaves in tree order and emits every leaf whose
// window overlaps the swept range, one stage each, so completion side effects
// of leaf N settle before leaf N+1 is touched. Parallel siblings share a
// window start and are all swept within the same tick; a leaf an earlier tick
// already completed is skipped, and a leaf the current position has not
// reached yet is skipped. A zero-duration leaf both starts and completes in
// the stage that reaches it.
func traceForward(root *Node, prev, cur float64) [][]step {
	spans := leafSpans(root)
	total := root.Span()

	var stages [][]step
	emitted := 0
	for _, span := range spans {
		duration := span.end - span.start
		// Completed on an earlier tick. Zero-duration leaves compare
		// strictly so the tick that lands exactly on one still emits it.
		if prev > span.end || (prev == span.end && duration > 0) {
			continue
		}
		// The playhead move does not reach this leaf.
		if cur < span.start {
			continue
		}

		movement := Movement{
			Start: maxf(prev-span.start, 0),
			End:   minf(cur-span.start, duration),
		}
		stages = append(stages, []step{{
			node:     span.node,
			movement: movement,
			started:  prev == 0 && emitted == 0,
		}})
		emitted++
	}

	// Completion keys on the tree's total span, not the last leaf in tree
	// order: a Parallel child listed last may end before a longer sibling.
	if cur >= total && len(stages) > 0 {
		lastStage := stages[len(stages)-1]
		lastStage[len(lastStage)-1].ended = true
	}
	return stages
}

// traceBackward mirrors traceForward for cur < prev: collect every leaf whose
// window overlaps the swept range, then emit the movements in reverse leaf
// order, one stage each. SequenceStarted fires when the sweep leaves the very
// end of the tree; SequenceCompleted fires when it arrives back at zero.
//
// Backward traversal is only defined over Sequence nesting; trees containing
// a Parallel composition are rejected.
func traceBackward(root *Node, prev, cur float64) ([][]step, error) {
	if containsParallel(root) {
		return nil, ErrBackwardParallel
	}

	spans := leafSpans(root)
	total := root.Span()

	var swept []step
	for i, span := range spans {
		duration := span.end - span.start
		if prev <= span.start || cur >= span.end {
			continue
		}
		swept = append(swept, step{
			node: span.node,
			movement: Movement{
				Start: minf(prev-span.start, duration),
				End:   clampf(cur-span.start, 0, duration),
			},
			ended: cur <= 0 && i == 0,
		})
	}

	// The reverse pass "starts" by leaving the very end of the tree; flag it
	// on the first step emitted, which is the last swept leaf in tree order.
	if len(swept) > 0 && prev >= total {
		swept[len(swept)-1].started = true
	}

	// Innermost (most recently entered) leaf first.
	stages := make([][]step, 0, len(swept))
	for i := len(swept) - 1; i >= 0; i-- {
		stages = append(stages, []step{swept[i]})
	}
	return stages, nil
}

// containsParallel reports whether any composition node in the tree runs its
// children in parallel.
func containsParallel(root *Node) bool {
	if root.Kind == KindParallel && len(root.children) > 0 {
		return true
	}
	for _, child := range root.children {
		if containsParallel(child) {
			return true
		}
	}
	return false
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func clampf(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
