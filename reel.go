package reel

import "errors"

// Kind selects how a node composes its children's time windows.
type Kind uint8

const (
	KindSequence Kind = iota // children run one after another (default)
	KindParallel             // children run at the same time
	KindLeaf                 // terminal node owning a duration and animators
)

// CompleteAction selects what happens to a leaf when the playhead fully
// traverses it.
type CompleteAction uint8

const (
	CompletePreserve CompleteAction = iota // leave the node untouched (default)
	CompleteRemove                         // strip the node's animators; it becomes a delay
	CompleteDespawn                        // dispose the node and its subtree
)

// Movement is one leaf-local time window swept by the playhead during a
// single stage. Both offsets are in seconds within [0, leaf duration].
// Direction is carried by the playhead, not by the ordering of Start and End.
type Movement struct {
	Start float64
	End   float64
}

// EventType identifies a kind of animation event.
type EventType uint8

const (
	EventSequenceStarted   EventType = iota // the playhead left position zero
	EventSequenceCompleted                  // the playhead traversed the full tree
	EventMovementApplied                    // a leaf received a local movement
)

// AnimationEvent carries animation event data for external consumers.
// SequenceStarted and SequenceCompleted target the timeline's root node;
// MovementApplied targets the animated leaf, with the local window in
// Start and End.
type AnimationEvent struct {
	Type  EventType
	Node  *Node
	Start float64
	End   float64
}

// EventSink is the interface for optional event forwarding, e.g. into an ECS.
// When set on a Timeline, every emitted animation event is forwarded.
type EventSink interface {
	EmitEvent(event AnimationEvent)
}

// Sentinel errors returned by evaluation. Wrap checks should use errors.Is.
var (
	// ErrFieldMissing reports that a lens target lacks the expected
	// underlying field or type. Aborts that node's evaluation this tick only.
	ErrFieldMissing = errors.New("reel: target lacks expected field")

	// ErrMissingStartValue reports that a Keyframe animator could not resolve
	// an initial value from prior leaves or the live target field.
	ErrMissingStartValue = errors.New("reel: no start value available")

	// ErrBackwardParallel reports a backward sweep over a tree containing a
	// Parallel composition, which is not supported.
	ErrBackwardParallel = errors.New("reel: backward playback across parallel compositions is not supported")
)
