package reel

import (
	"fmt"
	"os"
	"time"
)

// debugStats holds per-update trace and apply metrics.
// Only populated when Timeline.debug is true.
type debugStats struct {
	traceTime  time.Duration
	applyTime  time.Duration
	stageCount int
	stepCount  int
}

// debugLog prints trace and stage stats to stderr.
func (tl *Timeline) debugLog(stats debugStats) {
	if !tl.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[reel] trace: %v | apply: %v | stages: %d | steps: %d | playhead: %.4f\n",
		stats.traceTime, stats.applyTime, stats.stageCount, stats.stepCount, tl.head.Position())
}

// debugCheckDisposed panics with a descriptive message when a disposed node
// is used in a tree operation. Only called when the node's tree is in debug
// mode; in release mode callers skip this entirely.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("reel debug: %s on disposed node %q (ID was %d)", op, n.Name, n.ID))
	}
}

// debugCheckTreeDepth warns on stderr if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[reel] warning: tree depth %d exceeds %d (node %q)\n",
			depth, debugMaxTreeDepth, n.Name)
	}
}

// debugCheckChildCount warns on stderr if a node has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		_, _ = fmt.Fprintf(os.Stderr, "[reel] warning: node %q has %d children (threshold %d)\n",
			n.Name, len(n.children), debugMaxChildCount)
	}
}
