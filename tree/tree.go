package tree

import (
	"errors"
	"fmt"
)

// Root is the node index traversals start from.
const Root = 0

// NoChild is the canonical sentinel emitters use for "no child".
// Readers must treat ANY negative child index as absent, not just -1.
const NoChild = -1

// Sentinel errors for tree validation.
var (
	// ErrLengthMismatch indicates parallel arrays of differing lengths.
	ErrLengthMismatch = errors.New("tree: parallel arrays must have equal length")

	// ErrChildRange indicates a non-negative child index outside [0, NumNodes).
	ErrChildRange = errors.New("tree: child index out of range")
)

// Tree is a fitted binary decision tree as four parallel arrays indexed by
// node id. It is a plain read-only value: nothing in this package mutates a
// Tree after construction, so sharing one across goroutines is safe.
type Tree struct {
	// ChildrenLeft holds, per node, the left child index or a negative sentinel.
	ChildrenLeft []int `yaml:"children_left"`

	// ChildrenRight holds, per node, the right child index or a negative sentinel.
	ChildrenRight []int `yaml:"children_right"`

	// Feature holds, per node, the dataset column index the node splits on.
	// Meaningless for leaves.
	Feature []int `yaml:"feature"`

	// Threshold holds, per node, the real-valued split point.
	// Rows with column value <= threshold go left, the rest go right.
	Threshold []float64 `yaml:"threshold"`
}

// NumNodes reports the number of nodes in the tree.
func (t *Tree) NumNodes() int { return len(t.ChildrenLeft) }

// IsLeaf reports whether node i has no children.
func (t *Tree) IsLeaf(i int) bool {
	return t.ChildrenLeft[i] < 0 && t.ChildrenRight[i] < 0
}

// Validate checks structural well-formedness: all four arrays share one
// length, and every non-negative child index is in range. An empty tree is
// valid. Acyclicity is NOT checked; a malformed back-reference is undefined
// behavior for consumers.
func (t *Tree) Validate() error {
	// 1. Parallel arrays must agree on the node count.
	n := len(t.ChildrenLeft)
	if len(t.ChildrenRight) != n || len(t.Feature) != n || len(t.Threshold) != n {
		return fmt.Errorf("children_left=%d children_right=%d feature=%d threshold=%d: %w",
			len(t.ChildrenLeft), len(t.ChildrenRight), len(t.Feature), len(t.Threshold),
			ErrLengthMismatch)
	}

	// 2. Every declared child must be a real node.
	for i := 0; i < n; i++ {
		if c := t.ChildrenLeft[i]; c >= n {
			return fmt.Errorf("node %d left child %d of %d nodes: %w", i, c, n, ErrChildRange)
		}
		if c := t.ChildrenRight[i]; c >= n {
			return fmt.Errorf("node %d right child %d of %d nodes: %w", i, c, n, ErrChildRange)
		}
	}

	return nil
}
