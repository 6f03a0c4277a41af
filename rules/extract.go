package rules

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gregtam/rulefit-feature-generator/frame"
	"github.com/gregtam/rulefit-feature-generator/tree"
)

// minPathNodes is the exclusive lower bound on the node-index path length for
// a node to materialize a rule: only paths of 3+ nodes (2+ ancestor splits)
// qualify. One-split paths duplicate the raw single-threshold comparison the
// input column already implies, so they are skipped.
const minPathNodes = 2

// conjunctSep joins the per-split comparison strings of a rule name.
const conjunctSep = " & "

// extractor carries the per-invocation traversal state.
type extractor struct {
	tree  *tree.Tree   // read-only fitted tree
	frame *frame.Frame // read-only dataset
	set   *RuleSet     // output accumulator
}

// Extract walks t depth-first in preorder and returns the RuleSet of all
// qualifying paths evaluated against f. It is a pure function of its inputs:
// repeated calls yield bit-identical results, and concurrent calls sharing
// the same tree and frame are safe.
//
// Degenerate inputs — an empty tree, a root that is itself a leaf, or a frame
// with zero columns or zero rows — yield an empty RuleSet and no error.
//
// Returns ErrTreeNil or ErrFrameNil on nil inputs, ErrFeatureRange when a
// split references a column f does not have.
func Extract(t *tree.Tree, f *frame.Frame) (*RuleSet, error) {
	// 1. Validate inputs.
	if t == nil {
		return nil, ErrTreeNil
	}
	if f == nil {
		return nil, ErrFrameNil
	}

	set := newRuleSet()

	// 2. Degenerate inputs: nothing to enumerate, empty set is the answer.
	if t.NumNodes() == 0 || f.NumCols() == 0 || f.NumRows() == 0 {
		return set, nil
	}

	// 3. Traverse from the root with a fresh path accumulator.
	ex := &extractor{tree: t, frame: f, set: set}
	if err := ex.traverse(tree.Root, []int{tree.Root}, nil); err != nil {
		return nil, err
	}

	return set, nil
}

// traverse visits node in preorder. path holds the node indices from the root
// to node inclusive; dirs holds the branch directions taken along the way,
// one entry shorter than path. Each recursive branch receives its own copies
// of the accumulators so sibling subtrees never observe one another's state.
func (ex *extractor) traverse(node int, path []int, dirs []Direction) error {
	// 1. Materialize before descending: internal nodes only, and only once
	//    the path carries at least two ancestor splits.
	if !ex.tree.IsLeaf(node) && len(path) > minPathNodes {
		if err := ex.materialize(path, dirs); err != nil {
			return err
		}
	}

	// 2. Left child first, then right; any negative index means no child.
	if left := ex.tree.ChildrenLeft[node]; left >= 0 {
		if err := ex.traverse(left, branchPath(path, left), branchDirs(dirs, Left)); err != nil {
			return err
		}
	}
	if right := ex.tree.ChildrenRight[node]; right >= 0 {
		if err := ex.traverse(right, branchPath(path, right), branchDirs(dirs, Right)); err != nil {
			return err
		}
	}

	return nil
}

// materialize turns the accumulated path into one (name, mask) entry.
// The split-defining nodes are every path entry except the final one — the
// current node's own split is not part of its rule — so position i pairs
// path[i] with dirs[i].
func (ex *extractor) materialize(path []int, dirs []Direction) error {
	rows := ex.frame.NumRows()

	// Start all-true so each conjunct ANDs in.
	mask := make([]bool, rows)
	for r := range mask {
		mask[r] = true
	}

	conjuncts := make([]string, len(dirs))

	var (
		node      int
		featIdx   int
		threshold float64
		col       frame.Column
		err       error
	)
	for i := range dirs {
		node = path[i]
		featIdx = ex.tree.Feature[node]
		threshold = ex.tree.Threshold[node]

		// Fail loudly on a tree fitted against a different dataset.
		if featIdx < 0 || featIdx >= ex.frame.NumCols() {
			return fmt.Errorf("node %d references feature %d of %d columns: %w",
				node, featIdx, ex.frame.NumCols(), ErrFeatureRange)
		}
		if col, err = ex.frame.Col(featIdx); err != nil {
			return err
		}

		switch dirs[i] {
		case Left:
			for r := 0; r < rows; r++ {
				mask[r] = mask[r] && col.Values[r] <= threshold
			}
		case Right:
			for r := 0; r < rows; r++ {
				mask[r] = mask[r] && col.Values[r] > threshold
			}
		default:
			return fmt.Errorf("position %d holds %d: %w", i, dirs[i], ErrBadDirection)
		}

		conjuncts[i] = col.Name + " " + dirs[i].String() + " " + formatThreshold(threshold)
	}

	ex.set.add(strings.Join(conjuncts, conjunctSep), mask)

	return nil
}

// branchPath returns a fresh copy of path with child appended. Copying at
// every branch point keeps the left subtree's accumulator invisible to the
// right subtree.
func branchPath(path []int, child int) []int {
	next := make([]int, len(path), len(path)+1)
	copy(next, path)

	return append(next, child)
}

// branchDirs returns a fresh copy of dirs with d appended.
func branchDirs(dirs []Direction, d Direction) []Direction {
	next := make([]Direction, len(dirs), len(dirs)+1)
	copy(next, dirs)

	return append(next, d)
}

// formatThreshold renders a split threshold in Go's default shortest exact
// form ('g', -1), deterministic across runs for identical values.
func formatThreshold(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
