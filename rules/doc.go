// Package rules implements the core of the feature generator: it walks a
// fitted decision tree depth-first in preorder and materializes every
// qualifying root-to-node path into a named boolean predicate over a dataset.
//
// What:
//
//   - Extract(t, f): enumerate all root-to-node paths of a binary tree.
//     Each internal (non-leaf) node whose node-index path is longer than two
//     entries — i.e. at least two ancestor splits — yields one rule BEFORE
//     its children are visited (preorder, left before right).
//   - A rule's mask marks, per dataset row, whether the row satisfies every
//     split on the path: column <= threshold for a left edge, column >
//     threshold for a right edge, AND-combined in root-to-node order.
//   - A rule's name is the same conjunction rendered as text, e.g.
//     "age > 35.5 & income <= 42000", thresholds in strconv 'g' form,
//     conjuncts joined by " & ".
//   - RuleSet: the ordered name → mask mapping the traversal accumulates.
//     Two paths producing identical text overwrite: the later mask wins under
//     the shared name, which keeps its original position. This mirrors the
//     behavior of an ordered dictionary and is intentional, not guarded.
//
// Why:
//
//	Single-variable comparisons are already expressible by the raw input
//	columns, so paths of one split are skipped as redundant; everything
//	deeper becomes a composable engineered feature for a rule-ensemble
//	(RuleFit-style) linear model.
//
// Concurrency:
//
//	Extract is a pure function of (tree, frame). All mutable state — the
//	path accumulators and the output RuleSet — is local to one invocation,
//	so concurrent calls sharing the same read-only tree and frame are safe.
//	There is no cancellation: Extract runs to completion.
//
// Complexity: O(V·L·n) time where V = tree nodes, L = mean path length,
// n = dataset rows; O(H) extra memory for the recursion (H = tree height)
// plus the output masks.
//
// Errors:
//
//   - ErrTreeNil       nil tree
//   - ErrFrameNil      nil frame
//   - ErrFeatureRange  a split references a column the frame does not have
//   - ErrBadDirection  a branch direction outside {Left, Right}
package rules
