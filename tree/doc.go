// Package tree models a fitted binary decision tree in the four-parallel-array
// form used by common tree learners: per node index i, ChildrenLeft[i] and
// ChildrenRight[i] give the child node indices (any negative value means "no
// child"), Feature[i] names the dataset column the node splits on, and
// Threshold[i] carries the real-valued split point. Node 0 is the root; a node
// with both children negative is a leaf.
//
// What:
//
//   - Tree: the read-only parallel-array structure, YAML-taggable for ingest.
//   - Validate: structural checks — equal array lengths, in-range child
//     indices. Cycle detection is deliberately out of contract: a child index
//     pointing backward or upward is undefined behavior.
//   - Parse / Load: YAML decoding (goccy/go-yaml) followed by Validate.
//
// Why:
//
//	Rule extraction only ever reads the tree; keeping it a plain value type
//	with no behavior beyond validation makes sharing across concurrent
//	extractions trivially safe.
//
// Errors:
//
//   - ErrLengthMismatch  parallel arrays of differing lengths
//   - ErrChildRange      a non-negative child index outside [0, NumNodes)
//
// A degenerate tree (zero nodes, or a root that is itself a leaf) is valid
// and simply yields no rules downstream.
package tree
