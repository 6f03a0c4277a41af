// Package rules defines the Direction enum, the Rule and RuleSet output
// types, and the sentinel errors of the extraction core.
package rules

import (
	"errors"

	"github.com/gregtam/rulefit-feature-generator/frame"
)

// Sentinel errors for rule extraction. Contract violations (bad feature
// index, bad direction) surface immediately at the point of detection and
// abort the traversal; they are never swallowed.
var (
	// ErrTreeNil is returned when a nil *tree.Tree is passed to Extract.
	ErrTreeNil = errors.New("rules: tree is nil")

	// ErrFrameNil is returned when a nil *frame.Frame is passed to Extract.
	ErrFrameNil = errors.New("rules: frame is nil")

	// ErrFeatureRange indicates a split whose feature index is outside the
	// frame's column range — the tree was fitted on a different dataset.
	ErrFeatureRange = errors.New("rules: split feature index out of column range")

	// ErrBadDirection indicates a branch direction outside {Left, Right}.
	// A binary split tree has no third case; this is a programming error.
	ErrBadDirection = errors.New("rules: direction must be Left or Right")
)

// Direction identifies which branch of a binary split an edge took.
type Direction uint8

const (
	// Left is the branch taken when column value <= threshold.
	Left Direction = iota
	// Right is the branch taken when column value > threshold.
	Right
)

// String renders the direction's comparison operator: "<=" for Left,
// ">" for Right. Any other value renders as "?".
func (d Direction) String() string {
	switch d {
	case Left:
		return "<="
	case Right:
		return ">"
	default:
		return "?"
	}
}

// Rule is one materialized path: a canonical name and a boolean mask with
// one entry per dataset row, true iff the row satisfies every conjunct.
type Rule struct {
	Name string
	Mask []bool
}

// RuleSet is an ordered mapping from rule name to boolean mask, in preorder
// traversal insertion order. A name collision (two paths rendering identical
// text) keeps the FIRST insertion's position and the LAST insertion's mask.
type RuleSet struct {
	names []string
	masks map[string][]bool
}

// newRuleSet returns an empty RuleSet ready to accumulate one traversal.
func newRuleSet() *RuleSet {
	return &RuleSet{masks: make(map[string][]bool)}
}

// add inserts or overwrites a (name, mask) pair, preserving ordered-map
// position semantics on overwrite.
func (rs *RuleSet) add(name string, mask []bool) {
	if _, seen := rs.masks[name]; !seen {
		rs.names = append(rs.names, name)
	}
	rs.masks[name] = mask
}

// Len reports the number of distinct rules.
func (rs *RuleSet) Len() int { return len(rs.names) }

// Names returns the rule names in insertion order. The slice is a copy.
func (rs *RuleSet) Names() []string {
	names := make([]string, len(rs.names))
	copy(names, rs.names)

	return names
}

// Mask returns the boolean mask registered under name, and whether the name
// exists. The returned slice is the stored one; callers must not mutate it.
func (rs *RuleSet) Mask(name string) ([]bool, bool) {
	m, ok := rs.masks[name]

	return m, ok
}

// Rules returns all rules in insertion order.
func (rs *RuleSet) Rules() []Rule {
	out := make([]Rule, len(rs.names))
	for i, name := range rs.names {
		out[i] = Rule{Name: name, Mask: rs.masks[name]}
	}

	return out
}

// FeatureColumns renders every mask as a 0/1 float64 column named after its
// rule, in insertion order — directly attachable to a frame.Frame as
// engineered features.
func (rs *RuleSet) FeatureColumns() []frame.Column {
	cols := make([]frame.Column, len(rs.names))
	var mask []bool
	for i, name := range rs.names {
		mask = rs.masks[name]
		values := make([]float64, len(mask))
		for r := range mask {
			if mask[r] {
				values[r] = 1
			}
		}
		cols[i] = frame.Column{Name: name, Values: values}
	}

	return cols
}
