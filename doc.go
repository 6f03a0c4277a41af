// Package rulefit turns a fitted binary decision tree into named, composable
// boolean predicates ("rules") over a tabular dataset — the engineered
// features consumed by RuleFit-style rule-ensemble models.
//
// What you get:
//
//	frame/ — ordered, named float64 columns with position & name indexing,
//	         CSV ingest/egress, strict validation
//	tree/  — a read-only fitted tree as four parallel arrays
//	         (children_left, children_right, feature, threshold),
//	         negative child index = leaf, YAML ingest
//	rules/ — the core: preorder path enumeration + rule materialization,
//	         producing an ordered RuleSet of (name → boolean mask) pairs
//
// Why:
//
//   - Every root-to-node path of two or more splits becomes one conjunctive
//     predicate, e.g. "age > 35.5 & income <= 42000", evaluated row-wise
//     against the dataset.
//   - Rule masks convert directly into 0/1 feature columns, ready for a
//     downstream sparse linear model.
//
// The computation is a pure function of (tree, dataset): deterministic,
// single-threaded, safe to invoke concurrently on shared read-only inputs.
//
// Quick start:
//
//	f, _ := frame.ReadCSV(dataFile)
//	t, _ := tree.Load(treeFile)
//	rs, err := rules.Extract(t, f)
//	for _, r := range rs.Rules() {
//		fmt.Println(r.Name)
//	}
//
// A small CLI lives under cmd/rulegen for file-to-file generation.
package rulefit
