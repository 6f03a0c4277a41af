package rules_test

import (
	"fmt"

	"github.com/gregtam/rulefit-feature-generator/frame"
	"github.com/gregtam/rulefit-feature-generator/rules"
	"github.com/gregtam/rulefit-feature-generator/tree"
)

// ExampleExtract walks a small fitted tree over a three-row dataset.
//
// The tree splits on age at 35, then (for age > 35) on income at 45, then
// once more on income at 70. Only the deepest internal node has two or more
// ancestor splits, so exactly one rule comes out.
func ExampleExtract() {
	f, _ := frame.New(
		frame.Column{Name: "age", Values: []float64{25, 40, 60}},
		frame.Column{Name: "income", Values: []float64{20, 50, 80}},
	)

	t := &tree.Tree{
		ChildrenLeft:  []int{1, -1, 3, -1, 5, -1, -1},
		ChildrenRight: []int{2, -1, 4, -1, 6, -1, -1},
		Feature:       []int{0, -2, 1, -2, 1, -2, -2},
		Threshold:     []float64{35, 0, 45, 0, 70, 0, 0},
	}

	rs, _ := rules.Extract(t, f)
	for _, r := range rs.Rules() {
		fmt.Println(r.Name, r.Mask)
	}
	// Output:
	// age > 35 & income > 45 [false true true]
}
