package rules_test

import (
	"strconv"
	"testing"

	"github.com/gregtam/rulefit-feature-generator/frame"
	"github.com/gregtam/rulefit-feature-generator/rules"
	"github.com/gregtam/rulefit-feature-generator/tree"
)

// buildBench constructs a complete binary tree of the given split depth over
// a dataset of rows rows and depth columns. Node i's children are 2i+1 and
// 2i+2; nodes in the last level are leaves.
func buildBench(depth, rows int) (*tree.Tree, *frame.Frame, error) {
	n := (1 << (depth + 1)) - 1
	t := &tree.Tree{
		ChildrenLeft:  make([]int, n),
		ChildrenRight: make([]int, n),
		Feature:       make([]int, n),
		Threshold:     make([]float64, n),
	}
	level := 0
	for i := 0; i < n; i++ {
		if i >= (1<<depth)-1 {
			t.ChildrenLeft[i] = -1
			t.ChildrenRight[i] = -1
			t.Feature[i] = -2
			continue
		}
		t.ChildrenLeft[i] = 2*i + 1
		t.ChildrenRight[i] = 2*i + 2
		if i+1 >= (1 << (level + 1)) {
			level++
		}
		t.Feature[i] = level % depth
		t.Threshold[i] = float64(i) / float64(n)
	}

	cols := make([]frame.Column, depth)
	for c := 0; c < depth; c++ {
		values := make([]float64, rows)
		for r := 0; r < rows; r++ {
			values[r] = float64(r) / float64(rows)
		}
		cols[c] = frame.Column{Name: "f" + strconv.Itoa(c), Values: values}
	}
	f, err := frame.New(cols...)

	return t, f, err
}

// benchmarkExtract runs Extract on a complete tree of the given depth.
func benchmarkExtract(b *testing.B, depth, rows int) {
	t, f, err := buildBench(depth, rows)
	if err != nil {
		b.Fatalf("setup failed: %v", err)
	}

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err = rules.Extract(t, f); err != nil {
			b.Fatalf("Extract failed: %v", err)
		}
	}
}

// BenchmarkExtract_Depth4 benchmarks a 31-node tree over 1k rows.
func BenchmarkExtract_Depth4(b *testing.B) {
	benchmarkExtract(b, 4, 1_000)
}

// BenchmarkExtract_Depth8 benchmarks a 511-node tree over 10k rows.
func BenchmarkExtract_Depth8(b *testing.B) {
	benchmarkExtract(b, 8, 10_000)
}
