package tree_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gregtam/rulefit-feature-generator/tree"
)

func validTree() *tree.Tree {
	return &tree.Tree{
		ChildrenLeft:  []int{1, -1, 3, -1, -1},
		ChildrenRight: []int{2, -1, 4, -1, -1},
		Feature:       []int{0, -2, 1, -2, -2},
		Threshold:     []float64{5, 0, 10, 0, 0},
	}
}

func TestValidate_OK(t *testing.T) {
	assert.NoError(t, validTree().Validate())
}

func TestValidate_EmptyTree(t *testing.T) {
	assert.NoError(t, (&tree.Tree{}).Validate())
}

func TestValidate_LengthMismatch(t *testing.T) {
	tr := validTree()
	tr.Threshold = tr.Threshold[:3]
	assert.ErrorIs(t, tr.Validate(), tree.ErrLengthMismatch)
}

func TestValidate_ChildOutOfRange(t *testing.T) {
	tr := validTree()
	tr.ChildrenRight[2] = 9
	assert.ErrorIs(t, tr.Validate(), tree.ErrChildRange)
}

func TestIsLeaf(t *testing.T) {
	tr := validTree()
	assert.False(t, tr.IsLeaf(0))
	assert.True(t, tr.IsLeaf(1))
	assert.True(t, tr.IsLeaf(4))
}

func TestIsLeaf_AnyNegativeSentinel(t *testing.T) {
	tr := &tree.Tree{
		ChildrenLeft:  []int{-5},
		ChildrenRight: []int{-3},
		Feature:       []int{-2},
		Threshold:     []float64{0},
	}
	require.NoError(t, tr.Validate())
	assert.True(t, tr.IsLeaf(0), "every negative child index denotes a leaf, not just -1")
}

func TestNumNodes(t *testing.T) {
	assert.Equal(t, 5, validTree().NumNodes())
	assert.Zero(t, (&tree.Tree{}).NumNodes())
}

const treeYAML = `
children_left:  [1, -1, 3, -1, -1]
children_right: [2, -1, 4, -1, -1]
feature:        [0, -2, 1, -2, -2]
threshold:      [5, 0, 10, 0, 0]
`

func TestParse_OK(t *testing.T) {
	tr, err := tree.Parse([]byte(treeYAML))
	require.NoError(t, err)
	assert.Equal(t, validTree(), tr)
}

func TestParse_Invalid(t *testing.T) {
	bad := strings.Replace(treeYAML, "[2, -1, 4, -1, -1]", "[2, -1, 4, -1]", 1)
	_, err := tree.Parse([]byte(bad))
	assert.ErrorIs(t, err, tree.ErrLengthMismatch)
}

func TestParse_BadYAML(t *testing.T) {
	_, err := tree.Parse([]byte("children_left: {not: a list}"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	tr, err := tree.Load(strings.NewReader(treeYAML))
	require.NoError(t, err)
	assert.Equal(t, 5, tr.NumNodes())
}
