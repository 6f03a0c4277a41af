package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testData = `age,income
25,20
40,50
60,80
`

const testTree = `
children_left:  [1, -1, 3, -1, 5, -1, -1]
children_right: [2, -1, 4, -1, 6, -1, -1]
feature:        [0, -2, 1, -2, 1, -2, -2]
threshold:      [35, 0, 45, 0, 70, 0, 0]
`

func writeInputs(t *testing.T) (dataPath, treePath, outPath string) {
	t.Helper()
	dir := t.TempDir()
	dataPath = filepath.Join(dir, "data.csv")
	treePath = filepath.Join(dir, "tree.yaml")
	outPath = filepath.Join(dir, "rules.csv")
	require.NoError(t, os.WriteFile(dataPath, []byte(testData), 0o644))
	require.NoError(t, os.WriteFile(treePath, []byte(testTree), 0o644))

	return dataPath, treePath, outPath
}

func TestRunGenerate_RulesOnly(t *testing.T) {
	dataPath, treePath, outPath := writeInputs(t)

	require.NoError(t, runGenerate(dataPath, treePath, outPath, false))

	out, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "age > 35 & income > 45\n0\n1\n1\n", string(out))
}

func TestRunGenerate_Append(t *testing.T) {
	dataPath, treePath, outPath := writeInputs(t)

	require.NoError(t, runGenerate(dataPath, treePath, outPath, true))

	out, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "age,income,age > 35 & income > 45\n25,20,0\n40,50,1\n60,80,1\n", string(out))
}

func TestRunGenerate_MissingData(t *testing.T) {
	_, treePath, outPath := writeInputs(t)
	assert.Error(t, runGenerate("no-such-file.csv", treePath, outPath, false))
}

func TestRunGenerate_BadTree(t *testing.T) {
	dataPath, _, outPath := writeInputs(t)
	dir := t.TempDir()
	badTree := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(badTree, []byte("children_left: [1]\nchildren_right: [2, 3]\n"), 0o644))

	assert.Error(t, runGenerate(dataPath, badTree, outPath, false))
}
