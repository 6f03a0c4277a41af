package tree

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
)

// Parse decodes a YAML document into a Tree and validates it.
//
// Expected shape:
//
//	children_left:  [1, -1, 3, -1, -1]
//	children_right: [2, -1, 4, -1, -1]
//	feature:        [0, -2, 1, -2, -2]
//	threshold:      [5, 0, 10, 0, 0]
func Parse(data []byte) (*Tree, error) {
	var t Tree
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("tree: decode yaml: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}

	return &t, nil
}

// Load reads all of r and parses it as a YAML tree document.
func Load(r io.Reader) (*Tree, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("tree: read: %w", err)
	}

	return Parse(data)
}
