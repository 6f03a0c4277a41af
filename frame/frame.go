package frame

import "fmt"

// New builds a Frame from the given columns, in order.
// It validates that every column has a non-empty, unique name and that all
// columns share the same length. Zero columns is a valid, degenerate frame.
//
// Returns ErrEmptyColumnName, ErrDuplicateColumn, or ErrRaggedColumns on
// violation.
func New(cols ...Column) (*Frame, error) {
	// 1. Build the name index, validating names as we go.
	index := make(map[string]int, len(cols))
	var c Column
	for i := range cols {
		c = cols[i]
		if c.Name == "" {
			return nil, fmt.Errorf("column %d: %w", i, ErrEmptyColumnName)
		}
		if _, dup := index[c.Name]; dup {
			return nil, fmt.Errorf("column %q: %w", c.Name, ErrDuplicateColumn)
		}
		index[c.Name] = i
	}

	// 2. Validate the shared row count against the first column.
	rows := 0
	if len(cols) > 0 {
		rows = len(cols[0].Values)
	}
	for i := range cols {
		if len(cols[i].Values) != rows {
			return nil, fmt.Errorf("column %q has %d rows, want %d: %w",
				cols[i].Name, len(cols[i].Values), rows, ErrRaggedColumns)
		}
	}

	return &Frame{cols: cols, index: index, rows: rows}, nil
}

// NumRows reports the shared row count of all columns.
func (f *Frame) NumRows() int { return f.rows }

// NumCols reports the number of columns.
func (f *Frame) NumCols() int { return len(f.cols) }

// Names returns the column names in frame order. The slice is a copy.
func (f *Frame) Names() []string {
	names := make([]string, len(f.cols))
	for i := range f.cols {
		names[i] = f.cols[i].Name
	}

	return names
}

// Col returns the column at position i.
// Returns ErrColumnRange if i is out of bounds.
func (f *Frame) Col(i int) (Column, error) {
	if i < 0 || i >= len(f.cols) {
		return Column{}, fmt.Errorf("index %d of %d columns: %w", i, len(f.cols), ErrColumnRange)
	}

	return f.cols[i], nil
}

// ColByName returns the column with the given name.
// Returns ErrUnknownColumn if no such column exists.
func (f *Frame) ColByName(name string) (Column, error) {
	i, ok := f.index[name]
	if !ok {
		return Column{}, fmt.Errorf("%q: %w", name, ErrUnknownColumn)
	}

	return f.cols[i], nil
}

// WithColumns returns a new Frame holding this frame's columns followed by
// the given extra columns. The receiver is left untouched. The extra columns
// are validated against the frame's row count and existing names.
func (f *Frame) WithColumns(cols ...Column) (*Frame, error) {
	merged := make([]Column, 0, len(f.cols)+len(cols))
	merged = append(merged, f.cols...)
	merged = append(merged, cols...)

	return New(merged...)
}
