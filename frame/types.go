// Package frame defines the Column and Frame types, sentinel errors,
// and functional options for CSV ingestion.
package frame

import "errors"

// Sentinel errors for frame construction and lookups.
// All algorithms return these sentinels; callers match via errors.Is.
var (
	// ErrRaggedColumns indicates input columns of differing lengths.
	ErrRaggedColumns = errors.New("frame: columns must have equal length")

	// ErrEmptyColumnName indicates a column with an empty name.
	ErrEmptyColumnName = errors.New("frame: column name must be non-empty")

	// ErrDuplicateColumn indicates two columns sharing the same name.
	ErrDuplicateColumn = errors.New("frame: duplicate column name")

	// ErrColumnRange indicates a positional column index out of bounds.
	ErrColumnRange = errors.New("frame: column index out of range")

	// ErrUnknownColumn indicates a name lookup for a column that does not exist.
	ErrUnknownColumn = errors.New("frame: unknown column name")

	// ErrNotNumeric indicates a CSV cell that could not be parsed as float64.
	ErrNotNumeric = errors.New("frame: non-numeric cell")

	// ErrNoHeader indicates CSV input with no header row (empty input).
	ErrNoHeader = errors.New("frame: missing header row")
)

// Column is a single named sequence of real values.
type Column struct {
	// Name identifies the column; must be non-empty and unique within a Frame.
	Name string

	// Values holds one real value per dataset row.
	Values []float64
}

// Frame is a fixed, ordered list of equal-length Columns with a name index.
// A Frame is immutable after construction: accessors never mutate it, and
// WithColumns returns a new Frame. The Frame does not copy column slices;
// callers must not mutate slices they handed to New.
type Frame struct {
	cols  []Column       // ordered columns
	index map[string]int // name → position
	rows  int            // shared row count
}

// Option configures optional behavior of ReadCSV.
// Use with ReadCSV(r, opts...).
type Option func(*csvOptions)

// csvOptions holds configurable parameters for CSV ingestion.
type csvOptions struct {
	// comma is the field delimiter; defaults to ','.
	comma rune

	// trimSpace strips surrounding whitespace from header names and cells
	// before parsing. Default is true.
	trimSpace bool
}

// defaultCSVOptions returns the documented defaults: comma=',' and
// whitespace trimming enabled.
func defaultCSVOptions() csvOptions {
	return csvOptions{
		comma:     ',',
		trimSpace: true,
	}
}

// WithComma returns an Option that sets the CSV field delimiter.
// A zero rune has no effect (the default ',' is retained).
func WithComma(c rune) Option {
	return func(o *csvOptions) {
		if c != 0 {
			o.comma = c
		}
	}
}

// WithTrimSpace returns an Option that toggles whitespace trimming of
// header names and cells during CSV ingestion.
func WithTrimSpace(trim bool) Option {
	return func(o *csvOptions) {
		o.trimSpace = trim
	}
}
