// Package frame provides a minimal, read-only tabular dataset: a fixed,
// ordered list of named float64 columns of equal length, addressable both
// by integer position and by name.
//
// What:
//
//   - Column: a (name, values) pair.
//   - Frame: an immutable ordered collection of Columns plus a name index.
//     Construction validates shape (equal lengths, unique non-empty names);
//     afterwards the frame never mutates, so concurrent readers are safe.
//   - ReadCSV / WriteCSV: ingest and egress of all-numeric CSV files with a
//     header row, configurable via functional options.
//
// Why:
//
//   - Decision-tree split references address columns by integer position
//     (tree.feature), while human-readable rule names need the column name —
//     Frame serves both lookups in O(1).
//   - Engineered feature columns produced downstream attach via WithColumns,
//     which returns a new frame and leaves the original untouched.
//
// Errors:
//
//   - ErrRaggedColumns     columns of differing lengths
//   - ErrEmptyColumnName   a column with an empty name
//   - ErrDuplicateColumn   two columns sharing a name
//   - ErrColumnRange       positional index out of bounds
//   - ErrUnknownColumn     name lookup miss
//   - ErrNotNumeric        a CSV cell failed float parsing
//   - ErrNoHeader          CSV input without a header row
//
// Complexity: all lookups O(1); CSV ingest O(rows·cols).
package frame
