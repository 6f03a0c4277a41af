package frame

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadCSV ingests an all-numeric CSV stream into a Frame.
// The first record is the header row and supplies column names; every
// subsequent cell must parse as float64.
//
// Returns ErrNoHeader on empty input, ErrNotNumeric (wrapped with row and
// column position) on a cell that fails parsing, and the frame construction
// sentinels on invalid headers.
func ReadCSV(r io.Reader, opts ...Option) (*Frame, error) {
	// 1. Apply options.
	o := defaultCSVOptions()
	var fn Option
	for _, fn = range opts {
		fn(&o)
	}

	cr := csv.NewReader(r)
	cr.Comma = o.comma

	// 2. Read the header row.
	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("frame: read header: %w", err)
	}

	cols := make([]Column, len(header))
	var name string
	for i := range header {
		name = header[i]
		if o.trimSpace {
			name = strings.TrimSpace(name)
		}
		cols[i] = Column{Name: name}
	}

	// 3. Read and parse data rows until EOF.
	var (
		record []string
		cell   string
		v      float64
		row    int
	)
	for {
		record, err = cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("frame: read row %d: %w", row, err)
		}
		for i := range record {
			cell = record[i]
			if o.trimSpace {
				cell = strings.TrimSpace(cell)
			}
			v, err = strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d, column %q, cell %q: %w",
					row, cols[i].Name, cell, ErrNotNumeric)
			}
			cols[i].Values = append(cols[i].Values, v)
		}
		row++
	}

	// 4. Validate shape and build the frame.
	return New(cols...)
}

// WriteCSV writes the frame as CSV: one header row of column names followed
// by one record per row. Values are rendered with strconv.FormatFloat in
// 'g' format, the same deterministic form used by rule names.
func WriteCSV(w io.Writer, f *Frame) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(f.Names()); err != nil {
		return fmt.Errorf("frame: write header: %w", err)
	}

	record := make([]string, f.NumCols())
	for r := 0; r < f.NumRows(); r++ {
		for c := range f.cols {
			record[c] = strconv.FormatFloat(f.cols[c].Values[r], 'g', -1, 64)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("frame: write row %d: %w", r, err)
		}
	}

	cw.Flush()

	return cw.Error()
}
