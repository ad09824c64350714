// Package dataframe provides the minimal in-memory table the loaders
// and transforms operate on: ordered columns and rows keyed by column
// name, with nil as the missing value.
package dataframe

import (
	"fmt"
	"slices"
	"strings"
)

// Row is one labeled record. Cells hold scalars; nil marks a missing
// value.
type Row map[string]any

// Get returns the cell for a column. The second return is false when
// the column is absent or the cell is nil.
func (r Row) Get(column string) (any, bool) {
	value, ok := r[column]
	if !ok || value == nil {
		return nil, false
	}
	return value, true
}

// Clone returns a shallow copy of the row.
func (r Row) Clone() Row {
	clone := make(Row, len(r))
	for key, value := range r {
		clone[key] = value
	}
	return clone
}

// Frame is an ordered collection of rows sharing a column set.
type Frame struct {
	columns []string
	rows    []Row
}

// New creates an empty frame with the given column order.
func New(columns ...string) *Frame {
	return &Frame{columns: slices.Clone(columns)}
}

// FromRecords builds a frame from positional records matching the
// column order.
func FromRecords(columns []string, records [][]any) (*Frame, error) {
	frame := New(columns...)
	for i, record := range records {
		if len(record) != len(columns) {
			return nil, fmt.Errorf("dataframe: record %d has %d cells, want %d", i, len(record), len(columns))
		}
		row := make(Row, len(columns))
		for j, column := range columns {
			row[column] = record[j]
		}
		frame.rows = append(frame.rows, row)
	}
	return frame, nil
}

// Columns returns the column order.
func (f *Frame) Columns() []string {
	return slices.Clone(f.columns)
}

// HasColumn reports whether the frame declares the column.
func (f *Frame) HasColumn(name string) bool {
	return slices.Contains(f.columns, name)
}

// Len returns the number of rows.
func (f *Frame) Len() int {
	return len(f.rows)
}

// Row returns the row at index i.
func (f *Frame) Row(i int) Row {
	return f.rows[i]
}

// Rows returns the backing row slice. Mutating a row mutates the frame.
func (f *Frame) Rows() []Row {
	return f.rows
}

// Append adds a row. Cells for undeclared columns are allowed; they
// stay invisible until the column is added.
func (f *Frame) Append(row Row) {
	f.rows = append(f.rows, row)
}

// Column returns the cells of one column in row order.
func (f *Frame) Column(name string) []any {
	values := make([]any, len(f.rows))
	for i, row := range f.rows {
		values[i] = row[name]
	}
	return values
}

// AddColumn declares a new column and assigns its cells in row order.
func (f *Frame) AddColumn(name string, values []any) error {
	if len(values) != len(f.rows) {
		return fmt.Errorf("dataframe: column %s has %d values, want %d", name, len(values), len(f.rows))
	}
	if !f.HasColumn(name) {
		f.columns = append(f.columns, name)
	}
	for i, row := range f.rows {
		row[name] = values[i]
	}
	return nil
}

// Filter returns a new frame keeping the rows the predicate accepts.
// Rows are shared, not copied.
func (f *Frame) Filter(keep func(Row) bool) *Frame {
	filtered := New(f.columns...)
	for _, row := range f.rows {
		if keep(row) {
			filtered.rows = append(filtered.rows, row)
		}
	}
	return filtered
}

// StripWhitespace trims leading and trailing whitespace from string
// cells in the named columns, leaving interior whitespace and
// non-string cells untouched.
func StripWhitespace(f *Frame, columns []string) *Frame {
	for _, row := range f.rows {
		for _, column := range columns {
			if text, ok := row[column].(string); ok {
				row[column] = strings.TrimSpace(text)
			}
		}
	}
	return f
}
