package dataset

import (
	"slices"

	"github.com/matzehuels/seasonviz/pkg/errors"
)

// Table is a labelled grid of preformatted cells.
type Table struct {
	Columns []string   `json:"columns" toml:"columns"`
	Rows    [][]string `json:"rows" toml:"rows"`
}

// Empty reports whether the table has no body rows.
func (t Table) Empty() bool { return len(t.Rows) == 0 }

// Column returns the index of the named column, or -1.
func (t Table) Column(name string) int {
	return slices.Index(t.Columns, name)
}

// RowsWhere returns the indices of body rows whose cell in column equals
// value.
func (t Table) RowsWhere(column, value string) []int {
	j := t.Column(column)
	if j < 0 {
		return nil
	}
	var out []int
	for i, row := range t.Rows {
		if j < len(row) && row[j] == value {
			out = append(out, i)
		}
	}
	return out
}

// Validate checks that every row has exactly one cell per column.
func (t Table) Validate(name string) error {
	if len(t.Rows) > 0 && len(t.Columns) == 0 {
		return errors.New(errors.ErrCodeInvalidDataset, "%s: rows without column headers", name)
	}
	for i, row := range t.Rows {
		if len(row) != len(t.Columns) {
			return errors.New(errors.ErrCodeInvalidDataset,
				"%s: row %d has %d cells, want %d", name, i+1, len(row), len(t.Columns))
		}
	}
	return nil
}
