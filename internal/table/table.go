// Package table holds the in-memory tabular model shared by every processing
// stage: an ordered column list plus rows keyed by column name. Column order
// is authoritative for output; row maps carry any extra input fields verbatim.
package table

import (
	"strconv"
	"strings"
)

// Row is a single record keyed by column name. A column absent from the map,
// or mapped to an empty string, is an unset value and never reads as zero.
type Row map[string]string

// Float returns the numeric value of col. The second return is false when the
// value is unset or not parseable as a float.
func (r Row) Float(col string) (float64, bool) {
	v, ok := r[col]
	if !ok {
		return 0, false
	}
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Clone returns an independent copy of the row.
func (r Row) Clone() Row {
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Table is an ordered sequence of rows with an explicit column order.
type Table struct {
	Columns []string
	Rows    []Row
}

// New returns an empty table with the given column order.
func New(columns ...string) *Table {
	return &Table{Columns: append([]string(nil), columns...)}
}

// HasColumn reports whether name is part of the column order.
func (t *Table) HasColumn(name string) bool {
	return t.ColumnIndex(name) >= 0
}

// ColumnIndex returns the position of name in the column order, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Append adds a row to the table.
func (t *Table) Append(r Row) {
	t.Rows = append(t.Rows, r)
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.Rows) }

// Clone returns a deep copy of the table; mutating the copy leaves the
// original untouched.
func (t *Table) Clone() *Table {
	out := &Table{
		Columns: append([]string(nil), t.Columns...),
		Rows:    make([]Row, len(t.Rows)),
	}
	for i, r := range t.Rows {
		out.Rows[i] = r.Clone()
	}
	return out
}

// withColumns returns a shallow view of t (shared row maps) under a new
// column order. Stages that only reorder or reselect columns use this to
// avoid copying row data.
func (t *Table) withColumns(columns []string) *Table {
	return &Table{Columns: columns, Rows: append([]Row(nil), t.Rows...)}
}

// FormatFloat renders a float the way derived columns are written: shortest
// round-trip representation, or a fixed precision when prec >= 0.
func FormatFloat(v float64, prec int) string {
	return strconv.FormatFloat(v, 'g', prec, 64)
}
