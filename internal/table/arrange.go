package table

import "fmt"

// ColumnError indicates that a column rearrangement referenced an anchor
// column that is not part of the table.
type ColumnError struct {
	Anchor string
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("anchor column %q not present in table", e.Anchor)
}

// Rearrangement describes a column reorder as a pure transform over the
// ordered column list: remove every Strip member that is present, then splice
// Insert immediately after Anchor, in the given order. Columns named by
// neither set keep their relative positions.
type Rearrangement struct {
	Strip  []string
	Insert []string
	Anchor string
}

// Rearrange applies r to the table's column order and returns a reordered
// view. Row content is untouched; only the column order changes. It returns a
// *ColumnError when the anchor column is missing after stripping.
func (t *Table) Rearrange(r Rearrangement) (*Table, error) {
	strip := make(map[string]struct{}, len(r.Strip))
	for _, c := range r.Strip {
		strip[c] = struct{}{}
	}
	kept := make([]string, 0, len(t.Columns))
	for _, c := range t.Columns {
		if _, drop := strip[c]; drop {
			continue
		}
		kept = append(kept, c)
	}
	anchor := -1
	for i, c := range kept {
		if c == r.Anchor {
			anchor = i
			break
		}
	}
	if anchor < 0 {
		return nil, &ColumnError{Anchor: r.Anchor}
	}
	cols := make([]string, 0, len(kept)+len(r.Insert))
	cols = append(cols, kept[:anchor+1]...)
	cols = append(cols, r.Insert...)
	cols = append(cols, kept[anchor+1:]...)
	return t.withColumns(cols), nil
}

// Front returns a view with the named columns first, in the given order, and
// every remaining column after them in its prior relative order. Names not
// present in the table are skipped.
func (t *Table) Front(names ...string) *Table {
	lead := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		if t.HasColumn(n) {
			lead = append(lead, n)
			seen[n] = struct{}{}
		}
	}
	cols := make([]string, 0, len(t.Columns))
	cols = append(cols, lead...)
	for _, c := range t.Columns {
		if _, ok := seen[c]; ok {
			continue
		}
		cols = append(cols, c)
	}
	return t.withColumns(cols)
}
