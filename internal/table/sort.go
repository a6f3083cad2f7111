package table

import "sort"

// SortByDesc returns a new table ordered descending by the numeric value of
// col. The sort is stable: rows with equal keys keep their input order, and
// rows whose key is unset (or not numeric) sort after every row with a set
// key, also in input order. The receiver is not mutated.
func (t *Table) SortByDesc(col string) *Table {
	out := t.withColumns(append([]string(nil), t.Columns...))
	sort.SliceStable(out.Rows, func(i, j int) bool {
		vi, oki := out.Rows[i].Float(col)
		vj, okj := out.Rows[j].Float(col)
		if oki && okj {
			return vi > vj
		}
		// A set key always ranks above an unset one.
		return oki && !okj
	})
	return out
}
