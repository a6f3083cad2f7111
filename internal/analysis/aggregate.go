package analysis

import (
	"math"

	"github.com/ib2756/MPO-calculation-for-CNS-targeting-compounds/internal/table"
)

// AggregatePairs groups rows by title and, for every group of exactly two
// rows, computes the mean and absolute difference of the MPO score and of the
// normalized docking score. Both pair members receive identical derived
// values, as fresh row copies. Groups of any other size pass through
// unchanged with the derived columns unset.
//
// Row order in the result is group by group in first-seen order, members in
// their original relative order. The four derived columns are appended to the
// column list once; re-aggregating an already aggregated table overwrites
// them in place.
//
// prec controls how derived floats are rendered (-1 for shortest round-trip).
func AggregatePairs(t *table.Table, prec int) *table.Table {
	order := make([]string, 0, t.Len())
	groups := make(map[string][]table.Row, t.Len())
	for _, row := range t.Rows {
		title := row[ColTitle]
		if _, seen := groups[title]; !seen {
			order = append(order, title)
		}
		groups[title] = append(groups[title], row)
	}

	cols := append([]string(nil), t.Columns...)
	for _, c := range derivedColumns() {
		if t.HasColumn(c) {
			continue
		}
		cols = append(cols, c)
	}

	out := table.New(cols...)
	for _, title := range order {
		members := groups[title]
		if len(members) != 2 {
			for _, row := range members {
				out.Append(row)
			}
			continue
		}
		first, second := members[0].Clone(), members[1].Clone()
		for _, pair := range [2]table.Row{first, second} {
			setPairStats(pair, members[0], members[1], ColMPOScore, ColAvgMPO, ColDeltaMPO, prec)
			setPairStats(pair, members[0], members[1], ColNormDocking, ColAvgNormDocking, ColDeltaNormDocking, prec)
		}
		out.Append(first)
		out.Append(second)
	}
	return out
}

// setPairStats writes avg and delta of metric over the pair (a, b) into dst.
// Metrics are independent: when either member's value is unset the derived
// fields for that metric stay unset rather than collapsing to zero.
func setPairStats(dst, a, b table.Row, metric, avgCol, deltaCol string, prec int) {
	va, oka := a.Float(metric)
	vb, okb := b.Float(metric)
	if !oka || !okb {
		dst[avgCol] = ""
		dst[deltaCol] = ""
		return
	}
	dst[avgCol] = table.FormatFloat((va+vb)/2, prec)
	dst[deltaCol] = table.FormatFloat(math.Abs(va-vb), prec)
}
