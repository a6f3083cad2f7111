package analysis

import (
	"fmt"
	"strings"

	"github.com/ib2756/MPO-calculation-for-CNS-targeting-compounds/internal/table"
)

// BenchmarkResult holds the benchmark selection, the thresholds taken from
// it, and the filtered output table.
type BenchmarkResult struct {
	Query string
	// Selection contains every row whose title matched the query, in table order.
	Selection *table.Table
	// ThresholdMPO and ThresholdDocking come from the first matching row that
	// has the respective aggregate set. When the query spans several distinct
	// groups these may come from different rows; within one pair they are
	// identical by construction.
	ThresholdMPO     float64
	ThresholdDocking float64
	// Filtered is the output table: rows strictly above both thresholds,
	// followed by the full selection, key columns first.
	Filtered *table.Table
	// AboveBoth counts distinct titles in the filtered set before the
	// selection is appended.
	AboveBoth int
}

// FilterByBenchmark selects benchmark rows by case-insensitive substring
// match on the title, takes their aggregates as thresholds, and builds the
// table of rows strictly exceeding both. The comparison is strict, so the
// benchmark's own rows are excluded from the filtered set and reappear only
// in the appended tail; neither is the tail deduplicated against the set.
//
// It returns ErrBenchmarkNotFound when nothing matched, and
// ErrBenchmarkNoAggregates when matches exist but none carries a usable
// aggregate value.
func FilterByBenchmark(t *table.Table, query string) (*BenchmarkResult, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil, fmt.Errorf("benchmark query is empty: %w", ErrBenchmarkNotFound)
	}

	selection := table.New(t.Columns...)
	for _, row := range t.Rows {
		if strings.Contains(strings.ToLower(row[ColTitle]), q) {
			selection.Append(row)
		}
	}
	if selection.Len() == 0 {
		return nil, fmt.Errorf("benchmark compound %q: %w", query, ErrBenchmarkNotFound)
	}

	res := &BenchmarkResult{Query: query, Selection: selection}
	haveMPO, haveDock := false, false
	for _, row := range selection.Rows {
		if v, ok := row.Float(ColAvgMPO); ok && !haveMPO {
			res.ThresholdMPO = v
			haveMPO = true
		}
		if v, ok := row.Float(ColAvgNormDocking); ok && !haveDock {
			res.ThresholdDocking = v
			haveDock = true
		}
		if haveMPO && haveDock {
			break
		}
	}
	if !haveMPO || !haveDock {
		return nil, fmt.Errorf("benchmark compound %q: %w", query, ErrBenchmarkNoAggregates)
	}

	filtered := table.New(t.Columns...)
	titles := make(map[string]struct{})
	for _, row := range t.Rows {
		mpo, okm := row.Float(ColAvgMPO)
		dock, okd := row.Float(ColAvgNormDocking)
		if okm && okd && mpo > res.ThresholdMPO && dock > res.ThresholdDocking {
			filtered.Append(row)
			titles[row[ColTitle]] = struct{}{}
		}
	}
	res.AboveBoth = len(titles)
	for _, row := range selection.Rows {
		filtered.Append(row)
	}
	res.Filtered = filtered.Front(ColTitle, ColAvgMPO, ColAvgNormDocking, ColNormDocking, ColRawDocking)
	return res, nil
}
