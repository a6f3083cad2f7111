package analysis

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ib2756/MPO-calculation-for-CNS-targeting-compounds/internal/table"
)

// OutputPaths names the files a run was written to. Filtered is empty when
// the benchmark was not found and no filtered file was produced.
type OutputPaths struct {
	SortedByMPO     string
	SortedByDocking string
	Filtered        string
}

// Report is the run summary: where each output went and how many distinct
// compounds crossed each benchmark threshold.
type Report struct {
	RunID string
	Query string
	Paths OutputPaths

	BenchmarkFound bool
	// AboveMPO and AboveDocking count distinct titles exceeding one
	// threshold; AboveBoth counts those exceeding both.
	AboveMPO     int
	AboveDocking int
	AboveBoth    int
}

// Summarize derives the report from a run result. Counts are zero when the
// benchmark was not found.
func Summarize(res *Result, paths OutputPaths) *Report {
	rep := &Report{RunID: uuid.NewString(), Paths: paths}
	if res.Benchmark == nil {
		return rep
	}
	b := res.Benchmark
	rep.Query = b.Query
	rep.BenchmarkFound = true
	rep.AboveMPO = countDistinctAbove(res.SortedByMPO, ColAvgMPO, b.ThresholdMPO)
	rep.AboveDocking = countDistinctAbove(res.SortedByDocking, ColAvgNormDocking, b.ThresholdDocking)
	rep.AboveBoth = b.AboveBoth
	return rep
}

func countDistinctAbove(t *table.Table, col string, threshold float64) int {
	titles := make(map[string]struct{})
	for _, row := range t.Rows {
		if v, ok := row.Float(col); ok && v > threshold {
			titles[row[ColTitle]] = struct{}{}
		}
	}
	return len(titles)
}

// Render formats the report as the console summary.
func (r *Report) Render() string {
	name := cases.Title(language.English).String(r.Query)
	var b strings.Builder
	b.WriteString("✓ Processing complete.\n")
	fmt.Fprintf(&b, "- File sorted by Avg MPO: %s\n", r.Paths.SortedByMPO)
	if r.BenchmarkFound {
		fmt.Fprintf(&b, "  → %d unique compounds exceeded %s's Avg MPO\n", r.AboveMPO, name)
	}
	fmt.Fprintf(&b, "- File sorted by Avg norm docking score: %s\n", r.Paths.SortedByDocking)
	if r.BenchmarkFound {
		fmt.Fprintf(&b, "  → %d unique compounds exceeded %s's Avg norm docking\n", r.AboveDocking, name)
	}
	if r.BenchmarkFound {
		fmt.Fprintf(&b, "- Compounds outperforming benchmark saved to: %s\n", r.Paths.Filtered)
		fmt.Fprintf(&b, "  → %d unique compounds exceeded %s on both metrics\n", r.AboveBoth, name)
	}
	return b.String()
}
