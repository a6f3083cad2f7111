// Package analysis implements the pairwise compound postprocessing: schema
// validation, per-pair aggregation of MPO and normalized docking scores,
// ranked and benchmark-filtered views, and the run summary.
package analysis

import "github.com/ib2756/MPO-calculation-for-CNS-targeting-compounds/internal/table"

// Input column contract. Any additional columns pass through verbatim.
const (
	ColTitle       = "Title"
	ColMPOScore    = "MPO_score"
	ColNormDocking = "norm_docking_score"
	ColRawDocking  = "docking score"
)

// Derived columns added by pair aggregation. The names match the ones the
// tool writes, so an output table can be re-ingested without changes.
const (
	ColAvgMPO           = "Avg_MPO"
	ColDeltaMPO         = "Delta_MPO"
	ColAvgNormDocking   = "Avg_norm_docking"
	ColDeltaNormDocking = "Delta_norm_docking"
)

// RequiredColumns lists the columns every input table must carry.
func RequiredColumns() []string {
	return []string{ColTitle, ColMPOScore, ColNormDocking, ColRawDocking}
}

func derivedColumns() []string {
	return []string{ColAvgMPO, ColDeltaMPO, ColAvgNormDocking, ColDeltaNormDocking}
}

// mpoFirstRearrangement groups the MPO aggregates directly after the title,
// followed by the docking aggregates, for the MPO-ranked output.
func mpoFirstRearrangement() table.Rearrangement {
	return table.Rearrangement{
		Strip: []string{
			ColAvgMPO, ColDeltaMPO, ColAvgNormDocking, ColDeltaNormDocking,
			ColMPOScore, ColNormDocking,
		},
		Insert: []string{
			ColAvgMPO, ColDeltaMPO, ColMPOScore,
			ColAvgNormDocking, ColDeltaNormDocking, ColNormDocking,
		},
		Anchor: ColTitle,
	}
}

// dockingFirstRearrangement leads with the docking aggregates, raw docking
// score included, then the MPO aggregates, for the docking-ranked output.
func dockingFirstRearrangement() table.Rearrangement {
	return table.Rearrangement{
		Strip: []string{
			ColAvgMPO, ColDeltaMPO, ColMPOScore,
			ColAvgNormDocking, ColDeltaNormDocking, ColNormDocking, ColRawDocking,
		},
		Insert: []string{
			ColAvgNormDocking, ColDeltaNormDocking, ColNormDocking, ColRawDocking,
			ColAvgMPO, ColDeltaMPO, ColMPOScore,
		},
		Anchor: ColTitle,
	}
}
