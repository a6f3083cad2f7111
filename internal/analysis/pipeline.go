package analysis

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/ib2756/MPO-calculation-for-CNS-targeting-compounds/internal/table"
)

var validate = validator.New()

// Options configures a single processing run.
type Options struct {
	// BenchmarkQuery is matched case-insensitively as a substring of titles.
	BenchmarkQuery string `validate:"required"`
	// FloatPrecision controls rendering of derived floats; -1 means shortest
	// round-trip representation.
	FloatPrecision int `validate:"gte=-1,lte=17"`
	// Logger receives debug-level stage diagnostics. Nil means no logging.
	Logger *zap.Logger `validate:"-"`
}

// Result carries every derived view of one run.
type Result struct {
	// Aggregated is the input extended with the per-pair derived columns.
	Aggregated *table.Table
	// SortedByMPO is the full table, MPO-first column order, descending Avg_MPO.
	SortedByMPO *table.Table
	// SortedByDocking is the full table, docking-first column order,
	// descending Avg_norm_docking.
	SortedByDocking *table.Table
	// Benchmark is nil when the query produced no usable benchmark; the
	// cause is then in BenchmarkErr.
	Benchmark *BenchmarkResult
	// BenchmarkErr is the soft failure from benchmark selection, wrapping
	// ErrBenchmarkNotFound or ErrBenchmarkNoAggregates, or nil.
	BenchmarkErr error
}

// Run executes the whole pipeline over one in-memory table: schema check,
// pair aggregation, the two ranked views, and the benchmark filter. Schema
// and column errors abort the run; a benchmark miss is recorded on the
// result and the ranked views are still returned.
func Run(t *table.Table, opts Options) (*Result, error) {
	if err := validate.Struct(opts); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	if err := RequireColumns(t, RequiredColumns()...); err != nil {
		return nil, err
	}

	agg := AggregatePairs(t, opts.FloatPrecision)
	log.Debug("aggregated pairs", zap.Int("rows", agg.Len()), zap.Int("columns", len(agg.Columns)))

	byMPO, err := agg.Rearrange(mpoFirstRearrangement())
	if err != nil {
		return nil, fmt.Errorf("arrange MPO view: %w", err)
	}
	byDock, err := agg.Rearrange(dockingFirstRearrangement())
	if err != nil {
		return nil, fmt.Errorf("arrange docking view: %w", err)
	}

	res := &Result{
		Aggregated:      agg,
		SortedByMPO:     byMPO.SortByDesc(ColAvgMPO),
		SortedByDocking: byDock.SortByDesc(ColAvgNormDocking),
	}

	bench, err := FilterByBenchmark(agg, opts.BenchmarkQuery)
	switch {
	case err == nil:
		res.Benchmark = bench
		log.Debug("benchmark selected",
			zap.String("query", opts.BenchmarkQuery),
			zap.Int("matches", bench.Selection.Len()),
			zap.Float64("threshold_mpo", bench.ThresholdMPO),
			zap.Float64("threshold_docking", bench.ThresholdDocking))
	case errors.Is(err, ErrBenchmarkNotFound) || errors.Is(err, ErrBenchmarkNoAggregates):
		res.BenchmarkErr = err
		log.Debug("benchmark miss", zap.String("query", opts.BenchmarkQuery), zap.Error(err))
	default:
		return nil, err
	}
	return res, nil
}
