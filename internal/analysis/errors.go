package analysis

import (
	"errors"
	"fmt"
	"strings"
)

// Soft failures during benchmark selection. The ranked outputs are still
// valid when either is returned; only the filtered output is skipped.
var (
	// ErrBenchmarkNotFound indicates the benchmark query matched no compound title.
	ErrBenchmarkNotFound = errors.New("benchmark compound not found")
	// ErrBenchmarkNoAggregates indicates the query matched rows, but none of
	// them carries pair aggregates to compare against.
	ErrBenchmarkNoAggregates = errors.New("benchmark rows carry no pair aggregates")
)

// SchemaError reports every required column missing from an input table.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Missing, ", "))
}
