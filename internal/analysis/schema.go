package analysis

import "github.com/ib2756/MPO-calculation-for-CNS-targeting-compounds/internal/table"

// RequireColumns verifies that the table carries every named column. It
// returns a *SchemaError listing all missing columns, not just the first, so
// a malformed export can be fixed in one round.
func RequireColumns(t *table.Table, cols ...string) error {
	var missing []string
	for _, c := range cols {
		if !t.HasColumn(c) {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return &SchemaError{Missing: missing}
	}
	return nil
}
