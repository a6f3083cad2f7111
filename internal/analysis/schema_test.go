package analysis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib2756/MPO-calculation-for-CNS-targeting-compounds/internal/analysis"
	"github.com/ib2756/MPO-calculation-for-CNS-targeting-compounds/internal/table"
)

func TestRequireColumnsOK(t *testing.T) {
	tb := table.New("Title", "MPO_score", "norm_docking_score", "docking score", "extra")
	assert.NoError(t, analysis.RequireColumns(tb, analysis.RequiredColumns()...))
}

func TestRequireColumnsListsEveryMissingColumn(t *testing.T) {
	tb := table.New("Title", "extra")
	err := analysis.RequireColumns(tb, analysis.RequiredColumns()...)

	var schemaErr *analysis.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, []string{"MPO_score", "norm_docking_score", "docking score"}, schemaErr.Missing)
	assert.Contains(t, err.Error(), "MPO_score")
	assert.Contains(t, err.Error(), "docking score")
}
