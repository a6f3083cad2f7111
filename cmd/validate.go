package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ib2756/MPO-calculation-for-CNS-targeting-compounds/internal/analysis"
	"github.com/ib2756/MPO-calculation-for-CNS-targeting-compounds/internal/csvio"
)

var validateCmd = &cobra.Command{
	Use:   "validate <input-file>",
	Short: "Check that an input table carries the required columns",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := csvio.Read(args[0])
		if err != nil {
			return err
		}
		if err := analysis.RequireColumns(t, analysis.RequiredColumns()...); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ %s: %d rows, %d columns, schema OK\n", args[0], t.Len(), len(t.Columns))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
