package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	cfgpkg "github.com/ib2756/MPO-calculation-for-CNS-targeting-compounds/internal/config"
)

var (
	// Global flags
	cfgFile string
	debug   bool

	// Loaded configuration
	cfg *cfgpkg.Global
	// Debug logger; nop unless --debug is set.
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "mpopair",
	Short: "mpopair: pairwise MPO and docking score comparator for compound pairs",
	Long: `mpopair post-processes docking-run exports of paired enantiomer/analog
compounds: per-pair average and delta of the MPO score and the normalized
docking score, two ranked output tables, and a benchmark-relative filtered
table of compounds that beat a reference compound on both metrics.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.mpopair/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
}

func loadConfig() {
	if debug {
		l, err := zap.NewDevelopment()
		if err == nil {
			logger = l
		}
	}
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: every setting has a flag or prompt fallback
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		return
	}
	cfg = c
}
