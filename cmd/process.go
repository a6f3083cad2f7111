package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ib2756/MPO-calculation-for-CNS-targeting-compounds/internal/analysis"
	"github.com/ib2756/MPO-calculation-for-CNS-targeting-compounds/internal/csvio"
)

var (
	procBenchmark string
	procOutputDir string
	procPrecision int
)

var processCmd = &cobra.Command{
	Use:   "process [input-file]",
	Short: "Compute pair aggregates, ranked tables, and the benchmark-filtered table",
	Long: `Process reads a delimited compound table, computes per-pair average and
delta values for MPO_score and norm_docking_score, and writes three outputs
next to the input (or to --output-dir):

  Sorted_by_Avg_MPO.<ext>
  Sorted_by_Avg_normDocking.<ext>
  Above_<benchmark>_Compounds.<ext>

The input path and benchmark name are prompted for when not given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in := bufio.NewReader(cmd.InOrStdin())

		var inputPath string
		if len(args) == 1 {
			inputPath = args[0]
		} else {
			p, err := promptLine(cmd.OutOrStdout(), in, "Enter the full path to the input CSV file: ")
			if err != nil {
				return err
			}
			inputPath = cleanInputPath(p)
		}
		if inputPath == "" {
			return fmt.Errorf("no input file given")
		}

		benchmark := strings.TrimSpace(procBenchmark)
		if benchmark == "" && cfg != nil {
			benchmark = strings.TrimSpace(cfg.DefaultBenchmark)
		}
		if benchmark == "" {
			b, err := promptLine(cmd.OutOrStdout(), in, "Enter the benchmark compound name (e.g., cariprazine): ")
			if err != nil {
				return err
			}
			benchmark = strings.TrimSpace(b)
		}
		benchmark = strings.ToLower(benchmark)

		prec := procPrecision
		if !cmd.Flags().Changed("precision") && cfg != nil {
			prec = cfg.FloatPrecision
		}

		t, err := csvio.Read(inputPath)
		if err != nil {
			return err
		}
		res, err := analysis.Run(t, analysis.Options{
			BenchmarkQuery: benchmark,
			FloatPrecision: prec,
			Logger:         logger,
		})
		if err != nil {
			return err
		}

		outDir := procOutputDir
		if outDir == "" && cfg != nil {
			outDir = cfg.OutputDir
		}
		if outDir == "" {
			outDir = filepath.Dir(inputPath)
		}
		ext := filepath.Ext(inputPath)
		if ext == "" {
			ext = ".csv"
		}

		paths := analysis.OutputPaths{
			SortedByMPO:     filepath.Join(outDir, "Sorted_by_Avg_MPO"+ext),
			SortedByDocking: filepath.Join(outDir, "Sorted_by_Avg_normDocking"+ext),
		}
		if err := csvio.Write(paths.SortedByMPO, res.SortedByMPO); err != nil {
			return err
		}
		if err := csvio.Write(paths.SortedByDocking, res.SortedByDocking); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if res.BenchmarkErr != nil {
			if errors.Is(res.BenchmarkErr, analysis.ErrBenchmarkNoAggregates) {
				fmt.Fprintf(out, "\n⚠ Benchmark compound '%s' matched only rows without pair aggregates.\n", benchmark)
			} else {
				fmt.Fprintf(out, "\n⚠ Benchmark compound '%s' not found.\n", benchmark)
			}
			rep := analysis.Summarize(res, paths)
			fmt.Fprint(out, rep.Render())
			return nil
		}

		paths.Filtered = filepath.Join(outDir, "Above_"+benchmark+"_Compounds"+ext)
		if err := csvio.Write(paths.Filtered, res.Benchmark.Filtered); err != nil {
			return err
		}

		rep := analysis.Summarize(res, paths)
		fmt.Fprint(out, "\n"+rep.Render())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(processCmd)
	processCmd.Flags().StringVarP(&procBenchmark, "benchmark", "b", "", "benchmark compound name (case-insensitive substring of Title)")
	processCmd.Flags().StringVarP(&procOutputDir, "output-dir", "o", "", "directory for output tables (default: input file's directory)")
	processCmd.Flags().IntVar(&procPrecision, "precision", -1, "decimal digits for derived values (-1 = shortest)")
}

func promptLine(out io.Writer, in *bufio.Reader, prompt string) (string, error) {
	fmt.Fprint(out, prompt)
	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// cleanInputPath undoes the quoting and backslashes that come with paths
// pasted from file browsers.
func cleanInputPath(p string) string {
	p = strings.TrimSpace(p)
	p = strings.Trim(p, `"'`)
	return strings.ReplaceAll(p, `\`, "/")
}
