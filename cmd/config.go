package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	cfgpkg "github.com/ib2756/MPO-calculation-for-CNS-targeting-compounds/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set mpopair configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			fmt.Println("No config loaded")
			return nil
		}
		fmt.Printf("default_benchmark: %s\n", cfg.DefaultBenchmark)
		fmt.Printf("output_dir: %s\n", cfg.OutputDir)
		fmt.Printf("float_precision: %d\n", cfg.FloatPrecision)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		switch key {
		case "default_benchmark":
			cfg.DefaultBenchmark = val
		case "output_dir":
			cfg.OutputDir = val
		case "float_precision":
			i, err := strconv.Atoi(val)
			if err != nil || i < -1 || i > 17 {
				return fmt.Errorf("invalid float_precision: %s (use -1..17)", val)
			}
			cfg.FloatPrecision = i
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Println("Saved config")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
