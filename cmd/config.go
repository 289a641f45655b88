package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	cfgpkg "github.com/statloom/statloom-cli/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set StatLoom configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := activeConfig()
		fmt.Printf("seed: %d\n", c.Seed)
		fmt.Printf("generator_points: %d\n", c.GeneratorPoints)
		fmt.Printf("uniform_min: %g\n", c.UniformMin)
		fmt.Printf("uniform_max: %g\n", c.UniformMax)
		fmt.Printf("normal_mean: %g\n", c.NormalMean)
		fmt.Printf("normal_std: %g\n", c.NormalStd)
		fmt.Printf("output: %s\n", c.Output)
		fmt.Printf("datasets_dir: %s\n", c.DatasetsDir)
		fmt.Printf("max_rows: %d\n", c.MaxRows)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		c := activeConfig()
		switch key {
		case "seed":
			i, err := strconv.ParseInt(val, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid int for seed: %v", val)
			}
			c.Seed = i
		case "generator_points":
			i, err := strconv.Atoi(val)
			if err != nil || i < 1 {
				return fmt.Errorf("invalid int for generator_points: %v", val)
			}
			c.GeneratorPoints = i
		case "uniform_min":
			f, err := strconv.ParseFloat(val, 64)
			if err != nil {
				return fmt.Errorf("invalid float for uniform_min: %w", err)
			}
			c.UniformMin = f
		case "uniform_max":
			f, err := strconv.ParseFloat(val, 64)
			if err != nil {
				return fmt.Errorf("invalid float for uniform_max: %w", err)
			}
			c.UniformMax = f
		case "normal_mean":
			f, err := strconv.ParseFloat(val, 64)
			if err != nil {
				return fmt.Errorf("invalid float for normal_mean: %w", err)
			}
			c.NormalMean = f
		case "normal_std":
			f, err := strconv.ParseFloat(val, 64)
			if err != nil {
				return fmt.Errorf("invalid float for normal_std: %w", err)
			}
			c.NormalStd = f
		case "output":
			switch strings.ToLower(val) {
			case "markdown", "yaml", "table":
				c.Output = strings.ToLower(val)
			default:
				return fmt.Errorf("invalid output: %s (use markdown|yaml|table)", val)
			}
		case "datasets_dir":
			c.DatasetsDir = val
		case "max_rows":
			i, err := strconv.Atoi(val)
			if err != nil || i < 0 {
				return fmt.Errorf("invalid int for max_rows: %v", val)
			}
			c.MaxRows = i
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := cfgpkg.Save(c, cfgFile); err != nil {
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
