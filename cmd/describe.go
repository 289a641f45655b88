package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/statloom/statloom-cli/internal/dataset"
	"github.com/statloom/statloom-cli/internal/describe"
	"github.com/statloom/statloom-cli/internal/report"
)

var (
	descColumn    string
	descDelimiter string
	descDecimal   string
	descThousands string
	descNoHeader  bool
	descMaxRows   int
	descOutput    string
	descSave      bool
	descZScores   []float64
)

var describeCmd = &cobra.Command{
	Use:   "describe <file> | describe -- <value>...",
	Short: "Compute descriptive statistics for a dataset",
	Long: `Describe computes the full set of descriptive statistics for one numeric
dataset. The dataset is either a column of a CSV/TSV file (see --column) or a
list of numbers passed directly after --.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		values, name, source, err := describeInput(args)
		if err != nil {
			return err
		}
		a, err := describe.New(values)
		if err != nil {
			return err
		}
		rep := report.Build(a, name)
		for _, z := range descZScores {
			rep.Append(fmt.Sprintf("z-score(%g)", z), a.StandardizedScore(z))
		}
		out, err := renderReport(rep, descOutput)
		if err != nil {
			return err
		}
		fmt.Print(out)
		if descSave {
			snap, err := datasetStore().Save(name, source, values)
			if err != nil {
				return err
			}
			fmt.Printf("✓ Saved dataset %s (%d points)\n", shortID(snap.ID), len(values))
		}
		return nil
	},
}

// describeInput resolves the command arguments to a dataset: a single
// existing file is read as CSV/TSV, anything else is parsed as inline
// numbers.
func describeInput(args []string) (values []float64, name, source string, err error) {
	if len(args) == 1 {
		if _, statErr := os.Stat(args[0]); statErr == nil {
			opt, err := describeOptions()
			if err != nil {
				return nil, "", "", err
			}
			col, err := dataset.LoadColumn(args[0], opt)
			if err != nil {
				return nil, "", "", err
			}
			if col.Skipped > 0 {
				fmt.Fprintf(os.Stderr, "⚠ Warning: skipped %d non-numeric cells\n", col.Skipped)
			}
			name := filepath.Base(args[0])
			if col.Name != "" {
				name = name + ":" + col.Name
			}
			return col.Values, name, args[0], nil
		}
	}
	values, err = dataset.ParseValues(args)
	if err != nil {
		return nil, "", "", err
	}
	return values, "inline", "inline", nil
}

func describeOptions() (dataset.Options, error) {
	opt := dataset.DefaultOptions()
	opt.Column = descColumn
	opt.NoHeader = descNoHeader
	if descMaxRows > 0 {
		opt.MaxRows = descMaxRows
	} else {
		opt.MaxRows = activeConfig().MaxRows
	}
	var err error
	if opt.Delimiter, err = parseDelimiterFlag(descDelimiter); err != nil {
		return opt, err
	}
	if opt.DecimalSeparator, err = parseDecimalFlag(descDecimal); err != nil {
		return opt, err
	}
	if opt.ThousandsSeparator, err = parseThousandsFlag(descThousands); err != nil {
		return opt, err
	}
	return opt, nil
}

func init() {
	rootCmd.AddCommand(describeCmd)
	describeCmd.Flags().StringVarP(&descColumn, "column", "c", "", "column name or 1-based index (default: first column)")
	describeCmd.Flags().StringVar(&descDelimiter, "delimiter", "", "CSV delimiter: ',' | ';' | 'tab'")
	describeCmd.Flags().StringVar(&descDecimal, "decimal", "", "decimal separator for numbers: '.'|'comma' (auto-detect if omitted)")
	describeCmd.Flags().StringVar(&descThousands, "thousands", "", "thousands separator for numbers: ','|'.'|'space' (auto-detect if omitted)")
	describeCmd.Flags().BoolVar(&descNoHeader, "no-header", false, "treat the first row as data, not column names")
	describeCmd.Flags().IntVar(&descMaxRows, "max-rows", 0, "maximum rows to process (0 = config default)")
	describeCmd.Flags().StringVarP(&descOutput, "output", "o", "", "output format: markdown|yaml|table (default from config)")
	describeCmd.Flags().BoolVar(&descSave, "save", false, "save the dataset as a snapshot")
	describeCmd.Flags().Float64SliceVar(&descZScores, "zscore", nil, "values to standardize against the dataset (repeatable)")
}
