package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/statloom/statloom-cli/internal/describe"
)

var (
	sumPoints int
	sumSeed   int64
	sumStat   string
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Quartiles, mean and median of a fresh uniform dataset",
	Long: `Summary builds one uniform dataset (1000 points by default), then reports
its first quartile, third quartile, mean and median. --stat narrows the
output to a single statistic.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		points := sumPoints
		if points <= 0 {
			points = activeConfig().GeneratorPoints
		}
		seed := resolveSeed(sumSeed)
		a, err := summaryAnalyzer(seed, points)
		if err != nil {
			return err
		}
		lines, err := summaryLines(a, sumStat)
		if err != nil {
			return err
		}
		if debug {
			fmt.Printf("seed=%d points=%d\n", seed, points)
		}
		for _, l := range lines {
			fmt.Println(l)
		}
		return nil
	},
}

// summaryAnalyzer builds the analyzer the summary command queries: one
// uniform dataset in [0, 1) from a seeded source.
func summaryAnalyzer(seed int64, points int) (*describe.Analyzer, error) {
	values := describe.UniformDistribution(newSeededRand(seed), points, 0, 1)
	return describe.New(values)
}

// summaryLines renders the requested statistics, one per line.
func summaryLines(a *describe.Analyzer, stat string) ([]string, error) {
	line := func(label string, v float64) string {
		return fmt.Sprintf("%s: %.6f", label, v)
	}
	switch stat {
	case "":
		return []string{
			line("First quartile", a.FirstQuartile()),
			line("Third quartile", a.ThirdQuartile()),
			line("Mean", a.Mean()),
			line("Median", a.Median()),
		}, nil
	case "q1", "first-quartile":
		return []string{line("First quartile", a.FirstQuartile())}, nil
	case "q3", "third-quartile":
		return []string{line("Third quartile", a.ThirdQuartile())}, nil
	case "mean":
		return []string{line("Mean", a.Mean())}, nil
	case "median":
		return []string{line("Median", a.Median())}, nil
	default:
		return nil, fmt.Errorf("unknown --stat %q (use q1|q3|mean|median)", stat)
	}
}

func init() {
	rootCmd.AddCommand(summaryCmd)
	summaryCmd.Flags().IntVarP(&sumPoints, "points", "n", 0, "dataset size (default from config)")
	summaryCmd.Flags().Int64Var(&sumSeed, "seed", 0, "seed for the random source (0 = config, then clock)")
	summaryCmd.Flags().StringVar(&sumStat, "stat", "", "single statistic to report: q1|q3|mean|median")
}
