package cmd

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	cfgpkg "github.com/statloom/statloom-cli/internal/config"
	"github.com/statloom/statloom-cli/internal/dataset"
	"github.com/statloom/statloom-cli/internal/report"
)

// activeConfig returns the loaded configuration, loading it on demand so
// commands invoked outside Execute (e.g. in tests) still see defaults.
func activeConfig() *cfgpkg.Global {
	if cfg != nil {
		return cfg
	}
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		return &cfgpkg.Global{
			GeneratorPoints: 1000,
			UniformMax:      1,
			NormalStd:       1,
			Output:          "markdown",
			MaxRows:         100000,
		}
	}
	cfg = c
	return cfg
}

// resolveSeed picks the effective seed: explicit flag, then config, then
// the clock.
func resolveSeed(explicit int64) int64 {
	if explicit != 0 {
		return explicit
	}
	if c := activeConfig(); c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

func newSeededRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func datasetStore() *dataset.Store {
	return dataset.NewStore(activeConfig().DatasetsDir)
}

func parseDelimiterFlag(s string) (rune, error) {
	switch s {
	case "":
		return 0, nil
	case ",":
		return ',', nil
	case ";":
		return ';', nil
	case "\t", "tab":
		return '\t', nil
	default:
		return 0, fmt.Errorf("unsupported --delimiter: %s", s)
	}
}

func parseDecimalFlag(s string) (rune, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return 0, nil
	case ",", "comma":
		return ',', nil
	case ".", "dot":
		return '.', nil
	default:
		return 0, fmt.Errorf("unsupported --decimal: %s (use '.'|'comma')", s)
	}
}

func parseThousandsFlag(s string) (rune, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return 0, nil
	case ",":
		return ',', nil
	case ".":
		return '.', nil
	case "space", " ":
		return ' ', nil
	default:
		return 0, fmt.Errorf("unsupported --thousands: %s (use ','|'.'|'space')", s)
	}
}

// renderReport formats rep per the requested output mode, falling back to
// the configured default when mode is empty.
func renderReport(rep *report.Report, mode string) (string, error) {
	if mode == "" {
		mode = activeConfig().Output
	}
	switch strings.ToLower(mode) {
	case "", "markdown", "md":
		return rep.Markdown(), nil
	case "yaml", "yml":
		return rep.YAML()
	case "table":
		return rep.Table() + "\n", nil
	default:
		return "", fmt.Errorf("unsupported output %q (use markdown|yaml|table)", mode)
	}
}

// formatValues renders one value per line with minimal round-trip notation.
func formatValues(values []float64) string {
	var b strings.Builder
	for _, v := range values {
		b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		b.WriteByte('\n')
	}
	return b.String()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
