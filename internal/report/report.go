// Package report renders the full set of descriptive statistics for one
// dataset as markdown, YAML, or a terminal table.
package report

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	"github.com/statloom/statloom-cli/internal/describe"
)

// Stat is one computed statistic. Value is nil when the statistic is not
// defined for the dataset; Note then carries the reason.
type Stat struct {
	Name  string   `yaml:"name"`
	Value *float64 `yaml:"value"`
	Note  string   `yaml:"note,omitempty"`
}

// Report holds every statistic for one dataset, computed eagerly so a
// partially-defined dataset still yields a useful report.
type Report struct {
	Name  string `yaml:"dataset"`
	Count int    `yaml:"count"`
	Stats []Stat `yaml:"statistics"`
}

// Build computes all statistics from a. Sample statistics that are
// undefined for the dataset size, and kurtosis on a constant dataset, are
// recorded as unavailable rather than failing the report.
func Build(a *describe.Analyzer, name string) *Report {
	r := &Report{Name: name, Count: a.Count()}
	add := func(label string, v float64) {
		r.Stats = append(r.Stats, Stat{Name: label, Value: &v})
	}
	addErr := func(label string, v float64, err error) {
		if err != nil {
			r.Stats = append(r.Stats, Stat{Name: label, Note: err.Error()})
			return
		}
		add(label, v)
	}

	add("mean", a.Mean())
	add("median", a.Median())
	add("mode", a.Mode())
	add("min", a.Min())
	add("max", a.Max())
	add("range", a.Range())
	add("first quartile", a.FirstQuartile())
	add("third quartile", a.ThirdQuartile())
	add("interquartile range", a.InterquartileRange())
	add("population variance", a.PopulationVariance())
	add("population std dev", a.PopulationStandardDeviation())
	add("population skewness", a.PopulationSkewness())
	pk, err := a.PopulationKurtosis()
	addErr("population kurtosis", pk, err)
	sv, err := a.SampleVariance()
	addErr("sample variance", sv, err)
	sd, err := a.SampleStandardDeviation()
	addErr("sample std dev", sd, err)
	ss, err := a.SampleSkewness()
	addErr("sample skewness", ss, err)
	sk, err := a.SampleKurtosis()
	addErr("sample kurtosis", sk, err)
	return r
}

// Append adds an extra computed statistic, e.g. a standardized score.
func (r *Report) Append(label string, value float64) {
	r.Stats = append(r.Stats, Stat{Name: label, Value: &value})
}

// Markdown renders the report in a compact bracket-section layout.
func (r *Report) Markdown() string {
	var b strings.Builder
	b.WriteString("[DATASET]\n")
	if r.Name != "" {
		b.WriteString(fmt.Sprintf("Name: %s\n", r.Name))
	}
	b.WriteString(fmt.Sprintf("Count: %d\n\n", r.Count))
	b.WriteString("[STATISTICS]\n")
	for _, s := range r.Stats {
		if s.Value == nil {
			b.WriteString(fmt.Sprintf("- %s: unavailable (%s)\n", s.Name, s.Note))
			continue
		}
		b.WriteString(fmt.Sprintf("- %s: %.6g\n", s.Name, *s.Value))
	}
	return b.String()
}

// YAML renders the report as a YAML document.
func (r *Report) YAML() (string, error) {
	b, err := yaml.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("marshal report: %w", err)
	}
	return string(b), nil
}

// Table renders the report as a terminal table.
func (r *Report) Table() string {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	title := r.Name
	if title == "" {
		title = "dataset"
	}
	tbl.SetTitle(fmt.Sprintf("%s (n=%d)", title, r.Count))
	tbl.AppendHeader(table.Row{"Statistic", "Value"})
	for _, s := range r.Stats {
		if s.Value == nil {
			tbl.AppendRow(table.Row{s.Name, "unavailable: " + s.Note})
			continue
		}
		tbl.AppendRow(table.Row{s.Name, fmt.Sprintf("%.6g", *s.Value)})
	}
	return tbl.Render()
}
