// Package dataset loads numeric datasets from CSV/TSV files or inline
// argument lists, and persists generated datasets as local snapshots.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// Options controls how a numeric column is extracted from a delimited file.
type Options struct {
	// Column selects the column by header name (case-insensitive) or by
	// 1-based index. Empty selects the first column.
	Column string
	// Delimiter for CSV. If 0, auto-detects by extension (',' or '\t').
	Delimiter rune
	// NoHeader treats the first row as data instead of column names.
	NoHeader bool
	// Numeric parsing locale. If DecimalSeparator is 0, auto-detect per value.
	DecimalSeparator   rune
	ThousandsSeparator rune // optional; if 0, strips common separators that differ from decimal
	// MaxRows limits rows processed; 0 means unlimited.
	MaxRows int
}

// DefaultOptions returns reasonable defaults for column extraction.
func DefaultOptions() Options {
	return Options{MaxRows: 100000}
}

// Column is the result of extracting one numeric column.
type Column struct {
	Name    string
	Values  []float64
	Skipped int // cells present but not parseable as numbers
}

// LoadColumn reads one numeric column out of a CSV/TSV file.
func LoadColumn(path string, opt Options) (*Column, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	delim := opt.Delimiter
	if delim == 0 {
		delim = sniffDelimiter(path)
	}
	r := csv.NewReader(f)
	r.ReuseRecord = true
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	r.Comma = delim

	col := &Column{}
	idx := -1
	if !opt.NoHeader {
		header, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("dataset %s is empty", path)
			}
			return nil, fmt.Errorf("read header: %w", err)
		}
		idx, err = resolveColumn(header, opt.Column)
		if err != nil {
			return nil, err
		}
		col.Name = strings.TrimSpace(header[idx])
	} else {
		idx, err = resolveColumn(nil, opt.Column)
		if err != nil {
			return nil, err
		}
	}

	maxRows := opt.MaxRows
	if maxRows <= 0 {
		maxRows = math.MaxInt
	}
	rows := 0
	for {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read row %d: %w", rows+1, err)
		}
		rows++
		if rows > maxRows {
			break
		}
		if idx >= len(rec) {
			col.Skipped++
			continue
		}
		cell := strings.TrimSpace(rec[idx])
		if cell == "" {
			col.Skipped++
			continue
		}
		x, ok := parseNumeric(cell, opt)
		if !ok {
			col.Skipped++
			continue
		}
		col.Values = append(col.Values, x)
	}
	if len(col.Values) == 0 {
		return nil, fmt.Errorf("no numeric values in column %q of %s", columnLabel(col.Name, idx), path)
	}
	return col, nil
}

// ParseValues parses inline numeric arguments, e.g. from the command line.
func ParseValues(args []string) ([]float64, error) {
	if len(args) == 0 {
		return nil, errors.New("no values provided")
	}
	out := make([]float64, 0, len(args))
	for i, s := range args {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return nil, fmt.Errorf("value %d (%q) is not a number", i+1, s)
		}
		out = append(out, f)
	}
	return out, nil
}

func resolveColumn(header []string, column string) (int, error) {
	column = strings.TrimSpace(column)
	if column == "" {
		return 0, nil
	}
	if i, err := strconv.Atoi(column); err == nil {
		if i < 1 || (header != nil && i > len(header)) {
			return 0, fmt.Errorf("column index %d out of range", i)
		}
		return i - 1, nil
	}
	for i, h := range header {
		if strings.EqualFold(strings.TrimSpace(h), column) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("column %q not found in header", column)
}

func columnLabel(name string, idx int) string {
	if name != "" {
		return name
	}
	return strconv.Itoa(idx + 1)
}

func sniffDelimiter(path string) rune {
	if strings.HasSuffix(strings.ToLower(path), ".tsv") {
		return '\t'
	}
	return ','
}

// parseNumeric parses a cell with locale awareness: percent signs are
// stripped, decimal comma is detected when no separator is configured, and
// thousands separators are removed.
func parseNumeric(s string, opt Options) (float64, bool) {
	raw := strings.TrimSpace(s)
	raw = strings.ReplaceAll(raw, "%", "")
	raw = strings.ReplaceAll(raw, "\u00A0", " ")
	raw = strings.TrimSpace(raw)

	dec := opt.DecimalSeparator
	thou := opt.ThousandsSeparator
	if dec == 0 {
		cpos := strings.LastIndex(raw, ",")
		dpos := strings.LastIndex(raw, ".")
		switch {
		case cpos >= 0 && dpos >= 0:
			if cpos > dpos {
				dec, thou = ',', '.'
			} else {
				dec, thou = '.', ','
			}
		case cpos >= 0:
			dec = ','
		default:
			dec = '.'
		}
	}
	if thou == 0 {
		for _, sep := range []rune{',', '.', ' '} {
			if sep != dec {
				raw = strings.ReplaceAll(raw, string(sep), "")
			}
		}
	} else if thou != dec {
		raw = strings.ReplaceAll(raw, string(thou), "")
	}
	if dec != '.' {
		raw = strings.ReplaceAll(raw, string(dec), ".")
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
