package chromcli

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-chrom/chrom/series"
)

var (
	// ErrNoData is returned for input without any data rows.
	ErrNoData = errors.New("chromcli: no data rows")
	// ErrNoSeries is returned when the input has only an x column.
	ErrNoSeries = errors.New("chromcli: no intensity columns")
)

// ReadCSV parses a chromatogram table. The first column is the retention
// time and every further column is one series. An optional header row names
// the series; lines starting with '#' are ignored. Empty cells become NaN and
// are zeroed later by the sanitizer.
func ReadCSV(r io.Reader) ([]series.Series, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrNoData
	}

	var header []string
	if _, err := parseCell(records[0][0]); err != nil {
		header = records[0]
		records = records[1:]
	}
	if len(records) == 0 {
		return nil, ErrNoData
	}

	cols := 0
	for _, row := range records {
		cols = max(cols, len(row))
	}
	if cols < 2 {
		return nil, ErrNoSeries
	}

	out := make([]series.Series, cols-1)
	for j := range out {
		out[j].Name = fmt.Sprintf("series %d", j+1)
		if j+1 < len(header) {
			if name := strings.TrimSpace(header[j+1]); name != "" {
				out[j].Name = name
			}
		}
		out[j].X = make([]float64, 0, len(records))
		out[j].Y = make([]float64, 0, len(records))
	}

	for i, row := range records {
		x, err := parseCell(row[0])
		if err != nil {
			return nil, fmt.Errorf("row %d: x: %w", i+1, err)
		}
		for j := range out {
			v := math.NaN()
			if j+1 < len(row) && strings.TrimSpace(row[j+1]) != "" {
				if v, err = parseCell(row[j+1]); err != nil {
					return nil, fmt.Errorf("row %d: %s: %w", i+1, out[j].Name, err)
				}
			}
			out[j].X = append(out[j].X, x)
			out[j].Y = append(out[j].Y, v)
		}
	}

	return out, nil
}

// ReadCSVFile opens path and parses it with [ReadCSV].
func ReadCSVFile(path string) ([]series.Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func parseCell(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}
