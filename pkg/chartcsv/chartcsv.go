// Package chartcsv builds go-chart figures from CSV data. The expected
// shape is a header row naming the columns, the first column holding X
// values and every further column one series:
//
//	month,revenue,cost
//	1,120,80
//	2,135,85
package chartcsv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/wcharczuk/go-chart/v2"
)

// Load parses CSV data from r into a chart with one continuous series per
// value column. Series carry explicit palette colors so that legends render
// with matching swatches.
func Load(r io.Reader) (*chart.Chart, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("need a header row and at least one data row, got %d row(s)", len(records))
	}

	header := records[0]
	if len(header) < 2 {
		return nil, fmt.Errorf("need an x column and at least one series column, got %d column(s)", len(header))
	}

	rows := records[1:]
	xValues := make([]float64, len(rows))
	series := make([][]float64, len(header)-1)
	for i := range series {
		series[i] = make([]float64, len(rows))
	}

	for i, row := range rows {
		if len(row) != len(header) {
			return nil, fmt.Errorf("row %d has %d column(s), header has %d", i+2, len(row), len(header))
		}

		x, err := strconv.ParseFloat(row[0], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d column %q: %w", i+2, header[0], err)
		}
		xValues[i] = x

		for j := 1; j < len(row); j++ {
			v, err := strconv.ParseFloat(row[j], 64)
			if err != nil {
				return nil, fmt.Errorf("row %d column %q: %w", i+2, header[j], err)
			}
			series[j-1][i] = v
		}
	}

	c := &chart.Chart{
		XAxis: chart.XAxis{Name: header[0]},
	}
	for i, values := range series {
		c.Series = append(c.Series, chart.ContinuousSeries{
			Name: header[i+1],
			Style: chart.Style{
				StrokeColor: chart.GetDefaultColor(i),
				StrokeWidth: 2.0,
			},
			XValues: xValues,
			YValues: values,
		})
	}

	return c, nil
}

// LoadFile reads and parses the CSV file at path.
func LoadFile(path string) (*chart.Chart, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()

	c, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", path, err)
	}
	return c, nil
}
