package chartcsv

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/wcharczuk/go-chart/v2"
)

const sampleCSV = `month,revenue,cost
1,120,80
2,135,85
3,150,90
`

func TestLoad(t *testing.T) {
	c, err := Load(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if c.XAxis.Name != "month" {
		t.Errorf("XAxis.Name = %q, want %q", c.XAxis.Name, "month")
	}
	if len(c.Series) != 2 {
		t.Fatalf("len(Series) = %d, want 2", len(c.Series))
	}

	first, ok := c.Series[0].(chart.ContinuousSeries)
	if !ok {
		t.Fatalf("Series[0] is %T, want chart.ContinuousSeries", c.Series[0])
	}
	if first.Name != "revenue" {
		t.Errorf("Series[0].Name = %q, want %q", first.Name, "revenue")
	}
	if want := []float64{1, 2, 3}; !reflect.DeepEqual(first.XValues, want) {
		t.Errorf("Series[0].XValues = %v, want %v", first.XValues, want)
	}
	if want := []float64{120, 135, 150}; !reflect.DeepEqual(first.YValues, want) {
		t.Errorf("Series[0].YValues = %v, want %v", first.YValues, want)
	}

	second := c.Series[1].(chart.ContinuousSeries)
	if second.Name != "cost" {
		t.Errorf("Series[1].Name = %q, want %q", second.Name, "cost")
	}
	if want := []float64{80, 85, 90}; !reflect.DeepEqual(second.YValues, want) {
		t.Errorf("Series[1].YValues = %v, want %v", second.YValues, want)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty input", input: ""},
		{name: "header only", input: "x,y\n"},
		{name: "single column", input: "x\n1\n2\n"},
		{name: "ragged row", input: "x,y\n1,2\n3\n"},
		{name: "non-numeric x", input: "x,y\nfoo,2\n"},
		{name: "non-numeric series value", input: "x,y\n1,bar\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(strings.NewReader(tt.input)); err == nil {
				t.Errorf("Load(%q) succeeded, want error", tt.input)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.csv")
	if err := os.WriteFile(path, []byte(sampleCSV), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() returned error: %v", err)
	}
	if len(c.Series) != 2 {
		t.Errorf("len(Series) = %d, want 2", len(c.Series))
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.csv")); err == nil {
		t.Error("LoadFile() on a missing file succeeded, want error")
	}
}
