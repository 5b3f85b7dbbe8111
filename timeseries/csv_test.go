package timeseries

import (
	"bytes"
	"strings"
	"testing"
)

func TestLoadCSVFromReader(t *testing.T) {
	data := "ds,y\n2024-01-01,1.5\n2024-01-02,NA\n2024-01-03,2.5\n2024-01-04,3.5\n"

	series, err := LoadCSVFromReader(strings.NewReader(data), "y")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if series.Len() != 3 {
		t.Fatalf("Expected 3 values (NA skipped), got %d", series.Len())
	}
	if series.Values[0] != 1.5 || series.Values[2] != 3.5 {
		t.Errorf("Unexpected values: %v", series.Values)
	}
	if series.Name != "y" {
		t.Errorf("Expected series name %q, got %q", "y", series.Name)
	}
}

func TestLoadCSVMissingColumn(t *testing.T) {
	data := "ds,y\n2024-01-01,1.5\n"

	_, err := LoadCSVFromReader(strings.NewReader(data), "demand")
	if err == nil {
		t.Error("Expected error for missing column")
	}
}

func TestLoadCSVNoData(t *testing.T) {
	data := "ds,y\n2024-01-01,NA\n"

	_, err := LoadCSVFromReader(strings.NewReader(data), "y")
	if err == nil {
		t.Error("Expected error for CSV without valid data")
	}
}

func TestWriteComponentsCSV(t *testing.T) {
	var buf bytes.Buffer
	err := WriteComponentsCSV(&buf,
		[]string{"y", "trend"},
		[]float64{1.5, 2.5},
		[]float64{1, 2},
	)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected header plus 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "y,trend" {
		t.Errorf("Unexpected header: %q", lines[0])
	}
	if lines[1] != "1.5,1" {
		t.Errorf("Unexpected first row: %q", lines[1])
	}

	// Round trip through the loader.
	series, err := LoadCSVFromReader(strings.NewReader(buf.String()), "trend")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if series.Len() != 2 || series.Values[1] != 2 {
		t.Errorf("Unexpected round-tripped values: %v", series.Values)
	}
}

func TestWriteComponentsCSVValidation(t *testing.T) {
	var buf bytes.Buffer

	if err := WriteComponentsCSV(&buf, []string{"y"}); err == nil {
		t.Error("Expected error for mismatched names and columns")
	}
	if err := WriteComponentsCSV(&buf, nil); err == nil {
		t.Error("Expected error for no columns")
	}
	err := WriteComponentsCSV(&buf, []string{"a", "b"}, []float64{1}, []float64{1, 2})
	if err == nil {
		t.Error("Expected error for unequal column lengths")
	}
}
