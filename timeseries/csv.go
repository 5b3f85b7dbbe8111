package timeseries

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

// LoadCSV loads the named value column from a CSV file as a series. The
// file must have a header row. Blank, NA and NaN cells are skipped.
func LoadCSV(filename, column string) (*Series, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	series, err := LoadCSVFromReader(file, column)
	if err != nil {
		return nil, fmt.Errorf("timeseries: loading %s: %w", filename, err)
	}
	return series, nil
}

// LoadCSVFromReader loads the named value column from CSV data.
func LoadCSVFromReader(r io.Reader, column string) (*Series, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, err
	}
	colIdx := -1
	for i, h := range header {
		if h == column {
			colIdx = i
			break
		}
	}
	if colIdx == -1 {
		return nil, fmt.Errorf("timeseries: column %q not found in header", column)
	}

	var values []float64
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if colIdx >= len(record) {
			continue
		}
		cell := record[colIdx]
		if cell == "" || cell == "NA" || cell == "NaN" || cell == "null" {
			continue
		}
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return nil, fmt.Errorf("timeseries: parsing %q: %w", cell, err)
		}
		values = append(values, v)
	}
	if len(values) == 0 {
		return nil, errors.New("timeseries: no valid data found in CSV")
	}

	series := New(values)
	series.Name = column
	return series, nil
}

// WriteComponentsCSV writes named columns of equal length side by side,
// e.g. the components of a decomposition next to the original series.
func WriteComponentsCSV(w io.Writer, names []string, columns ...[]float64) error {
	if len(names) != len(columns) {
		return errors.New("timeseries: one name per column required")
	}
	if len(columns) == 0 {
		return errors.New("timeseries: no columns to write")
	}
	n := len(columns[0])
	for _, col := range columns[1:] {
		if len(col) != n {
			return errors.New("timeseries: columns must have equal length")
		}
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(names); err != nil {
		return err
	}
	record := make([]string, len(columns))
	for i := 0; i < n; i++ {
		for j, col := range columns {
			record[j] = strconv.FormatFloat(col[i], 'f', -1, 64)
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// SaveComponentsCSV writes named columns to a CSV file.
func SaveComponentsCSV(filename string, names []string, columns ...[]float64) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteComponentsCSV(file, names, columns...)
}
