package timeseries

import (
	"math"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5}
	series := New(values)

	if series.Len() != 5 {
		t.Errorf("Expected length 5, got %d", series.Len())
	}
	if len(series.Timestamps) != 5 {
		t.Errorf("Expected 5 timestamps, got %d", len(series.Timestamps))
	}
}

func TestNewWithTimestamps(t *testing.T) {
	timestamps := []time.Time{time.Now(), time.Now().Add(time.Hour)}
	values := []float64{1, 2}

	series, err := NewWithTimestamps(timestamps, values)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if series.Len() != 2 {
		t.Errorf("Expected length 2, got %d", series.Len())
	}

	_, err = NewWithTimestamps(timestamps, []float64{1, 2, 3})
	if err == nil {
		t.Error("Expected error for mismatched lengths")
	}
}

func TestMean(t *testing.T) {
	series := New([]float64{1, 2, 3, 4, 5})
	if math.Abs(series.Mean()-3.0) > 1e-10 {
		t.Errorf("Expected mean 3.0, got %f", series.Mean())
	}

	empty := New([]float64{})
	if empty.Mean() != 0 {
		t.Errorf("Expected mean 0 for empty series, got %f", empty.Mean())
	}
}

func TestVarianceAndStd(t *testing.T) {
	series := New([]float64{2, 4, 4, 4, 5, 5, 7, 9})

	// Sample variance of this set is 32/7.
	expected := 32.0 / 7.0
	if math.Abs(series.Variance()-expected) > 1e-10 {
		t.Errorf("Expected variance %f, got %f", expected, series.Variance())
	}
	if math.Abs(series.Std()-math.Sqrt(expected)) > 1e-10 {
		t.Errorf("Expected std %f, got %f", math.Sqrt(expected), series.Std())
	}
}

func TestMinMax(t *testing.T) {
	series := New([]float64{3, 1, 4, 1, 5, 9, 2, 6})

	if series.Min() != 1 {
		t.Errorf("Expected min 1, got %f", series.Min())
	}
	if series.Max() != 9 {
		t.Errorf("Expected max 9, got %f", series.Max())
	}
}

func TestMedian(t *testing.T) {
	odd := New([]float64{3, 1, 2})
	if odd.Median() != 2 {
		t.Errorf("Expected median 2, got %f", odd.Median())
	}

	even := New([]float64{4, 1, 3, 2})
	if even.Median() != 2.5 {
		t.Errorf("Expected median 2.5, got %f", even.Median())
	}
}

func TestSlice(t *testing.T) {
	series := New([]float64{1, 2, 3, 4, 5})
	sliced := series.Slice(1, 4)

	if sliced.Len() != 3 {
		t.Errorf("Expected length 3, got %d", sliced.Len())
	}
	if sliced.Values[0] != 2 || sliced.Values[2] != 4 {
		t.Errorf("Unexpected slice values: %v", sliced.Values)
	}

	empty := series.Slice(4, 2)
	if empty.Len() != 0 {
		t.Errorf("Expected empty slice, got length %d", empty.Len())
	}
}

func TestCopy(t *testing.T) {
	series := New([]float64{1, 2, 3})
	series.Name = "original"

	clone := series.Copy()
	clone.Values[0] = 99

	if series.Values[0] != 1 {
		t.Error("Copy should not share values with the original")
	}
	if clone.Name != "original" {
		t.Errorf("Expected name to be copied, got %q", clone.Name)
	}
}
