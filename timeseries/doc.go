// Package timeseries provides time series data structures and utilities.
//
// The Series type pairs equally-spaced observations with timestamps and
// offers summary statistics:
//
//	series := timeseries.New(values)
//	fmt.Printf("n=%d mean=%.2f std=%.2f\n", series.Len(), series.Mean(), series.Std())
//
// CSV support covers loading a value column and writing decomposition
// components side by side:
//
//	series, err := timeseries.LoadCSV("demand.csv", "y")
//
//	err = timeseries.SaveComponentsCSV("components.csv",
//	    []string{"y", "trend", "seasonal", "residual"},
//	    series.Values, trend, seasonal, residual)
package timeseries
