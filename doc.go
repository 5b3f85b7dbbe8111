// Package augurs provides multi-seasonal time series decomposition.
//
// Augurs decomposes an equally-spaced series into an additive trend, one
// seasonal component per requested periodicity, and a residual, using the
// MSTL algorithm: repeated STL (Seasonal-Trend decomposition using Loess)
// fits applied in increasing order of period length.
//
// # Quick Start
//
// Decompose an hourly series with daily and weekly seasonality:
//
//	series := timeseries.New(values)
//	periods := []int{24, 168}
//	res, err := mstl.New(series, periods).Fit()
//	if err != nil {
//	    // handle
//	}
//	trend := res.Trend()
//	daily, _ := res.Seasonal(24)
//	weekly, _ := res.Seasonal(168)
//
// Single-period decomposition is available directly:
//
//	fit, err := stl.NewParams().SeasonalLength(11).Fit(series.Values, 24)
//
// # Packages
//
// The library is organized into the following packages:
//
//   - mstl: multi-seasonal decomposition (MSTL)
//   - stl: single-period Seasonal-Trend decomposition using Loess
//   - timeseries: time series data structures and CSV utilities
//
// # References
//
//   - Cleveland, R.B., Cleveland, W.S., McRae, J.E., & Terpenning, I. (1990).
//     STL: A Seasonal-Trend Decomposition Procedure Based on Loess
//   - Bandara, K., Hyndman, R.J., & Bergmeir, C. (2021). MSTL: A
//     Seasonal-Trend Decomposition Algorithm for Time Series with Multiple
//     Seasonal Patterns
package augurs
