// Package stl implements Seasonal-Trend decomposition using Loess.
//
// STL decomposes a series with a single seasonal period into additive
// trend, seasonal, and remainder components, following Cleveland,
// Cleveland, McRae & Terpenning (1990). Each inner pass smooths the
// cycle-subseries with locally-weighted regression, removes residual
// trend from the seasonal component with a moving-average low-pass
// filter, and re-smooths the deseasonalized series for the trend.
// Optional outer passes downweight outliers with bisquare robustness
// weights derived from the remainder.
//
// # Quick Start
//
// Decompose a monthly series:
//
//	fit, err := stl.NewParams().SeasonalLength(7).Fit(values, 12)
//	if err != nil {
//	    // handle
//	}
//	// fit.Trend, fit.Seasonal, fit.Remainder, fit.Weights
//
// With robustness iterations for outlier-contaminated data:
//
//	fit, err := stl.NewParams().
//	    SeasonalLength(7).
//	    Robust(true).
//	    Fit(values, 12)
//
// # Parameters
//
// The seasonal, trend and low-pass smoothers each take a loess span
// (odd), a degree (0 or 1), and an evaluation stride (jump); strides
// greater than one evaluate the smoother on a grid and interpolate
// linearly in between. Unset options resolve to the defaults of the
// reference implementation; see Params.
package stl
