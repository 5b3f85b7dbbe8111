// Package mstl implements multi-seasonal time series decomposition.
//
// MSTL generalizes STL to series with several simultaneous seasonal
// periodicities, such as hourly data with both daily and weekly cycles.
// It runs one STL fit per period in increasing order of period length,
// keeping a working copy of the series with the current estimate of
// every other seasonal effect removed. Because each fit is sensitive to
// residual seasonality from the other periods, the whole sequence is
// repeated a second time when more than one period is present, so each
// component is re-estimated against the others' latest estimates.
//
// # Quick Start
//
// Decompose hourly data with daily and weekly seasonality:
//
//	series := timeseries.New(values)
//	periods := []int{24, 168}
//	res, err := mstl.New(series, periods).Fit()
//	if err != nil {
//	    // handle
//	}
//	daily, _ := res.Seasonal(24)
//	weekly, _ := res.Seasonal(168)
//	// res.Trend(), res.Residuals(), res.RobustWeights()
//
// Smoothing parameters shared by every per-period fit can be supplied:
//
//	params := stl.NewParams().SeasonalDegree(0).TrendDegree(1).InnerLoops(2)
//	res, err := mstl.New(series, periods).Params(params).Fit()
//
// The seasonal smoothing window of each fit is NOT taken from the
// shared parameters: it is derived from the period's rank in the sorted
// list (11, 15, 19, ... for the first, second, third period), per the
// MSTL paper.
//
// # Period handling
//
// Fit sorts the caller's period slice ascending and drops, in place,
// any period longer than half the series. Treat the slice as mutated
// after a fit. An empty list or a period of one or less yields
// ErrNonSeasonal; if no period survives the filter, Fit yields
// ErrNoFit.
package mstl
