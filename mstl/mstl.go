package mstl

import (
	"errors"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/DemoYeti/augurs/stl"
	"github.com/DemoYeti/augurs/timeseries"
)

var (
	// ErrNonSeasonal indicates an empty period list or a period of one
	// or less. Series without a seasonal cycle cannot be decomposed.
	ErrNonSeasonal = errors.New("mstl: non-seasonal data not supported")

	// ErrNoFit indicates that no STL fit ran because every requested
	// period exceeded half the series length.
	ErrNoFit = errors.New("mstl: no STL fit produced")
)

// Fitter is the single-period decomposition invoked for each seasonal
// component. *stl.Params is adapted to it by default; tests may
// substitute a stub.
type Fitter interface {
	Fit(y []float64, period, seasonalLength int) (*stl.Result, error)
}

// paramsFitter adapts an stl.Params to the Fitter interface, overriding
// the seasonal length per call.
type paramsFitter struct {
	params *stl.Params
}

func (f paramsFitter) Fit(y []float64, period, seasonalLength int) (*stl.Result, error) {
	return f.params.SeasonalLength(seasonalLength).Fit(y, period)
}

// MSTL decomposes a series with several seasonal periodicities by
// running STL once per period, shortest first, and re-estimating each
// seasonal component against the latest estimates of the others.
//
// MSTL borrows both the series and the period slice for its lifetime.
// Fit sorts and filters the period slice IN PLACE: after a fit the
// caller's slice is sorted ascending with any surviving periods moved to
// the front.
type MSTL struct {
	series  *timeseries.Series
	periods []int
	fitter  Fitter
	logger  zerolog.Logger
}

// New creates a decomposition of series for the given seasonal periods.
// The periods slice is retained and mutated by Fit; see the type
// documentation. Call Fit to run the decomposition.
func New(series *timeseries.Series, periods []int) *MSTL {
	return &MSTL{
		series:  series,
		periods: periods,
		fitter:  paramsFitter{params: stl.NewParams()},
		logger:  zerolog.Nop(),
	}
}

// Params sets the smoothing parameters shared by every per-period STL
// fit. The seasonal length is overridden per period; see Fit.
func (m *MSTL) Params(p *stl.Params) *MSTL {
	m.fitter = paramsFitter{params: p}
	return m
}

// Fitter replaces the single-period decomposition. Intended for tests.
func (m *MSTL) Fitter(f Fitter) *MSTL {
	m.fitter = f
	return m
}

// Logger sets the logger used to trace per-period fits at debug level.
func (m *MSTL) Logger(l zerolog.Logger) *MSTL {
	m.logger = l
	return m
}

// Fit runs the decomposition and returns the final components.
//
// Periods are processed in ascending order. With more than one period,
// two full passes are made so that each period's seasonal component is
// re-estimated with the others' latest estimates removed; with a single
// period one pass suffices. The trend and robustness weights of the
// last fit win; residuals are what remains of the series after removing
// every seasonal component and that trend.
func (m *MSTL) Fit() (*Decomposition, error) {
	if err := m.processPeriods(); err != nil {
		return nil, err
	}
	windows := seasonalWindows(len(m.periods))
	iterations := 2
	if len(m.periods) == 1 {
		iterations = 1
	}

	y := m.series.Values
	n := len(y)
	seasonals := make(map[int][]float64, len(m.periods))
	for _, p := range m.periods {
		seasonals[p] = make([]float64, n)
	}
	deseas := make([]float64, n)
	copy(deseas, y)

	var last *stl.Result
	for iter := 0; iter < iterations; iter++ {
		for j, period := range m.periods {
			// Add this period's current seasonal estimate back on, so
			// the fit sees the series with only the OTHER seasonal
			// effects removed. All zeros on the first pass.
			seas := seasonals[period]
			for i := range deseas {
				deseas[i] += seas[i]
			}

			m.logger.Debug().
				Int("iteration", iter).
				Int("period", period).
				Int("seasonal_length", windows[j]).
				Msg("running STL fit")
			fit, err := m.fitter.Fit(deseas, period, windows[j])
			if err != nil {
				return nil, fmt.Errorf("mstl: decomposing period %d: %w", period, err)
			}
			seasonals[period] = fit.Seasonal
			last = fit

			// Subtract the fresh estimate so the next period's fit sees
			// this period's latest seasonal effect removed.
			for i, s := range fit.Seasonal {
				deseas[i] -= s
			}
		}
	}
	if last == nil {
		return nil, ErrNoFit
	}

	// The deseasonalized series minus the last fit's trend is the
	// residual.
	trend := last.Trend
	for i := range deseas {
		deseas[i] -= trend[i]
	}
	return &Decomposition{
		trend:         trend,
		seasonal:      seasonals,
		residuals:     deseas,
		robustWeights: last.Weights,
	}, nil
}

// processPeriods sorts the period slice ascending, rejects non-seasonal
// input, and drops in place any period longer than half the series: a
// cycle cannot be estimated from fewer than two repetitions. The
// caller's slice is mutated.
func (m *MSTL) processPeriods() error {
	sort.Ints(m.periods)
	if len(m.periods) == 0 || m.periods[0] <= 1 {
		return ErrNonSeasonal
	}
	keep := m.periods[:0]
	for _, p := range m.periods {
		if p <= m.series.Len()/2 {
			keep = append(keep, p)
		}
	}
	m.periods = keep
	return nil
}

// seasonalWindows returns the seasonal smoothing window for each period
// rank: 11, 15, 19, ... Longer periods get wider windows. The formula
// follows the MSTL paper and is always odd, as the smoother requires.
func seasonalWindows(count int) []int {
	windows := make([]int, count)
	for i := range windows {
		windows[i] = 7 + 4*(i+1)
	}
	return windows
}
