package stl

import (
	"errors"
	"math"
	"sort"
)

var (
	// ErrPeriod indicates a period shorter than one full cycle.
	ErrPeriod = errors.New("stl: period must be at least 2")

	// ErrSeriesTooShort indicates a series with fewer than two full
	// cycles of the requested period.
	ErrSeriesTooShort = errors.New("stl: series must span at least two full periods")

	// ErrInvalidParams indicates an unusable smoothing parameter.
	ErrInvalidParams = errors.New("stl: invalid smoothing parameters")
)

// Result holds the components of a single-period STL decomposition. All
// slices have the length of the input series, and
// y[i] = Trend[i] + Seasonal[i] + Remainder[i] for every index.
type Result struct {
	Trend     []float64
	Seasonal  []float64
	Remainder []float64
	Weights   []float64 // robustness weights, all ones when no outer loops ran
}

// Fit decomposes y into seasonal, trend and remainder components for a
// single seasonal period.
func (p *Params) Fit(y []float64, period int) (*Result, error) {
	c, err := p.resolve(len(y), period)
	if err != nil {
		return nil, err
	}

	n := len(y)
	weights := make([]float64, n)
	for i := range weights {
		weights[i] = 1
	}
	seasonal := make([]float64, n)
	trend := make([]float64, n)

	useRW := false
	for k := 0; ; k++ {
		innerLoop(y, period, c, weights, useRW, seasonal, trend)
		if k >= c.outerLoops {
			break
		}
		robustnessWeights(y, seasonal, trend, weights)
		useRW = true
	}

	remainder := make([]float64, n)
	for i := range remainder {
		remainder[i] = y[i] - seasonal[i] - trend[i]
	}
	return &Result{
		Trend:     trend,
		Seasonal:  seasonal,
		Remainder: remainder,
		Weights:   weights,
	}, nil
}

// innerLoop runs the seasonal/trend refinement passes of one robustness
// iteration, updating seasonal and trend in place.
func innerLoop(y []float64, period int, c config, rw []float64, useRW bool, seasonal, trend []float64) {
	n := len(y)
	work := make([]float64, n)
	extended := make([]float64, n+2*period)
	lowPass := make([]float64, n)

	for loop := 0; loop < c.innerLoops; loop++ {
		// Detrend, then smooth each cycle-subseries.
		for i := range work {
			work[i] = y[i] - trend[i]
		}
		smoothSubseries(work, period, c.seasonalLength, c.seasonalDegree, c.seasonalJump, rw, useRW, extended)

		// Low-pass filter the smoothed subseries and subtract it, so the
		// seasonal component carries no residual trend.
		filtered := lowPassFilter(extended, period)
		smooth(filtered, c.lowPassLength, c.lowPassDegree, c.lowPassJump, nil, false, lowPass)
		for i := 0; i < n; i++ {
			seasonal[i] = extended[period+i] - lowPass[i]
		}

		// Deseasonalize and smooth for the trend.
		for i := 0; i < n; i++ {
			work[i] = y[i] - seasonal[i]
		}
		smooth(work, c.trendLength, c.trendDegree, c.trendJump, rw, useRW, trend)
	}
}

// smoothSubseries loess-smooths each cycle-subseries of y and extends
// the fit by one full cycle at each end, writing a sequence of length
// len(y)+2*period into extended.
func smoothSubseries(y []float64, period, span, degree, jump int, rw []float64, useRW bool, extended []float64) {
	n := len(y)
	for j := 0; j < period; j++ {
		k := (n-j-1)/period + 1
		sub := make([]float64, k)
		for i := 0; i < k; i++ {
			sub[i] = y[i*period+j]
		}
		var subRW []float64
		if useRW {
			subRW = make([]float64, k)
			for i := 0; i < k; i++ {
				subRW[i] = rw[i*period+j]
			}
		}

		fitted := make([]float64, k+2)
		smooth(sub, span, degree, jump, subRW, useRW, fitted[1:k+1])

		// One extrapolated point on each side keeps the low-pass filter
		// fed at the series boundaries.
		right := span
		if right > k {
			right = k
		}
		if v, ok := estimate(sub, span, degree, -1, 0, right-1, subRW, useRW); ok {
			fitted[0] = v
		} else {
			fitted[0] = fitted[1]
		}
		left := k - span
		if left < 0 {
			left = 0
		}
		if v, ok := estimate(sub, span, degree, float64(k), left, k-1, subRW, useRW); ok {
			fitted[k+1] = v
		} else {
			fitted[k+1] = fitted[k]
		}

		for m := 0; m < k+2; m++ {
			extended[m*period+j] = fitted[m]
		}
	}
}

// lowPassFilter applies moving averages of length period, period and 3
// in sequence, shortening x by 2*period.
func lowPassFilter(x []float64, period int) []float64 {
	a := movingAverage(x, period)
	b := movingAverage(a, period)
	return movingAverage(b, 3)
}

// movingAverage computes the running mean of the given length, producing
// len(x)-length+1 values.
func movingAverage(x []float64, length int) []float64 {
	out := make([]float64, len(x)-length+1)
	sum := 0.0
	for i := 0; i < length; i++ {
		sum += x[i]
	}
	out[0] = sum / float64(length)
	for i := 1; i < len(out); i++ {
		sum += x[i+length-1] - x[i-1]
		out[i] = sum / float64(length)
	}
	return out
}

// robustnessWeights fills rw with bisquare weights of the absolute
// remainders, scaled by six times their median.
func robustnessWeights(y, seasonal, trend []float64, rw []float64) {
	n := len(y)
	maxAbs := 0.0
	for i := 0; i < n; i++ {
		r := y[i] - seasonal[i] - trend[i]
		if r < 0 {
			r = -r
		}
		rw[i] = r
		if a := math.Abs(y[i]); a > maxAbs {
			maxAbs = a
		}
	}
	scale := 6 * median(rw)
	// Keep the scale away from zero so a near-exact fit does not zero
	// every weight over float-level remainders.
	if floor := 1e-9 * maxAbs; scale < floor {
		scale = floor
	}
	c9 := 0.999 * scale
	c1 := 0.001 * scale
	for i := 0; i < n; i++ {
		switch r := rw[i]; {
		case r <= c1:
			rw[i] = 1
		case r <= c9:
			d := r / scale
			e := 1 - d*d
			rw[i] = e * e
		default:
			rw[i] = 0
		}
	}
}

// median calculates the median of a slice without modifying it.
func median(data []float64) float64 {
	n := len(data)
	if n == 0 {
		return 0
	}
	sorted := make([]float64, n)
	copy(sorted, data)
	sort.Float64s(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}
