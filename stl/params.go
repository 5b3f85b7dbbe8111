package stl

import (
	"fmt"
	"math"
)

const unset = -1

// Params configures an STL fit. Construct with NewParams and chain the
// setters:
//
//	fit, err := stl.NewParams().
//	    SeasonalLength(11).
//	    Robust(true).
//	    Fit(y, 24)
//
// Options left unset are resolved against the period and seasonal length
// at fit time, following the defaults of the reference implementation.
type Params struct {
	seasonalLength int
	seasonalDegree int
	seasonalJump   int
	trendLength    int
	trendDegree    int
	trendJump      int
	lowPassLength  int
	lowPassDegree  int
	lowPassJump    int
	innerLoops     int
	outerLoops     int
	robust         bool
}

// NewParams returns a Params with every option unset.
func NewParams() *Params {
	return &Params{
		seasonalLength: unset,
		seasonalDegree: unset,
		seasonalJump:   unset,
		trendLength:    unset,
		trendDegree:    unset,
		trendJump:      unset,
		lowPassLength:  unset,
		lowPassDegree:  unset,
		lowPassJump:    unset,
		innerLoops:     unset,
		outerLoops:     unset,
	}
}

// SeasonalLength sets the loess span for cycle-subseries smoothing.
// Must be odd and at least 3. Defaults to 7.
func (p *Params) SeasonalLength(n int) *Params {
	p.seasonalLength = n
	return p
}

// SeasonalDegree sets the loess degree (0 or 1) for cycle-subseries
// smoothing. Defaults to 0.
func (p *Params) SeasonalDegree(d int) *Params {
	p.seasonalDegree = d
	return p
}

// SeasonalJump sets the evaluation stride for cycle-subseries smoothing.
// Defaults to one tenth of the seasonal length, rounded up.
func (p *Params) SeasonalJump(j int) *Params {
	p.seasonalJump = j
	return p
}

// TrendLength sets the loess span for trend smoothing. Must be odd.
// Defaults to the smallest odd integer of at least
// 1.5*period/(1 - 1.5/seasonalLength).
func (p *Params) TrendLength(n int) *Params {
	p.trendLength = n
	return p
}

// TrendDegree sets the loess degree (0 or 1) for trend smoothing.
// Defaults to 1.
func (p *Params) TrendDegree(d int) *Params {
	p.trendDegree = d
	return p
}

// TrendJump sets the evaluation stride for trend smoothing. Defaults to
// one tenth of the trend length, rounded up.
func (p *Params) TrendJump(j int) *Params {
	p.trendJump = j
	return p
}

// LowPassLength sets the loess span for the low-pass filter. Must be
// odd. Defaults to the smallest odd integer of at least the period.
func (p *Params) LowPassLength(n int) *Params {
	p.lowPassLength = n
	return p
}

// LowPassDegree sets the loess degree (0 or 1) for the low-pass filter.
// Defaults to the trend degree.
func (p *Params) LowPassDegree(d int) *Params {
	p.lowPassDegree = d
	return p
}

// LowPassJump sets the evaluation stride for the low-pass filter.
// Defaults to one tenth of the low-pass length, rounded up.
func (p *Params) LowPassJump(j int) *Params {
	p.lowPassJump = j
	return p
}

// InnerLoops sets the number of seasonal/trend refinement passes per
// robustness iteration. Defaults to 2, or 1 when Robust is set.
func (p *Params) InnerLoops(n int) *Params {
	p.innerLoops = n
	return p
}

// OuterLoops sets the number of robustness iterations. Defaults to 0,
// or 15 when Robust is set.
func (p *Params) OuterLoops(n int) *Params {
	p.outerLoops = n
	return p
}

// Robust enables robustness iterations, downweighting outliers by their
// bisquare distance from the fit.
func (p *Params) Robust(r bool) *Params {
	p.robust = r
	return p
}

// config is a Params with every option resolved and validated.
type config struct {
	seasonalLength int
	seasonalDegree int
	seasonalJump   int
	trendLength    int
	trendDegree    int
	trendJump      int
	lowPassLength  int
	lowPassDegree  int
	lowPassJump    int
	innerLoops     int
	outerLoops     int
}

func (p *Params) resolve(n, period int) (config, error) {
	var c config
	if period < 2 {
		return c, ErrPeriod
	}
	if n < 2*period {
		return c, ErrSeriesTooShort
	}

	c.seasonalLength = p.seasonalLength
	if c.seasonalLength == unset {
		c.seasonalLength = 7
	}
	if err := checkLength("seasonal", c.seasonalLength); err != nil {
		return c, err
	}

	c.trendLength = p.trendLength
	if c.trendLength == unset {
		c.trendLength = nextOdd(int(math.Ceil(1.5 * float64(period) / (1 - 1.5/float64(c.seasonalLength)))))
	}
	if err := checkLength("trend", c.trendLength); err != nil {
		return c, err
	}

	c.lowPassLength = p.lowPassLength
	if c.lowPassLength == unset {
		c.lowPassLength = nextOdd(period)
	}
	if err := checkLength("low-pass", c.lowPassLength); err != nil {
		return c, err
	}

	c.seasonalDegree = p.seasonalDegree
	if c.seasonalDegree == unset {
		c.seasonalDegree = 0
	}
	c.trendDegree = p.trendDegree
	if c.trendDegree == unset {
		c.trendDegree = 1
	}
	c.lowPassDegree = p.lowPassDegree
	if c.lowPassDegree == unset {
		c.lowPassDegree = c.trendDegree
	}
	for _, d := range []struct {
		name  string
		value int
	}{
		{"seasonal", c.seasonalDegree},
		{"trend", c.trendDegree},
		{"low-pass", c.lowPassDegree},
	} {
		if d.value != 0 && d.value != 1 {
			return c, fmt.Errorf("%w: %s degree must be 0 or 1, got %d", ErrInvalidParams, d.name, d.value)
		}
	}

	c.seasonalJump = defaultJump(p.seasonalJump, c.seasonalLength)
	c.trendJump = defaultJump(p.trendJump, c.trendLength)
	c.lowPassJump = defaultJump(p.lowPassJump, c.lowPassLength)
	for _, j := range []struct {
		name  string
		value int
	}{
		{"seasonal", c.seasonalJump},
		{"trend", c.trendJump},
		{"low-pass", c.lowPassJump},
	} {
		if j.value < 1 {
			return c, fmt.Errorf("%w: %s jump must be at least 1, got %d", ErrInvalidParams, j.name, j.value)
		}
	}

	c.innerLoops = p.innerLoops
	c.outerLoops = p.outerLoops
	if c.innerLoops == unset {
		if p.robust {
			c.innerLoops = 1
		} else {
			c.innerLoops = 2
		}
	}
	if c.outerLoops == unset {
		if p.robust {
			c.outerLoops = 15
		} else {
			c.outerLoops = 0
		}
	}
	if c.innerLoops < 1 {
		return c, fmt.Errorf("%w: inner loops must be at least 1, got %d", ErrInvalidParams, c.innerLoops)
	}
	if c.outerLoops < 0 {
		return c, fmt.Errorf("%w: outer loops must not be negative, got %d", ErrInvalidParams, c.outerLoops)
	}
	return c, nil
}

func checkLength(name string, v int) error {
	if v < 3 || v%2 == 0 {
		return fmt.Errorf("%w: %s length must be odd and at least 3, got %d", ErrInvalidParams, name, v)
	}
	return nil
}

func defaultJump(j, length int) int {
	if j == unset {
		return (length + 9) / 10
	}
	return j
}

func nextOdd(v int) int {
	if v%2 == 0 {
		v++
	}
	if v < 3 {
		v = 3
	}
	return v
}
