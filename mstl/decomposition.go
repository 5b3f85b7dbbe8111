package mstl

// Decomposition is the result of a multi-seasonal fit: an additive
// trend, one seasonal component per surviving period, the residuals,
// and the robustness weights of the final STL fit. All sequences have
// the length of the input series.
//
// A Decomposition is immutable. Accessors return views of the internal
// sequences; callers must not modify them.
type Decomposition struct {
	trend         []float64
	seasonal      map[int][]float64
	residuals     []float64
	robustWeights []float64
}

// Trend returns the trend component.
func (d *Decomposition) Trend() []float64 {
	return d.trend
}

// Seasonal returns the seasonal component for the given period. The
// second return value is false when the period was not part of the fit,
// either because it was never requested or because it was dropped for
// exceeding half the series length.
func (d *Decomposition) Seasonal(period int) ([]float64, bool) {
	s, ok := d.seasonal[period]
	return s, ok
}

// Seasonals returns the mapping from period to seasonal component.
func (d *Decomposition) Seasonals() map[int][]float64 {
	return d.seasonal
}

// Residuals returns the residual component.
func (d *Decomposition) Residuals() []float64 {
	return d.residuals
}

// RobustWeights returns the robustness weights of the final STL fit.
func (d *Decomposition) RobustWeights() []float64 {
	return d.robustWeights
}
