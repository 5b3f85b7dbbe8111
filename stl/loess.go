package stl

import "math"

// estimate computes one loess estimate at position xs from the points
// y[nleft..nright] (inclusive). Neighbourhood weights are tricube in the
// distance from xs and, when useRW is set, multiplied by the robustness
// weights rw. degree selects locally-constant (0) or locally-linear (1)
// regression. The second return value is false when every neighbourhood
// weight vanishes; callers fall back to the raw observation.
func estimate(y []float64, span, degree int, xs float64, nleft, nright int, rw []float64, useRW bool) (float64, bool) {
	n := len(y)
	h := math.Max(xs-float64(nleft), float64(nright)-xs)
	if span > n {
		h += float64(span-n) / 2
	}
	h9 := 0.999 * h
	h1 := 0.001 * h

	w := make([]float64, nright-nleft+1)
	sum := 0.0
	for j := nleft; j <= nright; j++ {
		r := math.Abs(float64(j) - xs)
		if r <= h9 {
			var wj float64
			if r <= h1 {
				wj = 1
			} else {
				d := r / h
				c := 1 - d*d*d
				wj = c * c * c
			}
			if useRW {
				wj *= rw[j]
			}
			w[j-nleft] = wj
			sum += wj
		}
	}
	if sum <= 0 {
		return 0, false
	}
	for j := range w {
		w[j] /= sum
	}

	if h > 0 && degree > 0 {
		// Locally-linear fit: tilt the normalized weights so that the
		// weighted regression line is evaluated at xs.
		center := 0.0
		for j := nleft; j <= nright; j++ {
			center += w[j-nleft] * float64(j)
		}
		slope := xs - center
		spread := 0.0
		for j := nleft; j <= nright; j++ {
			d := float64(j) - center
			spread += w[j-nleft] * d * d
		}
		if math.Sqrt(spread) > 0.001*float64(n-1) {
			slope /= spread
			for j := nleft; j <= nright; j++ {
				w[j-nleft] *= slope*(float64(j)-center) + 1
			}
		}
	}

	est := 0.0
	for j := nleft; j <= nright; j++ {
		est += w[j-nleft] * y[j]
	}
	return est, true
}

// smooth applies loess with the given span, degree and jump stride to y,
// writing the fitted curve into ys (same length as y). Positions skipped
// by the stride are filled by linear interpolation between fitted points,
// and neighbourhoods shrink toward the series boundaries.
func smooth(y []float64, span, degree, jump int, rw []float64, useRW bool, ys []float64) {
	n := len(y)
	if n < 2 {
		ys[0] = y[0]
		return
	}
	stride := jump
	if stride > n-1 {
		stride = n - 1
	}

	var nleft, nright int
	switch {
	case span >= n:
		nleft, nright = 0, n-1
		for i := 0; i < n; i += stride {
			ys[i] = estimateOr(y, span, degree, float64(i), nleft, nright, rw, useRW, y[i])
		}
	case stride == 1:
		half := (span + 1) / 2
		nleft, nright = 0, span-1
		for i := 0; i < n; i++ {
			if i >= half && nright != n-1 {
				nleft++
				nright++
			}
			ys[i] = estimateOr(y, span, degree, float64(i), nleft, nright, rw, useRW, y[i])
		}
	default:
		half := (span + 1) / 2
		for i := 0; i < n; i += stride {
			switch {
			case i < half-1:
				nleft, nright = 0, span-1
			case i >= n-half:
				nleft, nright = n-span, n-1
			default:
				nleft, nright = i-half+1, i+span-half
			}
			ys[i] = estimateOr(y, span, degree, float64(i), nleft, nright, rw, useRW, y[i])
		}
	}

	if stride == 1 {
		return
	}
	for i := 0; i+stride < n; i += stride {
		delta := (ys[i+stride] - ys[i]) / float64(stride)
		for j := i + 1; j < i+stride; j++ {
			ys[j] = ys[i] + delta*float64(j-i)
		}
	}
	last := ((n - 1) / stride) * stride
	if last != n-1 {
		ys[n-1] = estimateOr(y, span, degree, float64(n-1), nleft, nright, rw, useRW, y[n-1])
		if last != n-2 {
			delta := (ys[n-1] - ys[last]) / float64(n-1-last)
			for j := last + 1; j < n-1; j++ {
				ys[j] = ys[last] + delta*float64(j-last)
			}
		}
	}
}

func estimateOr(y []float64, span, degree int, xs float64, nleft, nright int, rw []float64, useRW bool, fallback float64) float64 {
	if v, ok := estimate(y, span, degree, xs, nleft, nright, rw, useRW); ok {
		return v
	}
	return fallback
}
