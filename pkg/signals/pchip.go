package signals

import (
	"math"

	"github.com/cpslab-asu/staliro-go/pkg/core"
)

// pchipSignal interpolates control points with a monotone piecewise cubic
// Hermite spline (Fritsch-Carlson derivatives). The interpolant never
// overshoots the control points, which keeps generated inputs inside their
// declared bounds.
type pchipSignal struct {
	times  []float64
	values []float64
	derivs []float64
}

// Pchip creates a signal using shape-preserving cubic interpolation.
func Pchip(times, values []float64) (core.Signal, error) {
	if err := validateControlPoints(times, values, 2); err != nil {
		return nil, err
	}

	return &pchipSignal{
		times:  times,
		values: values,
		derivs: pchipDerivatives(times, values),
	}, nil
}

func (s *pchipSignal) At(t float64) float64 {
	i := segment(s.times, t)

	h := s.times[i+1] - s.times[i]
	u := (t - s.times[i]) / h
	u2 := u * u
	u3 := u2 * u

	h00 := 2*u3 - 3*u2 + 1
	h10 := u3 - 2*u2 + u
	h01 := -2*u3 + 3*u2
	h11 := u3 - u2

	return h00*s.values[i] + h10*h*s.derivs[i] + h01*s.values[i+1] + h11*h*s.derivs[i+1]
}

func (s *pchipSignal) AtTimes(times []float64) []float64 {
	return core.SampleTimes(s, times)
}

// pchipDerivatives computes the control-point derivatives of the monotone
// interpolant. Interior derivatives are the weighted harmonic mean of the
// adjacent secant slopes when those slopes agree in sign, and zero at local
// extrema. Endpoint derivatives use the one-sided three-point estimate with
// the standard monotonicity clamps.
func pchipDerivatives(times, values []float64) []float64 {
	n := len(times)

	h := make([]float64, n-1)
	delta := make([]float64, n-1)
	for i := 0; i < n-1; i++ {
		h[i] = times[i+1] - times[i]
		delta[i] = (values[i+1] - values[i]) / h[i]
	}

	d := make([]float64, n)

	if n == 2 {
		d[0] = delta[0]
		d[1] = delta[0]
		return d
	}

	for i := 1; i < n-1; i++ {
		if delta[i-1]*delta[i] > 0 {
			w1 := 2*h[i] + h[i-1]
			w2 := h[i] + 2*h[i-1]
			d[i] = (w1 + w2) / (w1/delta[i-1] + w2/delta[i])
		}
	}

	d[0] = edgeDerivative(h[0], h[1], delta[0], delta[1])
	d[n-1] = edgeDerivative(h[n-2], h[n-3], delta[n-2], delta[n-3])

	return d
}

func edgeDerivative(hEdge, hNext, deltaEdge, deltaNext float64) float64 {
	d := ((2*hEdge+hNext)*deltaEdge - hEdge*deltaNext) / (hEdge + hNext)

	if math.Signbit(d) != math.Signbit(deltaEdge) || deltaEdge == 0 {
		return 0
	}
	if math.Signbit(deltaEdge) != math.Signbit(deltaNext) && math.Abs(d) > 3*math.Abs(deltaEdge) {
		return 3 * deltaEdge
	}

	return d
}
