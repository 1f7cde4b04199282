// Public domain.

// Package metric provides the flat parameter-space metric consumed by the
// scanner.
//
// In canonical coordinates the signal phase is linear in the parameters, so
// the mismatch metric is the covariance of the phase derivative basis over
// the observation span and does not depend on the point.  Flat computes it
// by direct time averaging.  Callers with their own metric supply any
// function matching Factory.
package metric

import (
	"fmt"
	"math"

	"github.com/gonum/matrix/mat64"

	"github.com/astrophysicsvivien/cwscan/doppler"
	"github.com/astrophysicsvivien/cwscan/ephem"
)

// Factory computes a positive-definite dim×dim metric in canonical
// coordinates for an observation starting at startMJD spanning span
// seconds, with spins referred to refMJD.
type Factory func(refMJD, startMJD, span float64, dim int) (*mat64.SymDense, error)

// simpson panels per span
const quadSteps = 512

// Flat is the reference Factory: the covariance over the observation of
// the canonical phase derivatives
//
//	∂φ/∂w_s = τ^(s+1)        τ = (t-t0)/T in [0,1]
//	∂φ/∂kX  = cos λ(t)
//	∂φ/∂kY  = sin λ(t)
//
// with λ the orbital longitude of the Earth.  The reference time enters the
// phase only as an offset and drops out of the covariance.
func Flat(refMJD, startMJD, span float64, dim int) (*mat64.SymDense, error) {
	if dim < 3 || dim > doppler.Dim(doppler.MaxSpins) {
		return nil, fmt.Errorf("metric: dimension %d out of range", dim)
	}
	if span <= 0 {
		return nil, fmt.Errorf("metric: span %g not positive", span)
	}
	basis := func(tau float64) []float64 {
		b := make([]float64, dim)
		b[0] = tau
		lam := ephem.OrbitalLongitude(startMJD + tau*span/86400).Rad()
		s, c := math.Sincos(lam)
		b[1] = c
		b[2] = s
		p := tau
		for a := 3; a < dim; a++ {
			p *= tau
			b[a] = p
		}
		return b
	}

	mean := make([]float64, dim)
	prod := make([][]float64, dim)
	for a := range prod {
		prod[a] = make([]float64, dim)
	}
	h := 1 / float64(quadSteps)
	for i := 0; i <= quadSteps; i++ {
		w := h / 3
		switch {
		case i == 0 || i == quadSteps:
		case i%2 == 1:
			w *= 4
		default:
			w *= 2
		}
		b := basis(float64(i) * h)
		for a := 0; a < dim; a++ {
			mean[a] += w * b[a]
			for c := a; c < dim; c++ {
				prod[a][c] += w * b[a] * b[c]
			}
		}
	}

	g := mat64.NewSymDense(dim, nil)
	for a := 0; a < dim; a++ {
		for c := a; c < dim; c++ {
			g.SetSym(a, c, prod[a][c]-mean[a]*mean[c])
		}
	}
	return g, nil
}
