// Public domain.

package doppler

import (
	"errors"
	"fmt"
	"math"

	"github.com/soniakeys/coord"

	"github.com/astrophysicsvivien/cwscan/sky"
)

// Physical constants of the canonical mapping.
const (
	AU         = 1.4959787e11 // m
	LightSpeed = 299792458    // m/s

	// kScale is the amplitude of the orbital Doppler phase per unit
	// frequency: 2π times the light travel time over one orbital radius.
	kScale = 2 * math.Pi * AU / LightSpeed
)

// Dim returns the canonical dimension for an active spin order: frequency,
// two sky coordinates, and one coordinate per spin derivative.
func Dim(order int) int { return 2 + order }

var errZeroFreq = errors.New("doppler: zero frequency, sky unrecoverable")

// Canonical maps p to canonical coordinates (w0, kX, kY, w1, ...) of the
// given dimension, in which the parameter-space metric over an observation
// of the given span is flat:
//
//	w_s = 2π T^(s+1) fkdot[s]
//	kX  = -2π (R/c) fkdot[0] nX
//	kY  = -2π (R/c) fkdot[0] nY
func Canonical(p *Point, span float64, dim int) ([]float64, error) {
	order := dim - 2
	if order < 1 || order > MaxSpins {
		return nil, fmt.Errorf("doppler: canonical dimension %d out of range", dim)
	}
	c := make([]float64, dim)
	tp := 2 * math.Pi * span
	c[0] = tp * p.Fkdot[0]
	c[1] = -kScale * p.Fkdot[0] * p.N.X
	c[2] = -kScale * p.Fkdot[0] * p.N.Y
	for s := 1; s < order; s++ {
		tp *= span
		c[s+2] = tp * p.Fkdot[s]
	}
	return c, nil
}

// FromCanonical inverts Canonical.  The sky direction is reconstructed on
// the hemisphere hemi; canonical sky coordinates more than eps outside the
// unit disk are ErrOffSphere, never clamped.
func FromCanonical(c []float64, span float64, hemi sky.Hemi) (Point, error) {
	order := len(c) - 2
	if order < 1 || order > MaxSpins {
		return Point{}, fmt.Errorf("doppler: canonical dimension %d out of range", len(c))
	}
	if hemi == sky.HemiBoth {
		return Point{}, errors.New("doppler: hemisphere unspecified")
	}
	var p Point
	tp := 2 * math.Pi * span
	f0 := c[0] / tp
	if f0 == 0 {
		return Point{}, errZeroFreq
	}
	p.Fkdot[0] = f0
	for s := 1; s < order; s++ {
		tp *= span
		p.Fkdot[s] = c[s+2] / tp
	}
	nx := -c[1] / (kScale * f0)
	ny := -c[2] / (kScale * f0)
	rr := nx*nx + ny*ny
	if rr > 1+eps {
		return Point{}, ErrOffSphere
	}
	p.N = coord.Cart{
		X: nx,
		Y: ny,
		Z: hemi.Sign() * math.Sqrt(math.Max(0, 1-rr)),
	}
	return p, nil
}
