// Public domain.

// Package doppler defines the Doppler parameter space searched by the
// scanner: a unit sky direction plus a spin polynomial at a reference time,
// the boundary that a search covers, and the canonical coordinates in which
// the parameter-space metric is flat.
package doppler

import (
	"errors"
	"fmt"
	"math"

	"github.com/soniakeys/coord"

	"github.com/astrophysicsvivien/cwscan/sky"
)

// MaxSpins is the number of spin polynomial coefficients carried by every
// Doppler point: frequency plus three derivatives.
const MaxSpins = 4

// eps is the relative tolerance of all boundary comparisons.
const eps = 1e-10

// Point is a point of the physical search space: a unit sky direction in
// ecliptic Cartesian coordinates and spin coefficients fkdot[s] = d^s f/dt^s
// at the reference time of the enclosing search.
type Point struct {
	N     coord.Cart
	Fkdot [MaxSpins]float64
}

// SpinRange is a box in spin space: lower bounds and non-negative widths
// for each coefficient, at reference time RefMJD.
type SpinRange struct {
	RefMJD float64
	Lower  [MaxSpins]float64
	Band   [MaxSpins]float64
}

// Validate reports a negative band width.
func (r *SpinRange) Validate() error {
	for s, b := range r.Band {
		if b < 0 {
			return fmt.Errorf("doppler: negative band for spin order %d", s)
		}
	}
	return nil
}

// Order returns the active spin dimension: one past the highest order with
// a non-zero band, and at least 1.
func (r *SpinRange) Order() int {
	for s := MaxSpins - 1; s > 0; s-- {
		if r.Band[s] != 0 {
			return s + 1
		}
	}
	return 1
}

// Mid returns the midpoint of the interval for spin order s.
func (r *SpinRange) Mid(s int) float64 {
	return r.Lower[s] + r.Band[s]*.5
}

// Contains reports whether each coefficient lies in its interval, each
// bound taken with relative tolerance so that exact boundary values
// classify inside.
func (r *SpinRange) Contains(fkdot *[MaxSpins]float64) bool {
	for s := 0; s < MaxSpins; s++ {
		lo := r.Lower[s]
		hi := lo + r.Band[s]
		if fkdot[s] < lo-eps*math.Abs(lo) || fkdot[s] > hi+eps*math.Abs(hi) {
			return false
		}
	}
	return true
}

// Boundary bounds a search: a sky polygon in the ecliptic projection, the
// hemisphere the polygon projects from, and a spin box.
type Boundary struct {
	Poly  sky.Polygon
	Hemi  sky.Hemi
	Spins SpinRange
}

// Contains reports whether p lies in the boundary: polygon containment of
// the ecliptic projection, hemisphere match, and spin box containment.
// A direction exactly in the ecliptic plane matches either hemisphere.
func (b *Boundary) Contains(p *Point) bool {
	if h := sky.Hemisphere(&p.N); h != b.Hemi && h != sky.HemiBoth {
		return false
	}
	if !b.Poly.Contains(p.N.X, p.N.Y) {
		return false
	}
	return b.Spins.Contains(&p.Fkdot)
}

// ErrOffSphere reports canonical sky coordinates outside the unit disk.
var ErrOffSphere = errors.New("doppler: sky coordinates off the unit sphere")
