// Public domain.

// Package sky implements unit-vector sky geometry: conversions between
// spherical coordinates and Cartesian vectors in the equatorial and ecliptic
// frames, hemisphere classification, and spherical polygons projected onto
// the ecliptic plane.
package sky

import (
	"errors"
	"math"

	"github.com/soniakeys/coord"
	"github.com/soniakeys/unit"

	"github.com/astrophysicsvivien/cwscan/ephem"
)

// System identifies a celestial coordinate system.
type System int

const (
	Equatorial System = iota
	Ecliptic
)

func (s System) String() string {
	if s == Ecliptic {
		return "ecliptic"
	}
	return "equatorial"
}

// Pos is a sky position: right ascension (or ecliptic longitude) and
// declination (or ecliptic latitude), tagged with the system they are
// expressed in.
type Pos struct {
	RA  unit.RA
	Dec unit.Angle
	Sys System
}

// obliquity rotation, fixed at J2000
var soe, coe = ephem.SinCosObliquity()

// EquatorialToEcliptic rotates v in place from the equatorial to the
// ecliptic frame.
func EquatorialToEcliptic(v *coord.Cart) {
	v.RotateX(v, soe, coe)
}

// EclipticToEquatorial rotates v in place from the ecliptic to the
// equatorial frame.
func EclipticToEquatorial(v *coord.Cart) {
	v.RotateX(v, -soe, coe)
}

// Vec3 returns the unit vector of p expressed in system sys.
func Vec3(p Pos, sys System) coord.Cart {
	sd, cd := math.Sincos(p.Dec.Rad())
	sa, ca := math.Sincos(p.RA.Rad())
	v := coord.Cart{X: ca * cd, Y: sa * cd, Z: sd}
	switch {
	case p.Sys == Equatorial && sys == Ecliptic:
		EquatorialToEcliptic(&v)
	case p.Sys == Ecliptic && sys == Equatorial:
		EclipticToEquatorial(&v)
	}
	return v
}

// ToPos expresses the vector v, given in system from, as sky coordinates in
// system as.  Longitude is normalized to [0, 2π), latitude to [-π/2, π/2].
func ToPos(v *coord.Cart, from, as System) Pos {
	w := *v
	switch {
	case from == Equatorial && as == Ecliptic:
		EquatorialToEcliptic(&w)
	case from == Ecliptic && as == Equatorial:
		EclipticToEquatorial(&w)
	}
	lon := math.Atan2(w.Y, w.X)
	if lon < 0 {
		lon += 2 * math.Pi
	}
	lat := math.Atan2(w.Z, math.Hypot(w.X, w.Y))
	return Pos{RA: unit.RA(lon), Dec: unit.Angle(lat), Sys: as}
}

// Norm returns the Euclidean norm of v.
func Norm(v *coord.Cart) float64 {
	return math.Sqrt(v.Square())
}

// Hemi classifies which side of the fundamental plane a vector lies on.
type Hemi int

const (
	HemiBoth  Hemi = 0
	HemiNorth Hemi = 1
	HemiSouth Hemi = -1
)

func (h Hemi) String() string {
	switch h {
	case HemiNorth:
		return "north"
	case HemiSouth:
		return "south"
	}
	return "both"
}

// Sign returns +1, -1, or 0.
func (h Hemi) Sign() float64 { return float64(h) }

// Hemisphere classifies v by the sign of its Z component.  A vector exactly
// in the fundamental plane classifies as HemiBoth.
func Hemisphere(v *coord.Cart) Hemi {
	switch {
	case v.Z > 0:
		return HemiNorth
	case v.Z < 0:
		return HemiSouth
	}
	return HemiBoth
}

// ErrBothHemispheres reports a point list straddling the fundamental plane.
var ErrBothHemispheres = errors.New("sky: points on both hemispheres")

// HemisphereOf classifies a list of vectors.  The first vector off the
// fundamental plane fixes the hemisphere; a later vector off the plane on
// the opposite side is ErrBothHemispheres.  A list entirely in the plane
// returns HemiBoth with no error.
func HemisphereOf(vs []coord.Cart) (Hemi, error) {
	h := HemiBoth
	for i := range vs {
		switch hv := Hemisphere(&vs[i]); {
		case hv == HemiBoth:
		case h == HemiBoth:
			h = hv
		case hv != h:
			return HemiBoth, ErrBothHemispheres
		}
	}
	return h, nil
}

// CenterOfMass returns the arithmetic mean of the vectors.  The result is
// not renormalized onto the unit sphere.
func CenterOfMass(vs []coord.Cart) coord.Cart {
	var cm coord.Cart
	for i := range vs {
		cm.Add(&cm, &vs[i])
	}
	cm.MulScalar(&cm, 1/float64(len(vs)))
	return cm
}
