// Public domain.

// Package ephem, solar ephemeris helpers for the scanner.
//
// Everything here is a thin layer over astro.Se2000, which is accurate to
// arcminutes.  That is plenty: the orbital longitude only enters the
// parameter-space metric, never the template coordinates themselves.  The
// obliquity pair is what package sky rotates template directions with.
package ephem

import (
	"math"

	"github.com/soniakeys/astro"
	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/unit"
)

// MJDJ2000 is the J2000.0 epoch as a modified Julian date.
const MJDJ2000 = base.J2000 - base.JMod

var soe, coe float64

func init() {
	_, soe, coe = astro.Se2000(MJDJ2000)
}

// SinCosObliquity returns sine and cosine of the mean obliquity of the
// ecliptic at J2000.0.  The pair is fixed for the life of the process;
// rotations between equatorial and ecliptic frames all use it.
func SinCosObliquity() (s, c float64) {
	return soe, coe
}

// OrbitalLongitude returns the heliocentric ecliptic longitude of the Earth
// at the given modified Julian date, in [0, 2π).
func OrbitalLongitude(mjd float64) unit.Angle {
	se, s, c := astro.Se2000(mjd)
	se.RotateX(&se, s, c) // now ecliptic
	// se points earth→sun.  the Earth seen from the sun is half a turn away.
	lam := math.Atan2(se.Y, se.X) + math.Pi
	lam = math.Mod(lam, 2*math.Pi)
	if lam < 0 {
		lam += 2 * math.Pi
	}
	return unit.Angle(lam)
}

// MJDFromCalendar converts a Gregorian calendar date to a modified
// Julian date.
func MJDFromCalendar(y, m int, d float64) float64 {
	return julian.CalendarGregorianToJD(y, m, d) - base.JMod
}

// JDFromMJD converts a modified Julian date to a Julian date.
func JDFromMJD(mjd float64) float64 {
	return mjd + base.JMod
}
