// Public domain.

package ephem_test

import (
	"math"
	"testing"

	"github.com/astrophysicsvivien/cwscan/ephem"
)

func TestSinCosObliquity(t *testing.T) {
	s, c := ephem.SinCosObliquity()
	// mean obliquity at J2000, 23.439°
	if math.Abs(s-.39775) > 1e-4 {
		t.Fatal("sin obliquity", s)
	}
	if math.Abs(c-.91748) > 1e-4 {
		t.Fatal("cos obliquity", c)
	}
	if math.Abs(s*s+c*c-1) > 1e-12 {
		t.Fatal("not normalized")
	}
}

func TestOrbitalLongitude(t *testing.T) {
	// at the March 2000 equinox the sun's longitude is zero, so the
	// Earth's is half a turn
	lam := ephem.OrbitalLongitude(51623.5).Rad()
	if math.Abs(lam-math.Pi) > .05 {
		t.Fatal("longitude at equinox", lam)
	}
	// half a year later the Earth is near the opposite side
	lam2 := ephem.OrbitalLongitude(51623.5 + 182.625).Rad()
	d := math.Mod(lam2-lam+3*math.Pi, 2*math.Pi) - math.Pi
	if math.Abs(math.Abs(d)-math.Pi) > .1 {
		t.Fatal("half year advance", d)
	}
	for _, mjd := range []float64{40000, 51544.5, 60000.25} {
		l := ephem.OrbitalLongitude(mjd).Rad()
		if l < 0 || l >= 2*math.Pi {
			t.Fatal("longitude out of range at", mjd, l)
		}
	}
}

func TestMJDFromCalendar(t *testing.T) {
	if mjd := ephem.MJDFromCalendar(2000, 1, 1.5); mjd != 51544.5 {
		t.Fatal("J2000 epoch", mjd)
	}
	if jd := ephem.JDFromMJD(51544.5); jd != 2451545 {
		t.Fatal("JD of J2000", jd)
	}
}
