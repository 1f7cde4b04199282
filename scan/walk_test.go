// Public domain.

package scan

import (
	"fmt"
	"math"
	"testing"

	"github.com/gonum/matrix/mat64"

	"github.com/astrophysicsvivien/cwscan/doppler"
)

func walkParams() Params {
	return Params{
		Span:     1e6,
		StartMJD: 55555,
		RefMJD:   55555,
		Mismatch: .01,
		Region:   "(0.1, 0.8), (0.2, 0.8), (0.15, 0.9)",
		Spins: doppler.SpinRange{
			RefMJD: 55555,
			Lower:  [doppler.MaxSpins]float64{100},
		},
		Metric: func(_, _, _ float64, dim int) (*mat64.SymDense, error) {
			g := mat64.NewSymDense(dim, nil)
			g.SetSym(0, 0, 1)
			g.SetSym(1, 1, 1e-8)
			g.SetSym(2, 2, 1e-8)
			return g, nil
		},
	}
}

// The walk never revisits an index, and every index maps to a canonical
// point offset from the origin by an integer combination of generator rows.
func TestWalkIndexes(t *testing.T) {
	sc, err := New(walkParams())
	if err != nil {
		t.Fatal(err)
	}
	seen := map[string]bool{}
	for n := 0; ; n++ {
		if n > 100000 {
			t.Fatal("walk did not finish")
		}
		key := fmt.Sprint(sc.idx)
		if seen[key] {
			t.Fatal("index revisited:", key)
		}
		seen[key] = true

		p, err := sc.pointAt(sc.idx)
		if err != nil {
			t.Fatal(err)
		}
		can, err := doppler.Canonical(&p, sc.span, sc.dim)
		if err != nil {
			t.Fatal(err)
		}
		for k := 0; k < sc.dim; k++ {
			var off float64
			for j := 0; j < sc.dim; j++ {
				off += float64(sc.idx[j]) * sc.gen.At(j, k)
			}
			want := sc.origin[k] + off
			if d := math.Abs(can[k] - want); d > 1e-6*math.Max(1, math.Abs(want)) {
				t.Fatal("canonical offset, component", k, can[k], want)
			}
		}

		more, err := sc.Advance()
		if err != nil {
			t.Fatal(err)
		}
		if !more {
			if len(seen) < 2 {
				t.Fatal("walk found only the origin")
			}
			return
		}
	}
}

// The origin of every accepted boundary lies inside it.
func TestOriginInside(t *testing.T) {
	sc, err := New(walkParams())
	if err != nil {
		t.Fatal(err)
	}
	in, err := sc.contains(sc.idx)
	if err != nil {
		t.Fatal(err)
	}
	if !in {
		t.Fatal("origin outside boundary")
	}
}
