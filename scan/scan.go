// Public domain.

// Package scan enumerates the template lattice covering a Doppler search
// boundary.
//
// A Scan is a sequential iterator.  It is created Ready, positioned on the
// canonical image of the region midpoint; callers read Current before the
// first Advance to visit that origin template.  Advance walks outward along
// the lattice axes and reports false once the boundary is exhausted.
package scan

import (
	"errors"
	"fmt"

	"github.com/gonum/matrix/mat64"
	"github.com/soniakeys/coord"

	"github.com/astrophysicsvivien/cwscan/doppler"
	"github.com/astrophysicsvivien/cwscan/lattice"
	"github.com/astrophysicsvivien/cwscan/metric"
	"github.com/astrophysicsvivien/cwscan/sky"
)

type state int

const (
	idle state = iota
	ready
	finished
)

// ErrNotReady reports an operation on a scan that is not Ready.
var ErrNotReady = errors.New("scan: not ready")

// Params collects everything needed to initialize a scan.
type Params struct {
	Span     float64 // observation span, seconds
	StartMJD float64 // start of the observation
	RefMJD   float64 // spin reference time, passed to the metric; templates carry Spins.RefMJD
	Mismatch float64 // maximum squared metric distance to the nearest template
	Region   string  // sky region string, (α,δ) pairs in equatorial radians
	Spins    doppler.SpinRange
	Metric   metric.Factory
}

// Template is one enumerated Doppler point, ready for the detection
// statistic stage.
type Template struct {
	RefMJD float64
	Pos    sky.Pos
	Fkdot  [doppler.MaxSpins]float64
}

// Scan is the scanner state.  It exclusively owns its boundary, generator
// and index; it is not safe for concurrent use, but independent scans may
// run in parallel.
type Scan struct {
	state  state
	span   float64
	dim    int
	bnd    doppler.Boundary
	origin []float64    // canonical image of the region midpoint
	gen    *mat64.Dense // rows are lattice basis vectors
	idx    []int
}

// New initializes a scan over the given boundary.  The returned scan is
// Ready with its index at the origin.  A nil scan and an error are returned
// on an invalid region, a region straddling both ecliptic hemispheres, a
// non-positive-definite metric, or a failed lattice construction; no
// partially initialized scan is ever returned.
func New(p Params) (*Scan, error) {
	switch {
	case p.Metric == nil:
		return nil, errors.New("scan: nil metric factory")
	case p.Span <= 0:
		return nil, fmt.Errorf("scan: span %g not positive", p.Span)
	case p.Mismatch <= 0:
		return nil, fmt.Errorf("scan: mismatch %g not positive", p.Mismatch)
	}
	if err := p.Spins.Validate(); err != nil {
		return nil, err
	}
	ps, err := sky.ParseRegion(p.Region)
	if err != nil {
		return nil, err
	}
	vs := make([]coord.Cart, len(ps))
	for i, pos := range ps {
		vs[i] = sky.Vec3(pos, sky.Ecliptic)
	}
	poly, hemi, err := sky.NewPolygon(vs)
	if err != nil {
		return nil, err
	}

	order := p.Spins.Order()
	dim := doppler.Dim(order)

	// midpoint of the region: polygon centroid back on the unit sphere,
	// spin intervals at their midpoints
	cm := sky.CenterOfMass(vs)
	norm := sky.Norm(&cm)
	if norm == 0 {
		return nil, errors.New("scan: degenerate sky region centroid")
	}
	cm.MulScalar(&cm, 1/norm)
	mid := doppler.Point{N: cm}
	for s := 0; s < doppler.MaxSpins; s++ {
		mid.Fkdot[s] = p.Spins.Mid(s)
	}
	origin, err := doppler.Canonical(&mid, p.Span, dim)
	if err != nil {
		return nil, err
	}

	g, err := p.Metric(p.RefMJD, p.StartMJD, p.Span, dim)
	if err != nil {
		return nil, fmt.Errorf("scan: metric: %w", err)
	}
	if g.Symmetric() != dim {
		return nil, fmt.Errorf("scan: metric dimension %d, want %d",
			g.Symmetric(), dim)
	}
	gen, err := lattice.Covering(g, p.Mismatch)
	if err != nil {
		return nil, err
	}

	return &Scan{
		state:  ready,
		span:   p.Span,
		dim:    dim,
		bnd:    doppler.Boundary{Poly: poly, Hemi: hemi, Spins: p.Spins},
		origin: origin,
		gen:    gen,
		idx:    make([]int, dim),
	}, nil
}

// Dim returns the canonical dimension of the scan.
func (sc *Scan) Dim() int { return sc.dim }

// Done reports whether the boundary has been exhausted.
func (sc *Scan) Done() bool { return sc.state == finished }

// pointAt maps a lattice index to its Doppler point.  Spin orders beyond
// the active dimension are not represented in canonical coordinates; they
// keep the boundary's fixed values.
func (sc *Scan) pointAt(idx []int) (doppler.Point, error) {
	fi := make([]float64, sc.dim)
	for j, v := range idx {
		fi[j] = float64(v)
	}
	var off mat64.Vector
	off.MulVec(sc.gen.T(), mat64.NewVector(sc.dim, fi))
	can := make([]float64, sc.dim)
	for k := range can {
		can[k] = sc.origin[k] + off.At(k, 0)
	}
	p, err := doppler.FromCanonical(can, sc.span, sc.bnd.Hemi)
	if err != nil {
		return p, err
	}
	for s := sc.dim - 2; s < doppler.MaxSpins; s++ {
		p.Fkdot[s] = sc.bnd.Spins.Lower[s]
	}
	return p, nil
}

// contains composes index → Doppler → boundary containment.  Transform
// failures propagate.
func (sc *Scan) contains(idx []int) (bool, error) {
	p, err := sc.pointAt(idx)
	if err != nil {
		return false, err
	}
	return sc.bnd.Contains(&p), nil
}

// Advance moves the scan to the next template in the boundary.  It returns
// true when a template was found and false once the boundary is exhausted;
// further calls after exhaustion keep returning false.  On a transform
// error the scan is left unchanged.
//
// The walk is deterministic: on each axis in turn, positive indices are
// exhausted before jumping to the negative side, and an exhausted axis
// collapses back to the origin before the next axis steps.  The sequence is
// a pure function of the boundary, span, mismatch and metric.  Callers must
// always advance from the last template returned.
func (sc *Scan) Advance() (bool, error) {
	switch sc.state {
	case ready:
	case finished:
		return false, nil
	default:
		return false, ErrNotReady
	}
	cur := append([]int(nil), sc.idx...)
	for a := 0; a < sc.dim; a++ {
		up := cur[a] >= 0
		if up {
			cur[a]++
		} else {
			cur[a]--
		}
		in, err := sc.contains(cur)
		if err != nil {
			return false, err
		}
		if in {
			sc.idx = cur
			return true, nil
		}
		if up {
			// positive side exhausted, jump across the origin
			cur[a] = -1
			if in, err = sc.contains(cur); err != nil {
				return false, err
			}
			if in {
				sc.idx = cur
				return true, nil
			}
		}
		cur[a] = 0
	}
	sc.state = finished
	return false, nil
}

// Current returns the template at the current index, with sky coordinates
// in the requested system.
func (sc *Scan) Current(sys sky.System) (Template, error) {
	if sc.state != ready {
		return Template{}, ErrNotReady
	}
	p, err := sc.pointAt(sc.idx)
	if err != nil {
		return Template{}, err
	}
	return Template{
		RefMJD: sc.bnd.Spins.RefMJD,
		Pos:    sky.ToPos(&p.N, sky.Ecliptic, sys),
		Fkdot:  p.Fkdot,
	}, nil
}

// Index returns a copy of the current lattice index, for checkpointing.
func (sc *Scan) Index() []int {
	return append([]int(nil), sc.idx...)
}

// SetIndex restores a lattice index and leaves the scan Ready.  Only the
// dimension is validated; the caller assumes responsibility for starting
// inside the boundary.
func (sc *Scan) SetIndex(idx []int) error {
	if sc.state == idle {
		return ErrNotReady
	}
	if len(idx) != sc.dim {
		return fmt.Errorf("scan: index dimension %d, want %d", len(idx), sc.dim)
	}
	sc.idx = append([]int(nil), idx...)
	sc.state = ready
	return nil
}
