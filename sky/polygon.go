// Public domain.

package sky

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/gonum/floats"
	"github.com/soniakeys/coord"
	"github.com/soniakeys/unit"
)

// eps is the relative tolerance of all boundary comparisons.
const eps = 1e-10

// Point2 is a point in the ecliptic-plane projection of the unit sphere.
type Point2 struct {
	X, Y float64
}

// Polygon is an ordered vertex list, implicitly closed.  All vertices
// project from the same hemisphere; the implicit edge joins the last vertex
// back to the first.
type Polygon []Point2

// ErrPolygonSize reports a polygon with no vertices or with exactly two
// vertices, which bounds no area; both are rejected.
var ErrPolygonSize = errors.New("sky: polygon must have 1 or >= 3 vertices")

// NewPolygon builds the ecliptic-plane projection of a list of unit sky
// vectors in the ecliptic frame and classifies their common hemisphere.
// A single vector is a degenerate polygon matching only itself; two vectors
// are invalid; three or more must share a hemisphere.
func NewPolygon(vs []coord.Cart) (Polygon, Hemi, error) {
	switch len(vs) {
	case 0, 2:
		return nil, HemiBoth, ErrPolygonSize
	}
	h, err := HemisphereOf(vs)
	if err != nil {
		return nil, HemiBoth, err
	}
	if h == HemiBoth {
		// every vertex exactly in the ecliptic plane
		return nil, HemiBoth, ErrBothHemispheres
	}
	pg := make(Polygon, len(vs))
	for i := range vs {
		x, y := vs[i].X, vs[i].Y
		if x*x+y*y > 1+eps {
			return nil, HemiBoth, fmt.Errorf(
				"sky: polygon vertex %d off the unit sphere", i)
		}
		pg[i] = Point2{x, y}
	}
	return pg, h, nil
}

// Contains reports whether (x, y) lies in the polygon.  Crossings of the
// horizontal ray through the point are counted separately to its left and
// to its right; the point is inside if either count is odd.  A point on a
// non-horizontal edge classifies as inside, except at the edge's upper end,
// which the half-open crossing test leaves out.  Horizontal edges are
// skipped, so a point on one is classified by the other edges alone: on the
// unit square the bottom edge classifies inside and the top edge outside.
func (pg Polygon) Contains(x, y float64) bool {
	if len(pg) == 1 {
		return floats.EqualWithinAbsOrRel(x, pg[0].X, eps, eps) &&
			floats.EqualWithinAbsOrRel(y, pg[0].Y, eps, eps)
	}
	var left, right bool
	for i := range pg {
		v1 := pg[i]
		v2 := pg[(i+1)%len(pg)]
		if v1.Y == v2.Y {
			continue
		}
		if (v1.Y > y) == (v2.Y > y) {
			continue
		}
		xi := v1.X + (y-v1.Y)*(v2.X-v1.X)/(v2.Y-v1.Y)
		switch {
		case floats.EqualWithinAbsOrRel(xi, x, eps, eps):
			return true // on the edge itself
		case xi > x:
			right = !right
		default:
			left = !left
		}
	}
	return left || right
}

var rxPair = regexp.MustCompile(
	`\(\s*([+-]?[0-9.eE+-]+)\s*,\s*([+-]?[0-9.eE+-]+)\s*\)`)

// ParseRegion parses a sky region string, a list of (α,δ) pairs in
// equatorial radians separated by whitespace or commas, for example
// "(0.1,0.1), (0.2,0.1), (0.15,0.2)".
func ParseRegion(s string) ([]Pos, error) {
	ms := rxPair.FindAllStringSubmatch(s, -1)
	if len(ms) == 0 {
		return nil, fmt.Errorf("sky: no (α,δ) pairs in region %q", s)
	}
	ps := make([]Pos, len(ms))
	for i, m := range ms {
		a, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return nil, fmt.Errorf("sky: region vertex %d: %w", i, err)
		}
		d, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			return nil, fmt.Errorf("sky: region vertex %d: %w", i, err)
		}
		ps[i] = Pos{RA: unit.RA(a), Dec: unit.Angle(d), Sys: Equatorial}
	}
	return ps, nil
}
