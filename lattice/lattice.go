// Public domain.

// Package lattice constructs covering lattices for template placement.
//
// Given a flat positive-definite metric g and a maximum mismatch μ, the
// generator returned by Covering places templates on an A*_n lattice scaled
// so that every point of the space lies within metric distance √μ of a
// lattice point.  Among lattices with that covering radius the A*_n family
// is near-optimal in density for the dimensions used here.
package lattice

import (
	"errors"
	"fmt"
	"math"

	"github.com/gonum/matrix"
	"github.com/gonum/matrix/mat64"
)

// ErrNotPosDef reports a metric that is not positive definite.
var ErrNotPosDef = errors.New("lattice: metric not positive definite")

// CoveringRadiusAStar returns the covering radius of the A*_n lattice in
// the normalization where its Gram matrix is I - J/(n+1).
func CoveringRadiusAStar(n int) float64 {
	fn := float64(n)
	return math.Sqrt(fn * (fn + 2) / (12 * (fn + 1)))
}

// aStarBasis returns an n×n generating matrix of the A*_n lattice, rows as
// basis vectors, Euclidean Gram matrix I - J/(n+1).  The factor is taken
// upper triangular so that the last basis vector is axis-aligned.
func aStarBasis(n int) *mat64.Dense {
	gram := mat64.NewSymDense(n, nil)
	d := 1 / float64(n+1)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if i == j {
				gram.SetSym(i, j, 1-d)
			} else {
				gram.SetSym(i, j, -d)
			}
		}
	}
	var ch mat64.Cholesky
	if !ch.Factorize(gram) {
		// I - J/(n+1) has eigenvalues 1 and 1/(n+1)
		panic("lattice: A* Gram matrix not positive definite")
	}
	l := mat64.NewTriDense(n, matrix.Lower, nil)
	l.LFromCholesky(&ch)
	// The Gram matrix is invariant under simultaneous row and column
	// reversal, so the reversed factor is an equally valid basis.
	b := mat64.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			b.Set(i, j, l.At(n-1-i, n-1-j))
		}
	}
	return b
}

// Covering returns a generating matrix G for the A*_n covering lattice of
// metric g and mismatch mu.  Rows of G are basis vectors in the coordinates
// g is expressed in; every point of the space lies within metric distance
// √mu of an integer combination of them.
//
// Construction: factor g = LLᵀ, scale the A*_n basis B by √mu over the A*_n
// covering radius, and change basis with G = B L⁻ᵀ, so that the metric Gram
// of G equals the scaled Euclidean Gram of B.
func Covering(g *mat64.SymDense, mu float64) (*mat64.Dense, error) {
	if mu <= 0 {
		return nil, fmt.Errorf("lattice: mismatch %g not positive", mu)
	}
	n := g.Symmetric()
	if n < 1 {
		return nil, errors.New("lattice: empty metric")
	}
	var ch mat64.Cholesky
	if !ch.Factorize(g) {
		return nil, ErrNotPosDef
	}
	l := mat64.NewTriDense(n, matrix.Lower, nil)
	l.LFromCholesky(&ch)

	b := aStarBasis(n)
	scale := math.Sqrt(mu) / CoveringRadiusAStar(n)

	// G = scale · B L⁻ᵀ, via L Gᵀ = scale · Bᵀ
	bt := mat64.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			bt.Set(i, j, scale*b.At(j, i))
		}
	}
	var gt mat64.Dense
	if err := gt.Solve(l, bt); err != nil {
		return nil, fmt.Errorf("lattice: basis change: %w", err)
	}
	out := mat64.NewDense(n, n, nil)
	out.Clone(gt.T())
	return out, nil
}
