// SPDX-License-Identifier: MIT
// Package: molchain/chain
//
// types.go — Chain, the ordered append-only list of atom positions.

package chain

import "github.com/katalvlaran/molchain/geom"

// Chain is an ordered sequence of atom positions; adjacent entries are
// bonded. A Chain is never modified once returned to a caller: growth
// always produces a new Chain value.
type Chain struct {
	points []geom.Point3D
}

// Seed returns the two-atom starting chain [(0,0,0), (0,0,bondLength)].
func Seed(bondLength float64) *Chain {
	return &Chain{points: seedPoints(bondLength, MinAtoms)}
}

// seedPoints allocates room for capacity atoms and places the seed bond.
func seedPoints(bondLength float64, capacity int) []geom.Point3D {
	if capacity < MinAtoms {
		capacity = MinAtoms
	}
	pts := make([]geom.Point3D, 0, capacity)

	return append(pts, geom.Origin, geom.New(0, 0, bondLength))
}

// Len returns the number of atoms; a nil Chain has none.
func (c *Chain) Len() int {
	if c == nil {
		return 0
	}
	return len(c.points)
}

// At returns the i-th atom position. It panics if i is out of range, like
// slice indexing.
func (c *Chain) At(i int) geom.Point3D {
	return c.points[i]
}

// Points returns a copy of the atom positions in chain order.
// Complexity: O(n).
func (c *Chain) Points() []geom.Point3D {
	if c == nil {
		return nil
	}
	out := make([]geom.Point3D, len(c.points))
	copy(out, c.points)

	return out
}

// Bond returns the i-th bond vector, atom i+1 minus atom i.
func (c *Chain) Bond(i int) geom.Point3D {
	return c.points[i+1].Sub(c.points[i])
}
