// SPDX-License-Identifier: MIT
// Package: molchain/geom
//
// types.go — Point3D and small measurement helpers.

package geom

import (
	"math"

	"github.com/golang/geo/r3"
)

// Point3D is a position (or displacement) in 3D space, in Angstrom.
// It carries no identity beyond its coordinates and is passed by value.
type Point3D = r3.Vector

// Origin is the (0,0,0) point.
var Origin = Point3D{}

// New returns the point (x, y, z).
func New(x, y, z float64) Point3D {
	return Point3D{X: x, Y: y, Z: z}
}

// Distance returns the Euclidean distance |a - b|.
// Complexity: O(1).
func Distance(a, b Point3D) float64 {
	return a.Sub(b).Norm()
}

// IsZero reports whether all three components are exactly zero.
func IsZero(v Point3D) bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// IsFinite reports whether no component is NaN or ±Inf.
func IsFinite(v Point3D) bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0) &&
		!math.IsNaN(v.Z) && !math.IsInf(v.Z, 0)
}

// BondAngle returns the angle, in degrees, at vertex b formed by the bonds
// b→a and b→c. For an ideal sp3 carbon backbone this is ~109.5°.
// Returns ErrDegenerateVector if a or c coincides with b.
// Complexity: O(1).
func BondAngle(a, b, c Point3D) (float64, error) {
	ba, bc := a.Sub(b), c.Sub(b)
	if IsZero(ba) || IsZero(bc) {
		return 0, ErrDegenerateVector
	}

	return ba.Angle(bc).Degrees(), nil
}
