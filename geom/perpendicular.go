// SPDX-License-Identifier: MIT
// Package: molchain/geom
//
// perpendicular.go — random unit vector orthogonal to a given direction.
//
// Construction:
//   • p1 ⟂ v by an axis-aligned shortcut: if a component of v is exactly zero,
//     the matching basis vector is already orthogonal; otherwise
//     p1 = (1, 1, -(v.x+v.y)/v.z), for which p1·v = 0.
//   • p2 = v × p1, orthogonal to both and non-zero (p1 is not parallel to v).
//   • θ ~ U[-π, π) and the result is p̂1·cosθ + p̂2·sinθ.
//
// Determinism:
//   • Exactly one rng.Float64() draw per call, so sequences of calls replay
//     identically for a fixed seed.

package geom

import (
	"fmt"
	"math"
	"math/rand"
)

const methodPerpendicular = "PerpendicularUnitVector"

// PerpendicularUnitVector returns a unit vector orthogonal to v whose
// direction is uniformly distributed around v's axis.
//
// Returns ErrDegenerateVector if v is the zero vector. The rng must be
// non-nil; it is the only state the function touches.
// Complexity: O(1).
func PerpendicularUnitVector(v Point3D, rng *rand.Rand) (Point3D, error) {
	if IsZero(v) {
		return Point3D{}, fmt.Errorf("%s: %v: %w", methodPerpendicular, v, ErrDegenerateVector)
	}

	p1 := orthogonalBasis(v)
	p2 := v.Cross(p1)

	u1 := p1.Normalize()
	u2 := p2.Normalize()

	theta := uniformAngle(rng)

	return u1.Mul(math.Cos(theta)).Add(u2.Mul(math.Sin(theta))), nil
}

// orthogonalBasis returns a (not normalized) vector orthogonal to a non-zero v.
func orthogonalBasis(v Point3D) Point3D {
	switch {
	case v.X == 0:
		return Point3D{X: 1}
	case v.Y == 0:
		return Point3D{Y: 1}
	case v.Z == 0:
		return Point3D{Z: 1}
	default:
		return Point3D{X: 1, Y: 1, Z: -(v.X + v.Y) / v.Z}
	}
}

// uniformAngle draws θ ∈ [-π, π).
func uniformAngle(rng *rand.Rand) float64 {
	return wrapAngle(-math.Pi + 2*math.Pi*rng.Float64())
}

// wrapAngle folds the rounding case θ = π back onto −π.
func wrapAngle(theta float64) float64 {
	if theta >= math.Pi {
		return -math.Pi
	}
	return theta
}
