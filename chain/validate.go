// SPDX-License-Identifier: MIT
// Package: molchain/chain
//
// validate.go — independent re-check of the chain invariants.
//
// Checked, in order, reporting the first failure:
//   1) bond length:  | |p[i+1]−p[i]| − a | ≤ eps          for every bond
//   2) bond angle:   | ∠(p[i−1], p[i], p[i+1]) − θ | ≤ δ    for every inner atom
//   3) no overlap:   |p[i]−p[j]| > a·tol − eps             for every |i−j| ≥ 2
//
// δ is eps translated into an angle: moving either end of a bond by eps
// turns it by at most eps/a radians, so δ = 2·eps/a.
// Complexity: O(n²) time, O(1) space.

package chain

import (
	"fmt"
	"math"

	"github.com/golang/geo/s1"

	"github.com/katalvlaran/molchain/geom"
)

// Validate checks points against the bond-length, bond-angle and no-overlap
// invariants of cfg. eps is an absolute length tolerance in Angstrom, e.g.
// 1e-9 for freshly generated chains or 5e-3 for coordinates read back from
// a 3-decimal file.
//
// Returns ErrInvalidChainLength for fewer than MinAtoms points, ErrInvalidConfig
// for a bad cfg, and ErrInvariantViolated naming the offending atoms otherwise.
func Validate(points []geom.Point3D, cfg Config, eps float64) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("Validate: %w", err)
	}
	if len(points) < MinAtoms {
		return fmt.Errorf("Validate: %d points < min=%d: %w", len(points), MinAtoms, ErrInvalidChainLength)
	}

	a := cfg.BondLength
	for i := 0; i+1 < len(points); i++ {
		d := geom.Distance(points[i], points[i+1])
		if !(math.Abs(d-a) <= eps) {
			return fmt.Errorf("Validate: bond %d-%d has length %.9f, want %.9f: %w",
				i, i+1, d, a, ErrInvariantViolated)
		}
	}

	maxDev := (s1.Angle(2*eps/a) * s1.Radian).Degrees()
	for i := 1; i+1 < len(points); i++ {
		ang, err := geom.BondAngle(points[i-1], points[i], points[i+1])
		if err != nil {
			return fmt.Errorf("Validate: angle at atom %d: %v: %w", i, err, ErrInvariantViolated)
		}
		if !(math.Abs(ang-cfg.BondAngle) <= maxDev) {
			return fmt.Errorf("Validate: angle at atom %d is %.9f°, want %.9f°: %w",
				i, ang, cfg.BondAngle, ErrInvariantViolated)
		}
	}

	minSep := cfg.MinSeparation() - eps
	for i := 0; i < len(points); i++ {
		for j := i + 2; j < len(points); j++ {
			if d := geom.Distance(points[i], points[j]); !(d > minSep) {
				return fmt.Errorf("Validate: atoms %d and %d are %.9f apart, need > %.9f: %w",
					i, j, d, cfg.MinSeparation(), ErrInvariantViolated)
			}
		}
	}

	return nil
}
