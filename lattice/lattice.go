// SPDX-License-Identifier: MIT
// Package: molchain/lattice
//
// lattice.go — cubic mesh and screw-dislocation remap.

package lattice

import (
	"fmt"
	"math"

	"github.com/katalvlaran/molchain/geom"
)

// Reference parameters.
const (
	DefaultExtent  = 7
	DefaultSpacing = 1.5
)

// CreateMesh returns every point (i, j, k)·spacing with i, j, k ∈ [−n, n),
// ordered with x varying slowest and z fastest: (2n)³ points.
// Complexity: O(n³) time and space.
func CreateMesh(n int, spacing float64) ([]geom.Point3D, error) {
	if n < 1 {
		return nil, fmt.Errorf("CreateMesh: n=%d: %w", n, ErrInvalidExtent)
	}
	if err := validateSpacing(spacing); err != nil {
		return nil, fmt.Errorf("CreateMesh: %w", err)
	}

	side := 2 * n
	pts := make([]geom.Point3D, 0, side*side*side)
	for i := -n; i < n; i++ {
		for j := -n; j < n; j++ {
			for k := -n; k < n; k++ {
				pts = append(pts, geom.New(float64(i), float64(j), float64(k)).Mul(spacing))
			}
		}
	}

	return pts, nil
}

// ScrewDislocation displaces the y > 0 half of points along z by
// −(burgers/π)·atan((y + a/2)/(x + a/2)), a = spacing, and returns the result
// as a new slice in input order. Points with y ≤ 0 are copied unchanged.
// Complexity: O(len(points)).
func ScrewDislocation(points []geom.Point3D, burgers, spacing float64) ([]geom.Point3D, error) {
	if err := validateSpacing(spacing); err != nil {
		return nil, fmt.Errorf("ScrewDislocation: %w", err)
	}

	half := 0.5 * spacing
	out := make([]geom.Point3D, len(points))
	for i, p := range points {
		if p.Y > 0 {
			p.Z -= burgers / math.Pi * math.Atan((p.Y+half)/(p.X+half))
		}
		out[i] = p
	}

	return out, nil
}

func validateSpacing(a float64) error {
	if !(a > 0) || math.IsInf(a, 0) {
		return fmt.Errorf("spacing=%g: %w", a, ErrInvalidSpacing)
	}
	return nil
}
