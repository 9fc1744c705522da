// SPDX-License-Identifier: MIT
// Package: molchain/geom
//
// overlap.go — steric overlap test for a candidate atom position.

package geom

// ViolatesOverlap reports whether candidate lies within
// bondLength*toleranceFactor of any point in existing.
//
// The caller passes only the points that must be kept apart from the
// candidate: when growing a chain that is every atom except the last one,
// which is the candidate's bonded partner. A distance exactly equal to the
// threshold counts as a violation, as does a NaN distance.
// Complexity: O(len(existing)) time, O(1) space; stops at the first hit.
func ViolatesOverlap(existing []Point3D, candidate Point3D, bondLength, toleranceFactor float64) bool {
	minDist := bondLength * toleranceFactor
	for _, p := range existing {
		if !(Distance(p, candidate) > minDist) {
			return true
		}
	}

	return false
}
