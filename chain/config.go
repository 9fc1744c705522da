// SPDX-License-Identifier: MIT
// Package: molchain/chain
//
// config.go — bond geometry configuration and its defaults.
//
// Deterministic defaults (sp3 carbon backbone):
//   • BondLength       = 1.54 Å   (C–C single bond)
//   • BondAngle        = 109.5°   (tetrahedral)
//   • OverlapTolerance = 1.3      (non-bonded atoms ≥ 2.002 Å apart)
//   • MaxAttempts      = 100000   (per atom; 0 means unbounded)

package chain

import (
	"fmt"
	"math"
)

// Default physical constants and limits.
const (
	DefaultBondLength       = 1.54
	DefaultBondAngle        = 109.5
	DefaultOverlapTolerance = 1.3
	DefaultMaxAttempts      = 100000

	// MinAtoms is the smallest chain: the two-atom seed (one bond).
	MinAtoms = 2
	// DefaultAtoms is the chain length used when none is requested.
	DefaultAtoms = 50

	maxBondAngle = 180.0
)

// Config holds the constants that parameterize a run. BondLength and
// BondAngle form the bond geometry; they are fixed for every atom of a chain.
type Config struct {
	// BondLength is the distance between bonded atoms, in Angstrom (> 0).
	BondLength float64
	// BondAngle is the angle between two consecutive bonds, in degrees, (0,180].
	BondAngle float64
	// OverlapTolerance scales BondLength into the minimum non-bonded distance (≥ 0).
	OverlapTolerance float64
	// MaxAttempts caps candidate draws per atom; 0 disables the cap.
	MaxAttempts int
}

// DefaultConfig returns the reference sp3 carbon configuration.
func DefaultConfig() Config {
	return Config{
		BondLength:       DefaultBondLength,
		BondAngle:        DefaultBondAngle,
		OverlapTolerance: DefaultOverlapTolerance,
		MaxAttempts:      DefaultMaxAttempts,
	}
}

// Validate reports the first meaningless field, wrapped in ErrInvalidConfig.
// Complexity: O(1).
func (c Config) Validate() error {
	switch {
	case !(c.BondLength > 0) || math.IsInf(c.BondLength, 0):
		return fmt.Errorf("bond length %g must be finite and > 0: %w", c.BondLength, ErrInvalidConfig)
	case !(c.BondAngle > 0 && c.BondAngle <= maxBondAngle):
		return fmt.Errorf("bond angle %g must be in (0,%g]: %w", c.BondAngle, maxBondAngle, ErrInvalidConfig)
	case !(c.OverlapTolerance >= 0) || math.IsInf(c.OverlapTolerance, 0):
		return fmt.Errorf("overlap tolerance %g must be finite and >= 0: %w", c.OverlapTolerance, ErrInvalidConfig)
	case c.MaxAttempts < 0:
		return fmt.Errorf("max attempts %d must be >= 0: %w", c.MaxAttempts, ErrInvalidConfig)
	}

	return nil
}

// MinSeparation is the smallest allowed distance between non-bonded atoms.
func (c Config) MinSeparation() float64 {
	return c.BondLength * c.OverlapTolerance
}

// deflection returns φ = 180° − BondAngle in radians: how far each new bond
// tilts away from the direction of the previous one.
func (c Config) deflection() float64 {
	return (maxBondAngle - c.BondAngle) / maxBondAngle * math.Pi
}
