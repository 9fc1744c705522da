// SPDX-License-Identifier: MIT
// Package: molchain/chain
//
// grow.go — the chain growth engine: one atom per call, by rejection sampling.
//
// Candidate construction for the atom after last (previous bond d = last−prev):
//   • φ  = 180° − θ                       (deflection from d)
//   • v1 = d·cos φ                        (component along d)
//   • v2 = û·a·sin φ, û ⟂ v1 random       (component on the cone's rim)
//   • candidate = last + v1 + v2          (|v1+v2| = a when |d| = a)
//
// Bond length and bond angle hold by construction and are not re-checked;
// only the overlap test rejects. The test skips exactly one atom, the
// bonded partner `last`; the atom before it is tested like any other.
//
// Liveness:
//   • With MaxAttempts > 0 the loop is bounded and fails with
//     ErrOverlapResolutionFailed.
//   • With MaxAttempts == 0 the loop is unbounded. Termination is then an
//     assumption (collisions cover a vanishing share of the rim for sparse
//     chains), not a guarantee.

package chain

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/molchain/geom"
)

const (
	methodGrowOne = "GrowOne"
	methodBuild   = "Build"
)

// Generator grows chains for one Config from one random stream.
// It is not safe for concurrent use.
type Generator struct {
	cfg Config
	rng *rand.Rand
	log Logger

	rejected int
}

// NewGenerator validates cfg and resolves opts.
// Returns ErrInvalidConfig for a meaningless cfg.
func NewGenerator(cfg Config, opts ...Option) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("NewGenerator: %w", err)
	}
	gc := newGeneratorConfig(opts...)

	return &Generator{cfg: cfg, rng: gc.rng, log: gc.log}, nil
}

// Config returns the configuration the Generator was built with.
func (g *Generator) Config() Config {
	return g.cfg
}

// Rejected returns the total number of candidates rejected so far.
func (g *Generator) Rejected() int {
	return g.rejected
}

// GrowOne returns a new Chain equal to c with one valid atom appended.
// c itself is left untouched. Requires c.Len() ≥ MinAtoms.
//
// Errors: ErrInvalidChainLength, ErrOverlapResolutionFailed,
// geom.ErrDegenerateVector (collapsed previous bond).
// Complexity: O(n) per candidate draw, O(n) copy.
func (g *Generator) GrowOne(c *Chain) (*Chain, error) {
	if c.Len() < MinAtoms {
		return nil, fmt.Errorf("%s: chain has %d atoms, need >= %d: %w",
			methodGrowOne, c.Len(), MinAtoms, ErrInvalidChainLength)
	}

	next, err := g.nextPoint(c.points)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodGrowOne, err)
	}

	pts := make([]geom.Point3D, len(c.points), len(c.points)+1)
	copy(pts, c.points)

	return &Chain{points: append(pts, next)}, nil
}

// nextPoint samples the atom that follows pts until one passes the overlap test.
func (g *Generator) nextPoint(pts []geom.Point3D) (geom.Point3D, error) {
	n := len(pts)
	last, prev := pts[n-1], pts[n-2]

	phi := g.cfg.deflection()
	v1 := last.Sub(prev).Mul(math.Cos(phi))
	rim := g.cfg.BondLength * math.Sin(phi)
	base := last.Add(v1)
	others := pts[:n-1]

	for attempt := 1; g.cfg.MaxAttempts == 0 || attempt <= g.cfg.MaxAttempts; attempt++ {
		u, err := geom.PerpendicularUnitVector(v1, g.rng)
		if err != nil {
			return geom.Point3D{}, fmt.Errorf("atom %d: %w", n, err)
		}

		candidate := base.Add(u.Mul(rim))
		if !geom.ViolatesOverlap(others, candidate, g.cfg.BondLength, g.cfg.OverlapTolerance) {
			if attempt > 1 {
				g.log.Debugf("atom %d placed after %d rejected candidates", n, attempt-1)
			}
			g.rejected += attempt - 1

			return candidate, nil
		}
	}
	g.rejected += g.cfg.MaxAttempts

	return geom.Point3D{}, fmt.Errorf("atom %d: no candidate clear of overlap after %d attempts: %w",
		n, g.cfg.MaxAttempts, ErrOverlapResolutionFailed)
}
