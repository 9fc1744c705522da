// SPDX-License-Identifier: MIT
// Package: molchain/chain
//
// build.go — the driver: seed, grow to length, hand off to sinks.

package chain

import (
	"fmt"

	"github.com/katalvlaran/molchain/geom"
)

// Sink consumes a finished chain. Implementations must keep point order and
// must not drop or merge points (see package xyz).
type Sink interface {
	WritePoints(points []geom.Point3D) error
}

// Build grows a chain of exactly n atoms with the Generator's stream.
// n == MinAtoms returns the bare seed. On error no chain is returned.
// Complexity: O(n²) overlap checks in the absence of rejections.
func (g *Generator) Build(n int) (*Chain, error) {
	if n < MinAtoms {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodBuild, n, MinAtoms, ErrInvalidChainLength)
	}

	before := g.rejected
	pts := seedPoints(g.cfg.BondLength, n)
	for len(pts) < n {
		next, err := g.nextPoint(pts)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodBuild, err)
		}
		pts = append(pts, next)
	}
	g.log.Debugf("built %d-atom chain, %d candidates rejected", n, g.rejected-before)

	return &Chain{points: pts}, nil
}

// Build is a one-shot helper: NewGenerator(cfg, opts...) then Build(n).
func Build(n int, cfg Config, opts ...Option) (*Chain, error) {
	g, err := NewGenerator(cfg, opts...)
	if err != nil {
		return nil, err
	}

	return g.Build(n)
}

// Emit hands a copy of c's points to every sink in order and stops at the
// first sink error, which is returned wrapped but otherwise unchanged.
func Emit(c *Chain, sinks ...Sink) error {
	for i, s := range sinks {
		if s == nil {
			return fmt.Errorf("Emit: sink %d: %w", i, ErrNilSink)
		}
		if err := s.WritePoints(c.Points()); err != nil {
			return fmt.Errorf("Emit: sink %d: %w", i, err)
		}
	}

	return nil
}
