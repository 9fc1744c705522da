// SPDX-License-Identifier: MIT
// Package: molchain/chain
//
// options.go — functional options for Generator.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless inputs
//     (nil RNG, nil logger). Generation itself never panics.
//   • Later options override earlier ones.

package chain

import "math/rand"

// Option customizes a Generator before the first atom is placed.
type Option func(*generatorConfig)

// generatorConfig aggregates the non-physical knobs of a Generator.
type generatorConfig struct {
	rng  *rand.Rand
	seed int64
	log  Logger
}

// newGeneratorConfig applies opts over deterministic defaults.
func newGeneratorConfig(opts ...Option) generatorConfig {
	cfg := generatorConfig{log: nopLogger{}}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rngFromSeed(cfg.seed)
	}

	return cfg
}

// WithSeed seeds a fresh RNG; seed 0 selects the package default seed.
func WithSeed(seed int64) Option {
	return func(c *generatorConfig) {
		c.seed = seed
		c.rng = rngFromSeed(seed)
	}
}

// WithRand injects an explicit RNG. The Generator takes ownership of it.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("chain: WithRand(nil)")
	}
	return func(c *generatorConfig) {
		c.rng = r
	}
}

// WithLogger routes debug diagnostics (rejection counts) to l. Panics on nil.
func WithLogger(l Logger) Option {
	if l == nil {
		panic("chain: WithLogger(nil)")
	}
	return func(c *generatorConfig) {
		c.log = l
	}
}
