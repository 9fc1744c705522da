// SPDX-License-Identifier: MIT
// Package: molchain/chain
//
// ensemble.go — many independent chains, built concurrently.
//
// Determinism:
//   • Chain k is grown from its own stream seeded with deriveSeed(seed, k),
//     so the result does not depend on goroutine scheduling.
//   • Any WithSeed/WithRand in opts is overridden per worker; a logger passed
//     with WithLogger is shared and must be safe for concurrent use.

package chain

import (
	"fmt"
	"sync"
)

const methodEnsemble = "Ensemble"

// Ensemble builds count chains of n atoms each, one goroutine per chain.
// If any chain fails, the error of the lowest failing index is returned and
// no chains are returned.
func Ensemble(count, n int, cfg Config, seed int64, opts ...Option) ([]*Chain, error) {
	if count < 1 {
		return nil, fmt.Errorf("%s: count=%d < 1: %w", methodEnsemble, count, ErrInvalidChainLength)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodEnsemble, err)
	}
	if seed == 0 {
		seed = defaultRNGSeed
	}

	chains := make([]*Chain, count)
	errs := make([]error, count)

	var wg sync.WaitGroup
	for k := 0; k < count; k++ {
		wg.Add(1)
		go func(k int) {
			defer wg.Done()
			workerOpts := append(append([]Option(nil), opts...), WithSeed(deriveSeed(seed, uint64(k))))
			chains[k], errs[k] = Build(n, cfg, workerOpts...)
		}(k)
	}
	wg.Wait()

	for k, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("%s: chain %d: %w", methodEnsemble, k, err)
		}
	}

	return chains, nil
}
