// SPDX-License-Identifier: MIT
// Package: molchain/chain
//
// rng.go — deterministic RNG factory and stream derivation.
//
// Goals:
//   - Determinism: same seed ⇒ identical chains across platforms.
//   - No time-based sources hidden anywhere; callers seed explicitly.
//
// Concurrency:
//   - *rand.Rand is NOT goroutine-safe. Ensemble derives one stream per worker.

package chain

import "math/rand"

// defaultRNGSeed is used when callers pass seed==0 or no RNG at all.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand; seed==0 ⇒ defaultRNGSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes a parent seed and a stream id (SplitMix64 finalizer) so
// that neighbouring stream ids give uncorrelated children.
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}
