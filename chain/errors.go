// SPDX-License-Identifier: MIT
// Package: molchain/chain
//
// errors.go — sentinel errors for chain generation.
//
// Error policy:
//   • Callers branch with errors.Is(err, ErrX); messages are stable.
//   • Implementations wrap with method context: "Build: n=1 < min=2: <sentinel>".
//   • Every error is fatal to the current generation call; no partial chain
//     is ever returned alongside an error.

package chain

import "errors"

var (
	// ErrInvalidChainLength indicates a requested atom count below MinAtoms.
	ErrInvalidChainLength = errors.New("chain: invalid chain length")

	// ErrOverlapResolutionFailed indicates that MaxAttempts candidates in a row
	// were rejected by the overlap test. Retry with a different seed.
	ErrOverlapResolutionFailed = errors.New("chain: overlap resolution failed")

	// ErrInvalidConfig indicates a Config with meaningless values
	// (non-positive bond length, bond angle outside (0,180], ...).
	ErrInvalidConfig = errors.New("chain: invalid config")

	// ErrInvariantViolated is returned by Validate when a point list breaks
	// the bond-length, bond-angle or no-overlap invariant.
	ErrInvariantViolated = errors.New("chain: invariant violated")

	// ErrNilSink indicates that Emit received a nil Sink.
	ErrNilSink = errors.New("chain: nil sink")
)
