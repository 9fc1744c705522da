// SPDX-License-Identifier: MIT
// Package: molchain/geom
//
// errors.go — sentinel errors for the geometry kernel.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers use errors.Is.
//   • Context is attached with %w at the call site, never in the sentinel.

package geom

import "errors"

// ErrDegenerateVector indicates that a direction was requested for the zero
// vector. It signals an invalid internal state of the caller (a collapsed
// bond direction) and is never retried.
var ErrDegenerateVector = errors.New("geom: zero-length vector")
