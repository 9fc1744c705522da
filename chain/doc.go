// Package chain grows idealized, self-avoiding atomic backbones: every bond
// has the same length, every pair of consecutive bonds meets at the same
// angle, and no two non-bonded atoms come closer than a tolerance-scaled
// multiple of the bond length.
//
// 🚀 How does it work?
//
//	A chain is seeded with two atoms on the z-axis, one bond apart. Each new
//	atom is placed by tilting the previous bond direction by φ = 180° − θ and
//	spinning it by a random angle around that bond. Candidates closer than
//	OverlapTolerance·BondLength to any earlier atom (the bonded partner
//	excepted) are rejected and redrawn: rejection sampling over a circle.
//
//	      prev ── last
//	                ╲  θ
//	                 ╲
//	                  new   (anywhere on the cone around last−prev)
//
// ✨ Key features:
//   - Explicit Config (bond length, bond angle, tolerance, attempt cap):
//     no globals, several configurations may coexist.
//   - Injected randomness: WithSeed / WithRand; same seed ⇒ identical chain.
//   - Bounded rejection loop: MaxAttempts turns a hang into
//     ErrOverlapResolutionFailed. MaxAttempts = 0 restores unbounded
//     resampling; termination is then only almost-sure, not guaranteed.
//   - Validate re-checks bond length, bond angle and overlap on any point list.
//   - Ensemble builds many independent chains concurrently with derived seeds.
//
// ⚙️ Usage:
//
//	c, err := chain.Build(50, chain.DefaultConfig(), chain.WithSeed(42))
//	if err != nil {
//		// errors.Is(err, chain.ErrInvalidChainLength) ...
//	}
//	err = chain.Emit(c, xyz.XYZFile{Path: "C50.xyz", Element: "C"})
//
// Concurrency:
//
//	A Generator owns its *rand.Rand and is not safe for concurrent use.
//	Distinct Generators (or Build calls with distinct RNGs) are independent.
package chain
