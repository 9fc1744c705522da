// Package geom is the geometry kernel behind molchain: a small set of pure,
// stateless vector primitives used to grow idealized atomic chains.
//
// 🚀 What lives here?
//
//	• Point3D                — an immutable (x, y, z) position in Angstrom,
//	                           an alias of github.com/golang/geo/r3.Vector.
//	• PerpendicularUnitVector — a uniformly random unit vector in the plane
//	                           orthogonal to a given non-zero vector.
//	• ViolatesOverlap         — steric overlap test of a candidate position
//	                           against already placed atoms.
//	• BondAngle / Distance    — measurement helpers used by validation.
//
// ✨ Guarantees:
//
//   - No hidden state: randomness is always injected as *rand.Rand.
//   - No panics: the only precondition violation (zero input vector) is
//     reported as ErrDegenerateVector.
//   - Deterministic: the same RNG state yields bit-identical results.
//
// Complexity:
//
//   - PerpendicularUnitVector: O(1), consumes exactly one Float64 draw.
//   - ViolatesOverlap:         O(k) for k existing points, early exit on hit.
//
// ⚙️ Usage:
//
//	rng := rand.New(rand.NewSource(42))
//	u, err := geom.PerpendicularUnitVector(geom.New(0, 0, 1.54), rng)
//	if err != nil {
//		// errors.Is(err, geom.ErrDegenerateVector)
//	}
//	fmt.Println(u.Dot(geom.New(0, 0, 1))) // ~0
package geom
