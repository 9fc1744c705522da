// Package lattice builds a simple cubic point mesh and applies a screw
// dislocation to it. Both steps are closed-form coordinate maps: no
// iteration, no randomness, and the output keeps the input order, so the
// results feed straight into the xyz writers.
//
// Screw dislocation (line along z through (−a/2, −a/2)):
//
//	z' = z − (b/π)·atan((y + a/2) / (x + a/2))   for y > 0
//	z' = z                                      otherwise
//
// with b the Burgers vector magnitude (default −a) and a the lattice spacing.
package lattice
