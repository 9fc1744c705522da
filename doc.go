// Package molchain builds idealized atomic geometries: self-avoiding
// carbon backbones with fixed bond length and bond angle, and simple cubic
// meshes carrying a screw dislocation.
//
// 🚀 What is molchain?
//
//	A small, deterministic-by-seed toolkit that brings together:
//		• Vector geometry: perpendicular unit vectors, bond angles, overlap tests
//		• Chain growth: constrained random walk with rejection sampling
//		• Ensembles: many independent chains grown concurrently
//		• Lattices: cubic meshes and screw-dislocation displacement
//		• File I/O: .xyz atom lists and plain .txt coordinate tables
//
// ✨ Why molchain?
//
//   - Reproducible – every random draw comes from an injected, seedable stream
//   - Bounded – rejection sampling gives up after a configurable attempt cap
//   - Checked – Validate re-derives every invariant from raw coordinates
//
// Packages:
//
//	geom/      — Point3D (r3.Vector), perpendicular unit vectors, overlap test
//	chain/     — Config, Generator, Build, Ensemble, Validate, sinks
//	lattice/   — CreateMesh, ScrewDislocation
//	xyz/       — .xyz / .txt writers and readers
//	runconfig/ — YAML / TOML run descriptions
//	logger/    — verbose CLI logging
//	cli/       — cobra command tree behind cmd/molchain
//
// Quick ASCII example of a growing backbone (θ = 109.5°):
//
//	    C1      C3
//	   /  \    /  \
//	 C0    C2      C4 …
//
//	go install github.com/katalvlaran/molchain/cmd/molchain@latest
//	molchain chain 50 --seed 1
package molchain
