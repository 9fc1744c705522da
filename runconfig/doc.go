// Package runconfig loads a molchain run description from a YAML or TOML
// file. Every field is optional: values missing from the file keep the
// reference defaults returned by Default.
//
// Example (YAML):
//
//	chain:
//	  atoms: 200
//	  seed: 42
//	  bond_angle: 111.0
//	output:
//	  dir: out
//	  txt: false
//
// The same document in TOML:
//
//	[chain]
//	atoms = 200
//	seed = 42
//	bond_angle = 111.0
//
//	[output]
//	dir = "out"
//	txt = false
package runconfig
