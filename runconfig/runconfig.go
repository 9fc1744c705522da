// SPDX-License-Identifier: MIT
// Package: molchain/runconfig
//
// runconfig.go — run description, defaults and file decoding.

package runconfig

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/molchain/chain"
	"github.com/katalvlaran/molchain/lattice"
	"github.com/katalvlaran/molchain/xyz"
)

// File is a complete run description.
type File struct {
	Chain   Chain   `yaml:"chain" toml:"chain"`
	Lattice Lattice `yaml:"lattice" toml:"lattice"`
	Output  Output  `yaml:"output" toml:"output"`
}

// Chain configures chain generation.
type Chain struct {
	Atoms            int     `yaml:"atoms" toml:"atoms"`
	Count            int     `yaml:"count" toml:"count"`
	Seed             int64   `yaml:"seed" toml:"seed"`
	BondLength       float64 `yaml:"bond_length" toml:"bond_length"`
	BondAngle        float64 `yaml:"bond_angle" toml:"bond_angle"`
	OverlapTolerance float64 `yaml:"overlap_tolerance" toml:"overlap_tolerance"`
	MaxAttempts      int     `yaml:"max_attempts" toml:"max_attempts"`
}

// Lattice configures the screw-dislocation mesh. A zero Burgers value means
// "minus the spacing".
type Lattice struct {
	Extent  int     `yaml:"extent" toml:"extent"`
	Spacing float64 `yaml:"spacing" toml:"spacing"`
	Burgers float64 `yaml:"burgers" toml:"burgers"`
}

// Output configures the file sinks.
type Output struct {
	Dir     string `yaml:"dir" toml:"dir"`
	Element string `yaml:"element" toml:"element"`
	Comment string `yaml:"comment" toml:"comment"`
	XYZ     bool   `yaml:"xyz" toml:"xyz"`
	TXT     bool   `yaml:"txt" toml:"txt"`
}

// Default returns the reference run: 50 carbon atoms, default bond
// geometry, both output formats in the working directory.
func Default() File {
	cc := chain.DefaultConfig()

	return File{
		Chain: Chain{
			Atoms:            chain.DefaultAtoms,
			Count:            1,
			BondLength:       cc.BondLength,
			BondAngle:        cc.BondAngle,
			OverlapTolerance: cc.OverlapTolerance,
			MaxAttempts:      cc.MaxAttempts,
		},
		Lattice: Lattice{
			Extent:  lattice.DefaultExtent,
			Spacing: lattice.DefaultSpacing,
		},
		Output: Output{
			Dir:     ".",
			Element: xyz.ChainElement,
			Comment: xyz.ChainComment,
			XYZ:     true,
			TXT:     true,
		},
	}
}

// Load decodes path over Default(). The format follows the extension:
// .yaml/.yml or .toml. Unknown keys are rejected.
func Load(path string) (File, error) {
	cfg := Default()

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("runconfig: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(raw))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return cfg, fmt.Errorf("runconfig: %s: %w", path, err)
		}
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(raw))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return cfg, fmt.Errorf("runconfig: %s: %w", path, err)
		}
	default:
		return cfg, fmt.Errorf("runconfig: %q: %w", ext, ErrUnknownFormat)
	}

	return cfg, cfg.Validate()
}

// ChainConfig extracts the chain.Config part of the run.
func (f File) ChainConfig() chain.Config {
	return chain.Config{
		BondLength:       f.Chain.BondLength,
		BondAngle:        f.Chain.BondAngle,
		OverlapTolerance: f.Chain.OverlapTolerance,
		MaxAttempts:      f.Chain.MaxAttempts,
	}
}

// BurgersOrDefault returns the Burgers vector magnitude, −spacing if unset.
func (l Lattice) BurgersOrDefault() float64 {
	if l.Burgers == 0 {
		return -l.Spacing
	}
	return l.Burgers
}

// Validate reports the first meaningless value, wrapped in ErrInvalid.
func (f File) Validate() error {
	if f.Chain.Atoms < chain.MinAtoms {
		return fmt.Errorf("runconfig: chain.atoms=%d < %d: %w", f.Chain.Atoms, chain.MinAtoms, ErrInvalid)
	}
	if f.Chain.Count < 1 {
		return fmt.Errorf("runconfig: chain.count=%d < 1: %w", f.Chain.Count, ErrInvalid)
	}
	if err := f.ChainConfig().Validate(); err != nil {
		return fmt.Errorf("runconfig: %v: %w", err, ErrInvalid)
	}
	if f.Lattice.Extent < 1 || !(f.Lattice.Spacing > 0) {
		return fmt.Errorf("runconfig: lattice extent=%d spacing=%g: %w", f.Lattice.Extent, f.Lattice.Spacing, ErrInvalid)
	}

	return nil
}
