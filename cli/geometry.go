package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/molchain/chain"
	"github.com/katalvlaran/molchain/runconfig"
)

// addGeometryFlags registers the bond-geometry flags shared by chain and verify.
func addGeometryFlags(cmd *cobra.Command) {
	cmd.Flags().Float64("bond-length", chain.DefaultBondLength, "bond length in Angstrom")
	cmd.Flags().Float64("bond-angle", chain.DefaultBondAngle, "bond angle in degrees")
	cmd.Flags().Float64("tolerance", chain.DefaultOverlapTolerance, "overlap tolerance factor (min non-bonded distance / bond length)")
}

// applyGeometryFlags copies explicitly set geometry flags over f.
func applyGeometryFlags(cmd *cobra.Command, f *runconfig.File) {
	flags := cmd.Flags()
	if flags.Changed("bond-length") {
		f.Chain.BondLength, _ = flags.GetFloat64("bond-length")
	}
	if flags.Changed("bond-angle") {
		f.Chain.BondAngle, _ = flags.GetFloat64("bond-angle")
	}
	if flags.Changed("tolerance") {
		f.Chain.OverlapTolerance, _ = flags.GetFloat64("tolerance")
	}
}
