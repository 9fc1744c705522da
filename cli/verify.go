package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/molchain/chain"
	"github.com/katalvlaran/molchain/xyz"
)

// defaultVerifyEps absorbs the 3-decimal rounding of written coordinates.
const defaultVerifyEps = 5e-3

func newVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify <file>",
		Short: "Check bond lengths, bond angles and overlaps of a chain file",
		Long: `Reads a chain from an .xyz or .txt file and checks that every bond has
the configured length, every bond angle matches, and no two non-bonded
atoms overlap.`,
		Args: cobra.ExactArgs(1),
		RunE: runVerify,
	}
	addGeometryFlags(cmd)
	cmd.Flags().Float64("eps", defaultVerifyEps, "absolute length tolerance in Angstrom")

	return cmd
}

func runVerify(cmd *cobra.Command, args []string) error {
	rc, err := loadRunConfig(cmd)
	if err != nil {
		return err
	}
	applyGeometryFlags(cmd, &rc)
	eps, _ := cmd.Flags().GetFloat64("eps")

	pts, err := xyz.ReadPointsFile(args[0])
	if err != nil {
		return err
	}
	if err := chain.Validate(pts, rc.ChainConfig(), eps); err != nil {
		return err
	}

	cmd.Printf("OK: %d atoms in %s\n", len(pts), args[0])

	return nil
}
