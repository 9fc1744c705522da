// Package cli implements the molchain command tree on top of cobra.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/molchain/logger"
	"github.com/katalvlaran/molchain/runconfig"
)

// version is overridden at build time with -ldflags "-X".
var version = "dev"

// NewRootCommand assembles the full command tree. A fresh tree is built
// per call so flag state never leaks between executions.
func NewRootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "molchain",
		Short: "Generate idealized atomic-chain and lattice geometries",
		Long: `molchain builds self-avoiding carbon backbones with a fixed bond length
and bond angle by constrained random walk, and applies a screw dislocation
to a cubic mesh. Results are written as .xyz and .txt coordinate files.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logger.SetOutput(cmd.ErrOrStderr())
			logger.SetVerbose(verbose)
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug output to stderr")
	root.PersistentFlags().StringP("config", "c", "", "run configuration file (.yaml, .yml or .toml)")

	root.AddCommand(
		newChainCmd(),
		newDislocateCmd(),
		newVerifyCmd(),
		newVersionCmd(),
	)

	return root
}

// Execute runs the command tree against os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

// loadRunConfig returns the --config file merged over the defaults, or the
// defaults alone when no file was given.
func loadRunConfig(cmd *cobra.Command) (runconfig.File, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return runconfig.Default(), nil
	}
	logger.Info("loading configuration from %s", path)

	return runconfig.Load(path)
}
