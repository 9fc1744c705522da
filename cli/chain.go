package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/molchain/chain"
	"github.com/katalvlaran/molchain/logger"
	"github.com/katalvlaran/molchain/runconfig"
	"github.com/katalvlaran/molchain/xyz"
)

func newChainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chain [atoms]",
		Short: "Grow a self-avoiding carbon chain",
		Long: `Grows a chain of the given number of atoms (default 50) by constrained
random walk and writes C<atoms>.xyz and C<atoms>.txt. An atom count that
cannot be parsed falls back to 50.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runChain,
	}

	addGeometryFlags(cmd)
	cmd.Flags().Int64("seed", 0, "random seed (0 picks one from the clock)")
	cmd.Flags().Int("count", 1, "number of independent chains to generate")
	cmd.Flags().Int("max-attempts", chain.DefaultMaxAttempts, "candidate draws per atom before giving up (0 = unbounded)")
	cmd.Flags().String("out-dir", ".", "directory for output files")
	cmd.Flags().Bool("no-xyz", false, "skip the .xyz atom-list file")
	cmd.Flags().Bool("no-txt", false, "skip the .txt coordinate file")
	cmd.Flags().Bool("check", false, "re-validate the generated geometry before writing")

	return cmd
}

func runChain(cmd *cobra.Command, args []string) error {
	rc, err := loadRunConfig(cmd)
	if err != nil {
		return err
	}
	applyChainFlags(cmd, &rc)
	if rc.Chain.Count < 1 {
		return fmt.Errorf("chain: count=%d < 1: %w", rc.Chain.Count, runconfig.ErrInvalid)
	}

	n := rc.Chain.Atoms
	if len(args) == 1 {
		n = parseAtoms(args[0])
	}

	seed := rc.Chain.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	cfg := rc.ChainConfig()

	logger.Section("Chain")
	logger.Info("atoms=%d count=%d seed=%d bond=%g angle=%g tolerance=%g",
		n, rc.Chain.Count, seed, cfg.BondLength, cfg.BondAngle, cfg.OverlapTolerance)

	cmd.Printf("Creating a chain with %d carbons\n", n)

	var chains []*chain.Chain
	if rc.Chain.Count <= 1 {
		c, err := chain.Build(n, cfg, chain.WithSeed(seed), chain.WithLogger(logger.Std()))
		if err != nil {
			return err
		}
		chains = []*chain.Chain{c}
	} else {
		chains, err = chain.Ensemble(rc.Chain.Count, n, cfg, seed, chain.WithLogger(logger.Std()))
		if err != nil {
			return err
		}
	}

	check, _ := cmd.Flags().GetBool("check")
	if err := os.MkdirAll(rc.Output.Dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	for k, c := range chains {
		if check {
			if err := chain.Validate(c.Points(), cfg, 1e-9); err != nil {
				return err
			}
		}
		base := fmt.Sprintf("C%d", n)
		if len(chains) > 1 {
			base = fmt.Sprintf("C%d_%d", n, k)
		}
		if err := chain.Emit(c, sinksFor(rc.Output, base)...); err != nil {
			return fmt.Errorf("write %s: %w", base, err)
		}
		logger.Debug("wrote %s", filepath.Join(rc.Output.Dir, base))
	}

	cmd.Println("Done!")

	return nil
}

// applyChainFlags copies explicitly set chain flags over rc.
func applyChainFlags(cmd *cobra.Command, rc *runconfig.File) {
	applyGeometryFlags(cmd, rc)

	flags := cmd.Flags()
	if flags.Changed("seed") {
		rc.Chain.Seed, _ = flags.GetInt64("seed")
	}
	if flags.Changed("count") {
		rc.Chain.Count, _ = flags.GetInt("count")
	}
	if flags.Changed("max-attempts") {
		rc.Chain.MaxAttempts, _ = flags.GetInt("max-attempts")
	}
	if flags.Changed("out-dir") {
		rc.Output.Dir, _ = flags.GetString("out-dir")
	}
	if noXYZ, _ := flags.GetBool("no-xyz"); noXYZ {
		rc.Output.XYZ = false
	}
	if noTXT, _ := flags.GetBool("no-txt"); noTXT {
		rc.Output.TXT = false
	}
}

// parseAtoms reads the atom-count argument as a signed decimal integer,
// ignoring surrounding blanks and leading zeros ("010" is 10). Anything
// else, base prefixes included, falls back to chain.DefaultAtoms.
func parseAtoms(arg string) int {
	n, err := cast.ToIntE(decimalDigits(arg))
	if err != nil {
		logger.Warn("cannot parse atom count %q, using %d", arg, chain.DefaultAtoms)
		return chain.DefaultAtoms
	}
	return n
}

// decimalDigits normalizes arg to an optional sign and digits without
// leading zeros, or returns "" when arg is not a plain decimal integer.
func decimalDigits(arg string) string {
	s := strings.TrimSpace(arg)
	sign := ""
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		sign, s = s[:1], s[1:]
	}
	if s == "" || strings.Trim(s, "0123456789") != "" {
		return ""
	}
	if s = strings.TrimLeft(s, "0"); s == "" {
		s = "0"
	}

	return sign + s
}

// sinksFor lists the enabled file sinks for one output base name.
func sinksFor(out runconfig.Output, base string) []chain.Sink {
	var sinks []chain.Sink
	if out.XYZ {
		sinks = append(sinks, xyz.XYZFile{
			Path:    filepath.Join(out.Dir, base+".xyz"),
			Element: out.Element,
			Comment: out.Comment,
		})
	}
	if out.TXT {
		sinks = append(sinks, xyz.TXTFile{Path: filepath.Join(out.Dir, base+".txt")})
	}

	return sinks
}
