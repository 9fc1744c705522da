package chain_test

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/molchain/chain"
	"github.com/katalvlaran/molchain/geom"
)

const eps = 1e-9

// recordingSink keeps every point list it is handed.
type recordingSink struct {
	got [][]geom.Point3D
	err error
}

func (s *recordingSink) WritePoints(points []geom.Point3D) error {
	s.got = append(s.got, points)
	return s.err
}

// countingLogger counts Debugf calls.
type countingLogger struct{ lines []string }

func (l *countingLogger) Debugf(format string, args ...any) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

// assertInvariants checks bond length, bond angle and overlap directly,
// independently of chain.Validate.
func assertInvariants(t *testing.T, c *chain.Chain, cfg chain.Config) {
	t.Helper()
	pts := c.Points()

	for i := 0; i+1 < len(pts); i++ {
		assert.InDelta(t, cfg.BondLength, geom.Distance(pts[i], pts[i+1]), eps, "bond %d", i)
	}
	for i := 1; i+1 < len(pts); i++ {
		ang, err := geom.BondAngle(pts[i-1], pts[i], pts[i+1])
		require.NoError(t, err)
		assert.InDelta(t, cfg.BondAngle, ang, 1e-6, "angle at %d", i)
	}
	for i := 0; i < len(pts); i++ {
		for j := i + 2; j < len(pts); j++ {
			assert.Greater(t, geom.Distance(pts[i], pts[j]), cfg.MinSeparation(), "atoms %d,%d overlap", i, j)
		}
	}
}

// TestBuild_SeedOnly verifies that n=2 yields exactly the seed bond.
func TestBuild_SeedOnly(t *testing.T) {
	c, err := chain.Build(2, chain.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, []geom.Point3D{geom.New(0, 0, 0), geom.New(0, 0, 1.54)}, c.Points())
}

// TestBuild_ThreeAtoms checks the first tetrahedral angle.
func TestBuild_ThreeAtoms(t *testing.T) {
	c, err := chain.Build(3, chain.DefaultConfig(), chain.WithSeed(3))
	require.NoError(t, err)
	require.Equal(t, 3, c.Len())

	assert.InDelta(t, 1.54, geom.Distance(c.At(0), c.At(1)), 1e-6)
	assert.InDelta(t, 1.54, geom.Distance(c.At(1), c.At(2)), 1e-6)
	ang, err := geom.BondAngle(c.At(0), c.At(1), c.At(2))
	require.NoError(t, err)
	assert.InDelta(t, 109.5, ang, 1e-6)
}

// TestBuild_Lengths runs several sizes and seeds and checks every invariant.
func TestBuild_Lengths(t *testing.T) {
	cfg := chain.DefaultConfig()
	for _, n := range []int{2, 3, 4, 10, 50, 100} {
		for _, seed := range []int64{0, 1, 42, 1234567} {
			t.Run(fmt.Sprintf("n=%d/seed=%d", n, seed), func(t *testing.T) {
				c, err := chain.Build(n, cfg, chain.WithSeed(seed))
				require.NoError(t, err)
				assert.Equal(t, n, c.Len())
				assertInvariants(t, c, cfg)
			})
		}
	}
}

// TestBuild_NoOverlap50 is the N=50 scenario: no non-adjacent pair closer
// than 1.54·1.3 = 2.002 Å.
func TestBuild_NoOverlap50(t *testing.T) {
	c, err := chain.Build(50, chain.DefaultConfig(), chain.WithSeed(2017))
	require.NoError(t, err)
	pts := c.Points()
	for i := range pts {
		for j := i + 2; j < len(pts); j++ {
			assert.Greater(t, geom.Distance(pts[i], pts[j]), 2.002)
		}
	}
}

// TestBuild_CustomGeometry exercises a non-default bond geometry.
func TestBuild_CustomGeometry(t *testing.T) {
	cfg := chain.Config{BondLength: 1.0, BondAngle: 120, OverlapTolerance: 1.1, MaxAttempts: 1000}
	c, err := chain.Build(60, cfg, chain.WithSeed(5))
	require.NoError(t, err)
	assertInvariants(t, c, cfg)
	assert.NoError(t, chain.Validate(c.Points(), cfg, eps))
}

// TestBuild_Deterministic verifies bit-identical chains for equal seeds.
func TestBuild_Deterministic(t *testing.T) {
	cfg := chain.DefaultConfig()
	a, err := chain.Build(40, cfg, chain.WithSeed(7))
	require.NoError(t, err)
	b, err := chain.Build(40, cfg, chain.WithRand(rand.New(rand.NewSource(7))))
	require.NoError(t, err)
	assert.Equal(t, a.Points(), b.Points())

	c, err := chain.Build(40, cfg, chain.WithSeed(8))
	require.NoError(t, err)
	assert.NotEqual(t, a.Points(), c.Points())
}

// TestBuild_DefaultSeed checks that no RNG option means the default seed.
func TestBuild_DefaultSeed(t *testing.T) {
	cfg := chain.DefaultConfig()
	a, err := chain.Build(20, cfg)
	require.NoError(t, err)
	b, err := chain.Build(20, cfg, chain.WithSeed(0))
	require.NoError(t, err)
	assert.Equal(t, a.Points(), b.Points())
}

// TestBuild_InvalidLength covers n below the seed size.
func TestBuild_InvalidLength(t *testing.T) {
	for _, n := range []int{-5, 0, 1} {
		c, err := chain.Build(n, chain.DefaultConfig())
		assert.ErrorIs(t, err, chain.ErrInvalidChainLength, "n=%d", n)
		assert.Nil(t, c)
	}
}

// TestBuild_InvalidConfig ensures the config is validated before growth.
func TestBuild_InvalidConfig(t *testing.T) {
	cfg := chain.DefaultConfig()
	cfg.BondLength = 0
	_, err := chain.Build(10, cfg)
	assert.ErrorIs(t, err, chain.ErrInvalidConfig)
}

// TestBuild_OverlapResolutionFailed uses an exclusion radius no candidate
// can escape, so the capped loop must give up.
func TestBuild_OverlapResolutionFailed(t *testing.T) {
	cfg := chain.DefaultConfig()
	cfg.OverlapTolerance = 100
	cfg.MaxAttempts = 5

	g, err := chain.NewGenerator(cfg, chain.WithSeed(1))
	require.NoError(t, err)
	c, err := g.Build(3)
	assert.ErrorIs(t, err, chain.ErrOverlapResolutionFailed)
	assert.Nil(t, c, "no partial chain on failure")
	assert.Equal(t, 5, g.Rejected())
}

// TestBuild_SecondNeighbourChecked: with θ = 60° the atom two bonds back
// sits exactly one bond length from every candidate, inside a·tol, so each
// draw must be rejected. Only the bonded partner is exempt from the test.
func TestBuild_SecondNeighbourChecked(t *testing.T) {
	cfg := chain.DefaultConfig()
	cfg.BondAngle = 60
	cfg.MaxAttempts = 8

	g, err := chain.NewGenerator(cfg, chain.WithSeed(5))
	require.NoError(t, err)
	c, err := g.Build(3)
	assert.ErrorIs(t, err, chain.ErrOverlapResolutionFailed)
	assert.Nil(t, c)
	assert.Equal(t, 8, g.Rejected())

	cfg.OverlapTolerance = 0.9
	c, err = chain.Build(3, cfg, chain.WithSeed(5))
	require.NoError(t, err)
	assert.InDelta(t, cfg.BondLength, geom.Distance(c.At(0), c.At(2)), 1e-9)
}

// TestGrowOne_AppendsWithoutMutating checks the value semantics of GrowOne.
func TestGrowOne_AppendsWithoutMutating(t *testing.T) {
	cfg := chain.DefaultConfig()
	g, err := chain.NewGenerator(cfg, chain.WithSeed(11))
	require.NoError(t, err)

	seed := chain.Seed(cfg.BondLength)
	grown, err := g.GrowOne(seed)
	require.NoError(t, err)

	assert.Equal(t, 2, seed.Len(), "input chain must be untouched")
	assert.Equal(t, 3, grown.Len())
	assert.Equal(t, seed.Points(), grown.Points()[:2])

	for i := 0; i < 20; i++ {
		grown, err = g.GrowOne(grown)
		require.NoError(t, err)
	}
	assert.Equal(t, 23, grown.Len())
	assertInvariants(t, grown, cfg)
}

// TestGrowOne_MatchesBuild checks that stepwise growth replays Build.
func TestGrowOne_MatchesBuild(t *testing.T) {
	cfg := chain.DefaultConfig()
	built, err := chain.Build(15, cfg, chain.WithSeed(99))
	require.NoError(t, err)

	g, err := chain.NewGenerator(cfg, chain.WithSeed(99))
	require.NoError(t, err)
	c := chain.Seed(cfg.BondLength)
	for c.Len() < 15 {
		c, err = g.GrowOne(c)
		require.NoError(t, err)
	}
	assert.Equal(t, built.Points(), c.Points())
}

// TestGrowOne_TooShort rejects chains without a previous bond.
func TestGrowOne_TooShort(t *testing.T) {
	g, err := chain.NewGenerator(chain.DefaultConfig())
	require.NoError(t, err)

	_, err = g.GrowOne(nil)
	assert.ErrorIs(t, err, chain.ErrInvalidChainLength)
	_, err = g.GrowOne(&chain.Chain{})
	assert.ErrorIs(t, err, chain.ErrInvalidChainLength)
}

// TestChain_Accessors covers Len/At/Bond/Points.
func TestChain_Accessors(t *testing.T) {
	var nilChain *chain.Chain
	assert.Equal(t, 0, nilChain.Len())
	assert.Nil(t, nilChain.Points())

	c := chain.Seed(2)
	assert.Equal(t, geom.New(0, 0, 2), c.At(1))
	assert.Equal(t, geom.New(0, 0, 2), c.Bond(0))

	pts := c.Points()
	pts[0] = geom.New(9, 9, 9)
	assert.Equal(t, geom.Origin, c.At(0), "Points must return a copy")
}

// TestEmit hands the chain to several sinks and surfaces sink failures.
func TestEmit(t *testing.T) {
	c, err := chain.Build(5, chain.DefaultConfig())
	require.NoError(t, err)

	a, b := &recordingSink{}, &recordingSink{}
	require.NoError(t, chain.Emit(c, a, b))
	assert.Equal(t, [][]geom.Point3D{c.Points()}, a.got)
	assert.Equal(t, [][]geom.Point3D{c.Points()}, b.got)

	boom := errors.New("disk full")
	failing, after := &recordingSink{err: boom}, &recordingSink{}
	err = chain.Emit(c, failing, after)
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, after.got, "sinks after a failure are skipped")

	assert.ErrorIs(t, chain.Emit(c, nil), chain.ErrNilSink)
}

// TestWithLogger_ReportsBuild checks that diagnostics reach the logger.
func TestWithLogger_ReportsBuild(t *testing.T) {
	l := &countingLogger{}
	_, err := chain.Build(30, chain.DefaultConfig(), chain.WithLogger(l))
	require.NoError(t, err)
	require.NotEmpty(t, l.lines)
	assert.Contains(t, l.lines[len(l.lines)-1], "built 30-atom chain")
}

// TestOptions_PanicOnNil locks the fail-fast contract of option constructors.
func TestOptions_PanicOnNil(t *testing.T) {
	assert.Panics(t, func() { chain.WithRand(nil) })
	assert.Panics(t, func() { chain.WithLogger(nil) })
}

// TestBuild_StraightChain: a 180° bond angle degenerates into a line.
func TestBuild_StraightChain(t *testing.T) {
	cfg := chain.DefaultConfig()
	cfg.BondAngle = 180
	c, err := chain.Build(6, cfg)
	require.NoError(t, err)
	last := c.At(5)
	assert.InDelta(t, 0, math.Hypot(last.X, last.Y), eps)
	assert.InDelta(t, 5*1.54, last.Z, eps)
}
