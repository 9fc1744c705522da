package chain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/molchain/chain"
	"github.com/katalvlaran/molchain/geom"
)

// TestValidate_Generated accepts freshly generated chains.
func TestValidate_Generated(t *testing.T) {
	cfg := chain.DefaultConfig()
	c, err := chain.Build(50, cfg, chain.WithSeed(21))
	require.NoError(t, err)
	assert.NoError(t, chain.Validate(c.Points(), cfg, eps))
}

// TestValidate_Violations tampers with a valid chain in different ways.
func TestValidate_Violations(t *testing.T) {
	cfg := chain.DefaultConfig()
	c, err := chain.Build(20, cfg, chain.WithSeed(4))
	require.NoError(t, err)

	stretched := c.Points()
	for i := range stretched {
		stretched[i] = stretched[i].Mul(1.01)
	}

	wrongAngle := cfg
	wrongAngle.BondAngle = 120

	wideExclusion := cfg
	wideExclusion.OverlapTolerance = 2

	tests := []struct {
		name   string
		points []geom.Point3D
		cfg    chain.Config
		want   error
	}{
		{"too short", []geom.Point3D{geom.Origin}, cfg, chain.ErrInvalidChainLength},
		{"bond length", stretched, cfg, chain.ErrInvariantViolated},
		{"bond angle", c.Points(), wrongAngle, chain.ErrInvariantViolated},
		{"overlap", c.Points(), wideExclusion, chain.ErrInvariantViolated},
		{
			"duplicate atom",
			[]geom.Point3D{geom.Origin, geom.New(0, 0, 1.54), geom.New(0, 0, 1.54)},
			cfg,
			chain.ErrInvariantViolated,
		},
		{"bad config", c.Points(), chain.Config{}, chain.ErrInvalidConfig},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, chain.Validate(tc.points, tc.cfg, eps), tc.want)
		})
	}
}

// TestValidate_RoundedCoordinates: 3-decimal rounding passes with a
// matching tolerance.
func TestValidate_RoundedCoordinates(t *testing.T) {
	cfg := chain.DefaultConfig()
	c, err := chain.Build(30, cfg, chain.WithSeed(8))
	require.NoError(t, err)

	pts := c.Points()
	for i, p := range pts {
		pts[i] = geom.New(round3(p.X), round3(p.Y), round3(p.Z))
	}
	assert.NoError(t, chain.Validate(pts, cfg, 5e-3))
}

func round3(x float64) float64 {
	if x < 0 {
		return -float64(int64(-x*1000+0.5)) / 1000
	}
	return float64(int64(x*1000+0.5)) / 1000
}
