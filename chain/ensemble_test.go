package chain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/molchain/chain"
)

// TestEnsemble_IndependentAndDeterministic builds the same ensemble twice.
func TestEnsemble_IndependentAndDeterministic(t *testing.T) {
	cfg := chain.DefaultConfig()

	first, err := chain.Ensemble(6, 25, cfg, 77)
	require.NoError(t, err)
	second, err := chain.Ensemble(6, 25, cfg, 77)
	require.NoError(t, err)

	require.Len(t, first, 6)
	for k := range first {
		assert.Equal(t, 25, first[k].Len())
		assert.NoError(t, chain.Validate(first[k].Points(), cfg, eps))
		assert.Equal(t, first[k].Points(), second[k].Points(), "chain %d must replay", k)
	}
	assert.NotEqual(t, first[0].Points(), first[1].Points(), "streams must differ")
}

// TestEnsemble_Errors covers invalid arguments and a failing member.
func TestEnsemble_Errors(t *testing.T) {
	cfg := chain.DefaultConfig()

	_, err := chain.Ensemble(0, 10, cfg, 1)
	assert.ErrorIs(t, err, chain.ErrInvalidChainLength)

	_, err = chain.Ensemble(3, 1, cfg, 1)
	assert.ErrorIs(t, err, chain.ErrInvalidChainLength)

	bad := cfg
	bad.BondAngle = -1
	_, err = chain.Ensemble(3, 10, bad, 1)
	assert.ErrorIs(t, err, chain.ErrInvalidConfig)

	stuck := cfg
	stuck.OverlapTolerance = 100
	stuck.MaxAttempts = 3
	chains, err := chain.Ensemble(2, 5, stuck, 1)
	assert.ErrorIs(t, err, chain.ErrOverlapResolutionFailed)
	assert.Nil(t, chains)
}
