package worker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chankun4766151-cpu/Web3-Portfolio/params"
	"github.com/chankun4766151-cpu/Web3-Portfolio/pow"
)

func TestSolutionRecords(t *testing.T) {
	params.SetConfig(&params.WorkbenchConfig{
		Identifier: "test",
		Miner:      &params.MinerConfig{Nickname: "Sam"},
		RSA:        &params.RSAConfig{},
		Cache:      &params.CacheConfig{Enable: true, DBDir: t.TempDir()},
	})
	require.NoError(t, params.GetConfig().CheckConfig())

	OpenSolutionDatabase()
	require.NotNil(t, lvldbHandle)
	defer CloseSolutionDatabase()

	assert.Nil(t, GetSolutionRecord("Sam", "00", "sha256"))

	solution := &pow.Solution{
		Nonce:     209,
		Message:   "Sam209",
		DigestHex: "00409a4cd8dfdb1ef5e260a223e062e77c74939c5281980af1eff8fea4c99418",
	}
	require.NoError(t, AddSolutionRecord("Sam", "00", "sha256", solution))

	got := GetSolutionRecord("Sam", "00", "sha256")
	require.NotNil(t, got)
	assert.Equal(t, solution, got)

	// records are keyed by the full (nickname, prefix, algorithm) tuple
	assert.Nil(t, GetSolutionRecord("Sam", "000", "sha256"))
	assert.Nil(t, GetSolutionRecord("Sam", "00", "keccak256"))
	assert.Nil(t, GetSolutionRecord("ChenKun", "00", "sha256"))
}

func TestSolutionRecordsDisabled(t *testing.T) {
	lvldbHandle = nil
	assert.NoError(t, AddSolutionRecord("Sam", "00", "sha256", &pow.Solution{Nonce: 209}))
	assert.Nil(t, GetSolutionRecord("Sam", "00", "sha256"))
}
