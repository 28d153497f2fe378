package pow

import (
	"context"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chankun4766151-cpu/Web3-Portfolio/tools/crypto"
)

type mineTest struct {
	nickname  string
	prefix    string
	nonce     uint64
	digestHex string
}

var mineTests = []mineTest{
	{"Sam", "0", 9, "0a5f9194343870d97bcf58de60dfb722300880d64411e08ba054a6227fc11a49"},
	{"Sam", "00", 209, "00409a4cd8dfdb1ef5e260a223e062e77c74939c5281980af1eff8fea4c99418"},
	{"Sam", "000", 5521, "0005a8dbc283be306ef64503c286db76e13061a263f70b128b7874a63ac70f73"},
	{"ChenKun", "00", 350, "008fbea016155ae7dce0a337d5e025ee2b71548b9037d15407ace010b4ff5bbb"},
	{"ChenKun", "000", 2298, "000e2541af40422738e88891705fe3a13c3132f24440b74ea595de4eab4170d0"},
}

func TestMine(t *testing.T) {
	for _, test := range mineTests {
		sol, err := Mine(context.Background(), test.nickname, test.prefix)
		require.NoError(t, err)
		assert.Equal(t, test.nonce, sol.Nonce, "%v/%v", test.nickname, test.prefix)
		assert.Equal(t, test.nickname+strconv.FormatUint(test.nonce, 10), sol.Message)
		assert.Equal(t, test.digestHex, sol.DigestHex)
		assert.True(t, strings.HasPrefix(sol.DigestHex, test.prefix))
	}
}

// the full difficulty 4 search of the homework (nickname Sam, prefix 0000)
func TestMineDifficulty4(t *testing.T) {
	if testing.Short() {
		t.Skip("skip difficulty 4 search in short mode")
	}
	sol, err := Mine(context.Background(), "Sam", "0000")
	require.NoError(t, err)
	assert.Equal(t, uint64(194920), sol.Nonce)
	assert.Equal(t, "Sam194920", sol.Message)
	assert.Equal(t, "0000688b7bed299929fb2f5af229d5dacc4bfab1a167e50357570e408e9222a3", sol.DigestHex)

	// no smaller nonce satisfies the prefix
	for nonce := uint64(0); nonce < sol.Nonce; nonce++ {
		digest := crypto.Sha256Hex([]byte("Sam" + strconv.FormatUint(nonce, 10)))
		if strings.HasPrefix(digest, "0000") {
			t.Fatalf("smaller nonce %v also matches", nonce)
		}
	}
}

func TestMineParallelMatchesSequential(t *testing.T) {
	for _, test := range mineTests {
		for _, workers := range []int{2, 4, 7} {
			sol, err := MineParallel(context.Background(), test.nickname, test.prefix, workers)
			require.NoError(t, err)
			assert.Equal(t, test.nonce, sol.Nonce, "%v/%v workers=%v", test.nickname, test.prefix, workers)
			assert.Equal(t, test.digestHex, sol.DigestHex)
		}
	}
}

func TestMineParallelSingleWorkerFallback(t *testing.T) {
	sol, err := MineParallel(context.Background(), "Sam", "00", 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(209), sol.Nonce)
}

func TestMineCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Mine(ctx, "Sam", "ffffffffffffffff")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMineParallelCanceled(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := MineParallel(ctx, "Sam", "ffffffffffffffff", 4)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestMineWithKeccak(t *testing.T) {
	sol, err := MineWithHash(context.Background(), "Sam", "0", crypto.Keccak256Hex)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(sol.DigestHex, "0"))
	assert.Equal(t, crypto.Keccak256Hex([]byte(sol.Message)), sol.DigestHex)
	// no smaller nonce matches
	for nonce := uint64(0); nonce < sol.Nonce; nonce++ {
		digest := crypto.Keccak256Hex([]byte("Sam" + strconv.FormatUint(nonce, 10)))
		assert.False(t, strings.HasPrefix(digest, "0"), "nonce %v", nonce)
	}
}
