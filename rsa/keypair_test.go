package rsa

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chankun4766151-cpu/Web3-Portfolio/common"
)

var (
	fixtureP, _ = new(big.Int).SetString("1224708678353690534618407679660981200927625709343", 10)
	fixtureQ, _ = new(big.Int).SetString("799072352197797318580042488171796990208284841947", 10)
	fixtureD, _ = new(big.Int).SetString("780954491808621153479799249213392910786578704077174939463987635414724838274424240727810054341637", 10)
)

func phiOf(p, q *big.Int) *big.Int {
	return new(big.Int).Mul(
		new(big.Int).Sub(p, common.Big1),
		new(big.Int).Sub(q, common.Big1),
	)
}

func TestKeyPairFromPrimes(t *testing.T) {
	pub, priv, ok := keyPairFromPrimes(fixtureP, fixtureQ)
	require.True(t, ok)

	wantN := new(big.Int).Mul(fixtureP, fixtureQ)
	assert.Zero(t, pub.N.Cmp(wantN))
	assert.Zero(t, priv.N.Cmp(wantN))
	assert.Zero(t, pub.E.Cmp(big.NewInt(65537)))
	assert.Zero(t, priv.D.Cmp(fixtureD))

	// e*d == 1 (mod phi)
	phi := phiOf(fixtureP, fixtureQ)
	ed := new(big.Int).Mul(pub.E, priv.D)
	assert.Zero(t, ed.Mod(ed, phi).Cmp(common.Big1))
}

func TestKeyPairFromSmallPrimes(t *testing.T) {
	// the classic p=61 q=53 textbook example
	_, priv, ok := keyPairFromPrimes(big.NewInt(61), big.NewInt(53))
	require.True(t, ok)
	assert.Zero(t, priv.D.Cmp(big.NewInt(2753)))
}

func TestKeyPairFromPrimesGCDFailure(t *testing.T) {
	// 917519 is prime with 917518 = 2 * 7 * 65537, so gcd(e, phi) = 65537
	p := big.NewInt(917519)
	q := big.NewInt(101)
	_, _, ok := keyPairFromPrimes(p, q)
	assert.False(t, ok)
}

func TestGenerateKeyPair(t *testing.T) {
	rnd := NewPseudoRand(3)
	pub, priv, err := GenerateKeyPair(rnd, 128)
	require.NoError(t, err)

	assert.Zero(t, pub.N.Cmp(priv.N))
	assert.Zero(t, pub.E.Cmp(big.NewInt(65537)))
	assert.True(t, priv.D.Sign() > 0)
	assert.GreaterOrEqual(t, pub.N.BitLen(), 127)
	assert.LessOrEqual(t, pub.N.BitLen(), 128)
}

func TestGenerateKeyPairInvalidBits(t *testing.T) {
	for _, bits := range []int{0, 8, 15, 127} {
		_, _, err := GenerateKeyPair(NewPseudoRand(1), bits)
		assert.ErrorIs(t, err, ErrInvalidKeyBits, "bits %v", bits)
	}
}
