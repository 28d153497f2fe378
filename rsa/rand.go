package rsa

import (
	crand "crypto/rand"
	"math/big"
	mrand "math/rand"
)

// RandSource yields uniform random big integers in a half-open range.
// The prime sampler and the Miller-Rabin witness picker draw from it, so
// tests can substitute a seeded source for reproducible runs.
type RandSource interface {
	// Intn returns a uniform random integer in [0, max), max must be > 0.
	Intn(max *big.Int) *big.Int
}

// DefaultRand is the production random source backed by crypto/rand.
var DefaultRand RandSource = cryptoRand{}

type cryptoRand struct{}

func (cryptoRand) Intn(max *big.Int) *big.Int {
	v, err := crand.Int(crand.Reader, max)
	if err != nil {
		// crypto/rand.Reader failure is unrecoverable
		panic("rsa: crypto/rand read failed: " + err.Error())
	}
	return v
}

// NewPseudoRand returns a deterministic source seeded with seed.
// Only for tests and reproducible demos, never for real key material.
func NewPseudoRand(seed int64) RandSource {
	return &pseudoRand{rnd: mrand.New(mrand.NewSource(seed))}
}

type pseudoRand struct {
	rnd *mrand.Rand
}

func (p *pseudoRand) Intn(max *big.Int) *big.Int {
	return new(big.Int).Rand(p.rnd, max)
}
