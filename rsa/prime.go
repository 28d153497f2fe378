package rsa

import (
	"errors"
	"math/big"

	"github.com/chankun4766151-cpu/Web3-Portfolio/common"
)

// PrimalityRounds is the Miller-Rabin round count used when sampling primes.
// The default gives a false-positive probability below 4^-20.
var PrimalityRounds = 20

// ErrInvalidBits is returned when a requested bit length is too small.
var ErrInvalidBits = errors.New("invalid prime bit length")

// GeneratePrime returns a probable prime with exactly bits bits. The top and
// bottom bit of every candidate are forced to 1 to guarantee the bit length
// and oddness. Sampling retries unbounded until a candidate passes the
// primality test, which terminates quickly in expectation by the prime
// number theorem.
func GeneratePrime(rnd RandSource, bits int) (*big.Int, error) {
	if bits < 2 {
		return nil, ErrInvalidBits
	}
	limit := new(big.Int).Lsh(common.Big1, uint(bits))
	for {
		candidate := rnd.Intn(limit)
		candidate.SetBit(candidate, bits-1, 1)
		candidate.SetBit(candidate, 0, 1)
		if IsProbablePrime(rnd, candidate, PrimalityRounds) {
			return candidate, nil
		}
	}
}
