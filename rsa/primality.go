package rsa

import (
	"math/big"

	"github.com/chankun4766151-cpu/Web3-Portfolio/common"
)

var smallPrimes = []int64{2, 3, 5, 7, 11, 13, 17, 19, 23}

// IsProbablePrime reports whether n is probably prime using rounds of the
// Miller-Rabin test. The test is one-sided: a composite passes all rounds
// with probability at most 4^-rounds, a true prime is never rejected.
// Witness bases are drawn from rnd.
func IsProbablePrime(rnd RandSource, n *big.Int, rounds int) bool {
	if n.Cmp(common.Big2) < 0 {
		return false
	}
	if rounds < 1 {
		rounds = 1
	}
	mod := new(big.Int)
	for _, sp := range smallPrimes {
		p := big.NewInt(sp)
		if n.Cmp(p) == 0 {
			return true
		}
		if mod.Mod(n, p).Sign() == 0 {
			return false
		}
	}

	// write n-1 = 2^r * d with d odd
	nMinus1 := new(big.Int).Sub(n, common.Big1)
	d := new(big.Int).Set(nMinus1)
	r := 0
	for d.Bit(0) == 0 {
		d.Rsh(d, 1)
		r++
	}

	// base range [2, n-2] (n >= 29 here, so the range is never empty)
	baseRange := new(big.Int).Sub(n, common.Big3)
	x := new(big.Int)
	for i := 0; i < rounds; i++ {
		a := new(big.Int).Add(common.Big2, rnd.Intn(baseRange))
		x.Exp(a, d, n)
		if x.Cmp(common.Big1) == 0 || x.Cmp(nMinus1) == 0 {
			continue
		}
		witnessed := false
		for j := 0; j < r-1; j++ {
			x.Exp(x, common.Big2, n)
			if x.Cmp(nMinus1) == 0 {
				witnessed = true
				break
			}
		}
		if !witnessed {
			// definitively composite
			return false
		}
	}
	return true
}
