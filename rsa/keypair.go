package rsa

import (
	"errors"
	"math/big"

	"github.com/chankun4766151-cpu/Web3-Portfolio/common"
)

// publicExponent is the fixed RSA public exponent e.
var publicExponent = big.NewInt(65537)

// minKeyBits guards against moduli too small to split into two primes.
const minKeyBits = 16

// ErrInvalidKeyBits is returned when the requested modulus size is unusable.
var ErrInvalidKeyBits = errors.New("invalid rsa key bit length")

// PublicKey is the public part (e, n) of an RSA key pair.
type PublicKey struct {
	E *big.Int
	N *big.Int
}

// PrivateKey is the private part (d, n) of an RSA key pair.
// d is the modular inverse of e modulo phi(n).
type PrivateKey struct {
	D *big.Int
	N *big.Int
}

// GenerateKeyPair builds an RSA key pair with a modulus of bits bits from
// two freshly sampled primes of bits/2 bits each. q is resampled while it
// collides with p, and the whole pair is resampled while gcd(e, phi) != 1.
// Generation only terminates by success.
func GenerateKeyPair(rnd RandSource, bits int) (*PublicKey, *PrivateKey, error) {
	if bits < minKeyBits || bits%2 != 0 {
		return nil, nil, ErrInvalidKeyBits
	}
	for {
		p, err := GeneratePrime(rnd, bits/2)
		if err != nil {
			return nil, nil, err
		}
		q, err := GeneratePrime(rnd, bits/2)
		if err != nil {
			return nil, nil, err
		}
		for p.Cmp(q) == 0 {
			if q, err = GeneratePrime(rnd, bits/2); err != nil {
				return nil, nil, err
			}
		}
		pub, priv, ok := keyPairFromPrimes(p, q)
		if !ok {
			// gcd(e, phi) != 1, resample both primes
			continue
		}
		return pub, priv, nil
	}
}

// keyPairFromPrimes combines two distinct primes into a key pair.
// It reports failure when e is not coprime to phi = (p-1)(q-1).
func keyPairFromPrimes(p, q *big.Int) (*PublicKey, *PrivateKey, bool) {
	n := new(big.Int).Mul(p, q)
	phi := new(big.Int).Mul(
		new(big.Int).Sub(p, common.Big1),
		new(big.Int).Sub(q, common.Big1),
	)
	if new(big.Int).GCD(nil, nil, publicExponent, phi).Cmp(common.Big1) != 0 {
		return nil, nil, false
	}
	d := new(big.Int).ModInverse(publicExponent, phi)
	pub := &PublicKey{E: new(big.Int).Set(publicExponent), N: n}
	priv := &PrivateKey{D: d, N: new(big.Int).Set(n)}
	return pub, priv, true
}
