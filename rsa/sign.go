package rsa

import (
	"errors"
	"math/big"

	"github.com/chankun4766151-cpu/Web3-Portfolio/common"
	"github.com/chankun4766151-cpu/Web3-Portfolio/tools/crypto"
)

// errors of precondition violations, not expected runtime paths
var (
	ErrInvalidPrivateKey = errors.New("invalid rsa private key")
	ErrInvalidPublicKey  = errors.New("invalid rsa public key")
)

// HashMessage returns the SHA-256 digest of message interpreted as a
// big-endian unsigned integer.
func HashMessage(message string) *big.Int {
	return crypto.HashToInt(crypto.Sha256Sum([]byte(message)))
}

// Sign signs message with priv, returning digest^d mod n.
// The digest is used raw without padding.
func Sign(priv *PrivateKey, message string) (*big.Int, error) {
	if priv == nil || priv.N == nil || priv.D == nil ||
		priv.N.Cmp(common.Big1) <= 0 || priv.D.Sign() <= 0 {
		return nil, ErrInvalidPrivateKey
	}
	h := HashMessage(message)
	return new(big.Int).Exp(h, priv.D, priv.N), nil
}

// Verify reports whether sig is a valid signature of message under pub,
// ie. sig^e mod n equals the unreduced message digest. A digest >= n can
// therefore never verify; correctness assumes n is larger than the 256 bit
// digest space.
func Verify(pub *PublicKey, message string, sig *big.Int) (bool, error) {
	if pub == nil || pub.N == nil || pub.E == nil ||
		pub.N.Cmp(common.Big1) <= 0 || pub.E.Sign() <= 0 {
		return false, ErrInvalidPublicKey
	}
	if sig == nil || sig.Sign() < 0 || sig.Cmp(pub.N) >= 0 {
		// a signature is an integer in [0, n)
		return false, nil
	}
	h := HashMessage(message)
	recovered := new(big.Int).Exp(sig, pub.E, pub.N)
	return recovered.Cmp(h) == 0, nil
}
