// Package crypto provides the hash primitives shared by the miner and the
// RSA signer: SHA-256 (default) and legacy Keccak256, with helpers to view
// a digest as lowercase hex or as a big-endian unsigned integer.
package crypto

import (
	"crypto/sha256"
	"encoding/hex"
	"math/big"

	"golang.org/x/crypto/sha3"
)

// Sha256Sum returns the SHA-256 digest of data.
func Sha256Sum(data []byte) []byte {
	sum := sha256.Sum256(data)
	return sum[:]
}

// Sha256Hex returns the lowercase hex SHA-256 digest of data.
func Sha256Hex(data []byte) string {
	return hex.EncodeToString(Sha256Sum(data))
}

// Keccak256Sum returns the legacy Keccak256 digest of data.
func Keccak256Sum(data []byte) []byte {
	d := sha3.NewLegacyKeccak256()
	d.Write(data)
	return d.Sum(nil)
}

// Keccak256Hex returns the lowercase hex Keccak256 digest of data.
func Keccak256Hex(data []byte) string {
	return hex.EncodeToString(Keccak256Sum(data))
}

// HashToInt interprets digest as a big-endian unsigned integer.
func HashToInt(digest []byte) *big.Int {
	return new(big.Int).SetBytes(digest)
}
