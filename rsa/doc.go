// Package rsa implements a from-scratch textbook RSA engine over math/big.
//
// It contains the following parts:
//	primality
//		probabilistic Miller-Rabin test with injectable randomness.
//	prime generation
//		sample random odd integers of exact bit length until one passes.
//	key generation
//		combine two primes into a (e,n)/(d,n) key pair with e = 65537.
//	sign/verify
//		raw modular exponentiation over the SHA-256 digest of the message.
//
// The signing scheme is deliberately unpadded (no PKCS#1 encoding). It
// reproduces the classic teaching construction and must not be used to
// protect anything of value.
package rsa
