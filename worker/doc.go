// Package worker runs the demonstration pipeline end to end.
//
// It contains the following main steps (sequentially):
//	mine
//		brute force search for a nonce whose digest has the required prefix,
//		optionally skipped when the solution cache already holds a record.
//	keygen
//		generate a fresh RSA key pair of the configured size.
//	sign
//		sign the mined message with the private key.
//	verify
//		verify the signature with the public key.
// Keys live only in memory for the duration of the run; only mined
// proof-of-work solutions are cached.
package worker
