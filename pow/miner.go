// Package pow implements the brute force proof-of-work search: find the
// smallest nonce so that hash(nickname + nonce) starts with a required hex
// prefix.
package pow

import (
	"context"
	"strconv"
	"strings"

	"github.com/chankun4766151-cpu/Web3-Portfolio/tools/crypto"
)

// HashHexFunc maps a message to its lowercase hex digest.
type HashHexFunc func(data []byte) string

// Solution is a found proof of work.
type Solution struct {
	Nonce     uint64 `json:"nonce"`
	Message   string `json:"message"`
	DigestHex string `json:"digestHex"`
}

// Mine searches nonces 0,1,2,... and returns the first solution whose
// SHA-256 hex digest starts with prefix. The search is unbounded, ctx is
// the only way to abort it.
func Mine(ctx context.Context, nickname, prefix string) (*Solution, error) {
	return MineWithHash(ctx, nickname, prefix, crypto.Sha256Hex)
}

// MineWithHash is Mine with a caller supplied digest function.
func MineWithHash(ctx context.Context, nickname, prefix string, hashHex HashHexFunc) (*Solution, error) {
	for nonce := uint64(0); ; nonce++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		if sol := tryNonce(nickname, prefix, hashHex, nonce); sol != nil {
			return sol, nil
		}
	}
}

func tryNonce(nickname, prefix string, hashHex HashHexFunc, nonce uint64) *Solution {
	message := nickname + strconv.FormatUint(nonce, 10)
	digest := hashHex([]byte(message))
	if !strings.HasPrefix(digest, prefix) {
		return nil
	}
	return &Solution{Nonce: nonce, Message: message, DigestHex: digest}
}
