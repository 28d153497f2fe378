package pow

import (
	"context"
	"sync/atomic"

	"github.com/chankun4766151-cpu/Web3-Portfolio/tools/crypto"
)

// mineBlockSize is the number of nonces a worker claims at a time.
const mineBlockSize = 4096

type blockResult struct {
	index    uint64
	solution *Solution // nil when the block holds no match
}

// MineParallel shards the nonce space into fixed size blocks claimed by
// workers in order. The observable result is identical to Mine: the match
// with the smallest nonce wins, even when a higher block finds its match
// first. workers <= 1 falls back to the sequential search.
func MineParallel(ctx context.Context, nickname, prefix string, workers int) (*Solution, error) {
	return MineParallelWithHash(ctx, nickname, prefix, workers, crypto.Sha256Hex)
}

// MineParallelWithHash is MineParallel with a caller supplied digest function.
func MineParallelWithHash(ctx context.Context, nickname, prefix string, workers int, hashHex HashHexFunc) (*Solution, error) {
	if workers <= 1 {
		return MineWithHash(ctx, nickname, prefix, hashHex)
	}

	mctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var nextBlock uint64
	results := make(chan blockResult, workers)
	for i := 0; i < workers; i++ {
		go func() {
			for {
				index := atomic.AddUint64(&nextBlock, 1) - 1
				solution, canceled := scanBlock(mctx, nickname, prefix, hashHex, index)
				if canceled {
					return
				}
				select {
				case results <- blockResult{index: index, solution: solution}:
				case <-mctx.Done():
					return
				}
			}
		}()
	}

	// release the smallest match only after every lower block completed
	completed := make(map[uint64]bool)
	matches := make(map[uint64]*Solution)
	frontier := uint64(0)
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case res := <-results:
			completed[res.index] = true
			if res.solution != nil {
				matches[res.index] = res.solution
			}
			for completed[frontier] {
				if solution, ok := matches[frontier]; ok {
					return solution, nil
				}
				delete(completed, frontier)
				frontier++
			}
		}
	}
}

// scanBlock searches one block and returns its smallest match, if any.
func scanBlock(ctx context.Context, nickname, prefix string, hashHex HashHexFunc, index uint64) (solution *Solution, canceled bool) {
	start := index * mineBlockSize
	for nonce := start; nonce < start+mineBlockSize; nonce++ {
		select {
		case <-ctx.Done():
			return nil, true
		default:
		}
		if sol := tryNonce(nickname, prefix, hashHex, nonce); sol != nil {
			return sol, false
		}
	}
	return nil, false
}
