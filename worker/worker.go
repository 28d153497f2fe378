package worker

import (
	"context"
	"math/big"
	"time"

	"github.com/pborman/uuid"

	"github.com/chankun4766151-cpu/Web3-Portfolio/log"
	"github.com/chankun4766151-cpu/Web3-Portfolio/params"
	"github.com/chankun4766151-cpu/Web3-Portfolio/pow"
	"github.com/chankun4766151-cpu/Web3-Portfolio/rsa"
	"github.com/chankun4766151-cpu/Web3-Portfolio/tools/crypto"
)

// StartWork run the whole pipeline:
// mine -> generate key pair -> sign mined message -> verify signature.
func StartWork(ctx context.Context) {
	runID := uuid.NewRandom().String()
	logWorker("pipeline", "start work", "runID", runID, "identifier", params.GetIdentifier())

	OpenSolutionDatabase()
	defer CloseSolutionDatabase()

	solution := doMineJob(ctx, runID)
	pub, priv := doKeygenJob(runID)
	signature := doSignJob(runID, priv, solution.Message)
	doVerifyJob(runID, pub, solution.Message, signature)

	logWorker("pipeline", "work finished", "runID", runID,
		"nonce", solution.Nonce, "digest", solution.DigestHex,
		"modulusBits", pub.N.BitLen())
}

func doMineJob(ctx context.Context, runID string) *pow.Solution {
	minerCfg := params.GetMinerConfig()
	if cached := GetSolutionRecord(minerCfg.Nickname, minerCfg.Prefix, minerCfg.Algorithm); cached != nil {
		logWorker("mine", "use cached solution", "runID", runID,
			"nonce", cached.Nonce, "digest", cached.DigestHex)
		return cached
	}

	logWorker("mine", "start mining", "runID", runID,
		"nickname", minerCfg.Nickname, "prefix", minerCfg.Prefix,
		"workers", minerCfg.Workers, "algorithm", minerCfg.Algorithm)
	start := time.Now()
	solution, err := pow.MineParallelWithHash(ctx, minerCfg.Nickname, minerCfg.Prefix,
		minerCfg.Workers, hashHexFunc(minerCfg.Algorithm))
	if err != nil {
		logWorkerFatal("mine", "mining aborted", err, "runID", runID)
	}
	logWorker("mine", "found solution", "runID", runID,
		"nonce", solution.Nonce, "message", solution.Message,
		"digest", solution.DigestHex, "timespent", time.Since(start).String())

	_ = AddSolutionRecord(minerCfg.Nickname, minerCfg.Prefix, minerCfg.Algorithm, solution)
	return solution
}

func doKeygenJob(runID string) (*rsa.PublicKey, *rsa.PrivateKey) {
	rsaCfg := params.GetRSAConfig()
	rsa.PrimalityRounds = rsaCfg.Rounds

	logWorker("keygen", "start generating key pair", "runID", runID, "keyBits", rsaCfg.KeyBits)
	start := time.Now()
	pub, priv, err := rsa.GenerateKeyPair(rsa.DefaultRand, rsaCfg.KeyBits)
	if err != nil {
		logWorkerFatal("keygen", "generate key pair failed", err, "runID", runID)
	}
	logWorker("keygen", "key pair generated", "runID", runID,
		"modulusBits", pub.N.BitLen(), "privateExponentBits", priv.D.BitLen(),
		"timespent", time.Since(start).String())
	return pub, priv
}

func doSignJob(runID string, priv *rsa.PrivateKey, message string) *big.Int {
	signature, err := rsa.Sign(priv, message)
	if err != nil {
		logWorkerFatal("sign", "sign message failed", err, "runID", runID, "message", message)
	}
	logWorker("sign", "message signed", "runID", runID,
		"message", message, "signatureBits", signature.BitLen())
	return signature
}

func doVerifyJob(runID string, pub *rsa.PublicKey, message string, signature *big.Int) {
	valid, err := rsa.Verify(pub, message, signature)
	if err != nil {
		logWorkerFatal("verify", "verify signature failed", err, "runID", runID, "message", message)
	}
	if !valid {
		log.Fatal("[verify] signature does not verify", "runID", runID, "message", message)
	}
	logWorker("verify", "signature verified", "runID", runID, "message", message)
}

func hashHexFunc(algorithm string) pow.HashHexFunc {
	if algorithm == params.Keccak256Algorithm {
		return crypto.Keccak256Hex
	}
	return crypto.Sha256Hex
}
