package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/chankun4766151-cpu/Web3-Portfolio/cmd/utils"
	"github.com/chankun4766151-cpu/Web3-Portfolio/common"
	"github.com/chankun4766151-cpu/Web3-Portfolio/log"
	"github.com/chankun4766151-cpu/Web3-Portfolio/pow"
	"github.com/chankun4766151-cpu/Web3-Portfolio/tools/crypto"
)

var (
	clientIdentifier = "powminer"
	gitCommit        = ""
	gitDate          = ""
	app              = utils.NewApp(clientIdentifier, gitCommit, gitDate, "the standalone proof of work miner")

	nicknameFlag = &cli.StringFlag{
		Name:     "nickname",
		Aliases:  []string{"n"},
		Usage:    "nickname to prepend to the nonce",
		Required: true,
	}
	prefixFlag = &cli.StringSliceFlag{
		Name:    "prefix",
		Aliases: []string{"p"},
		Usage:   "required hex prefix of the digest, repeat for multiple difficulties",
		Value:   cli.NewStringSlice("0000", "00000"),
	}
	workersFlag = &cli.IntFlag{
		Name:    "workers",
		Aliases: []string{"w"},
		Usage:   "number of mining workers (0 or 1 mines sequentially)",
		Value:   1,
	}
	keccakFlag = &cli.BoolFlag{
		Name:  "keccak",
		Usage: "use legacy Keccak256 instead of SHA-256",
	}
)

func initApp() {
	app.Action = powminer
	app.HideVersion = true
	app.Commands = []*cli.Command{
		utils.VersionCommand,
	}
	app.Flags = append([]cli.Flag{
		nicknameFlag,
		prefixFlag,
		workersFlag,
		keccakFlag,
	}, utils.CommonLogFlags...)
	sort.Sort(cli.CommandsByName(app.Commands))
}

func main() {
	initApp()
	if err := app.Run(os.Args); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func powminer(ctx *cli.Context) error {
	utils.SetLogger(ctx)

	nickname := ctx.String(nicknameFlag.Name)
	prefixes := ctx.StringSlice(prefixFlag.Name)
	for _, prefix := range prefixes {
		// the digest is lowercase hex, anything else would mine forever
		if prefix == "" || !common.IsLowerHex(prefix) {
			return fmt.Errorf("invalid prefix %q, must be non empty lowercase hex", prefix)
		}
	}
	workers := ctx.Int(workersFlag.Name)
	hashHex := pow.HashHexFunc(crypto.Sha256Hex)
	if ctx.Bool(keccakFlag.Name) {
		hashHex = crypto.Keccak256Hex
	}

	mineCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go waitInterrupt(cancel)

	for _, prefix := range prefixes {
		log.Info("start mining", "nickname", nickname, "prefix", prefix, "workers", workers)
		start := time.Now()
		solution, err := pow.MineParallelWithHash(mineCtx, nickname, prefix, workers, hashHex)
		if err != nil {
			return err
		}
		printSolution(prefix, solution, time.Since(start))
	}
	return nil
}

func printSolution(prefix string, solution *pow.Solution, timespent time.Duration) {
	fmt.Println("====================================")
	fmt.Println("target prefix :", prefix)
	fmt.Println("time spent    :", timespent)
	fmt.Println("nonce         :", solution.Nonce)
	fmt.Println("message       :", solution.Message)
	color.Green("digest (hex)  : %s", solution.DigestHex)
	fmt.Println("====================================")
}

func waitInterrupt(cancel context.CancelFunc) {
	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, os.Interrupt, syscall.SIGTERM)
	sig := <-signalCh
	log.Warn("interrupted, stop mining", "signal", sig.String())
	cancel()
}
