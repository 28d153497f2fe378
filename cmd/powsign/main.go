package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/chankun4766151-cpu/Web3-Portfolio/cmd/utils"
	"github.com/chankun4766151-cpu/Web3-Portfolio/log"
	"github.com/chankun4766151-cpu/Web3-Portfolio/params"
	"github.com/chankun4766151-cpu/Web3-Portfolio/worker"
)

var (
	clientIdentifier = "powsign"
	// Git SHA1 commit hash of the release (set via linker flags)
	gitCommit = ""
	gitDate   = ""
	// The app that holds all commands and flags.
	app = utils.NewApp(clientIdentifier, gitCommit, gitDate, "the powsign command line interface")
)

func initApp() {
	// Initialize the CLI app and start action
	app.Action = powsign
	app.HideVersion = true // we have a command to print the version
	app.Commands = []*cli.Command{
		utils.VersionCommand,
	}
	app.Flags = append([]cli.Flag{
		utils.ConfigFileFlag,
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

func powsign(ctx *cli.Context) error {
	utils.SetLogger(ctx)
	if ctx.NArg() > 0 {
		return fmt.Errorf("invalid command: %q", ctx.Args().Get(0))
	}
	configFile := utils.GetConfigFilePath(ctx)
	params.LoadConfig(configFile)

	stopCh := make(chan struct{})
	params.WatchConfig(configFile, stopCh)
	defer close(stopCh)

	workCtx, cancel := context.WithCancel(context.Background())
	go waitInterrupt(cancel)

	worker.StartWork(workCtx)
	return nil
}

func waitInterrupt(cancel context.CancelFunc) {
	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, os.Interrupt, syscall.SIGTERM)
	sig := <-signalCh
	log.Warn("interrupted, stop mining", "signal", sig.String())
	cancel()
}
