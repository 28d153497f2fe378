package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/chankun4766151-cpu/Web3-Portfolio/cmd/utils"
	"github.com/chankun4766151-cpu/Web3-Portfolio/common"
	"github.com/chankun4766151-cpu/Web3-Portfolio/log"
	"github.com/chankun4766151-cpu/Web3-Portfolio/rsa"
)

var (
	clientIdentifier = "rsatool"
	gitCommit        = ""
	gitDate          = ""
	app              = utils.NewApp(clientIdentifier, gitCommit, gitDate, "textbook RSA key generation, signing and verification")

	bitsFlag = &cli.IntFlag{
		Name:  "bits",
		Usage: "modulus bit length of the generated key pair",
		Value: 1024,
	}
	messageFlag = &cli.StringFlag{
		Name:     "message",
		Aliases:  []string{"m"},
		Usage:    "message to sign or verify",
		Required: true,
	}
	privExponentFlag = &cli.StringFlag{
		Name:     "d",
		Usage:    "private exponent d (decimal or 0x hex)",
		Required: true,
	}
	pubExponentFlag = &cli.StringFlag{
		Name:  "e",
		Usage: "public exponent e (decimal or 0x hex)",
		Value: "65537",
	}
	modulusFlag = &cli.StringFlag{
		Name:     "n",
		Usage:    "modulus n (decimal or 0x hex)",
		Required: true,
	}
	signatureFlag = &cli.StringFlag{
		Name:     "signature",
		Aliases:  []string{"s"},
		Usage:    "signature as decimal or 0x hex integer",
		Required: true,
	}

	keygenCommand = &cli.Command{
		Action:    keygen,
		Name:      "keygen",
		Usage:     "generate a fresh RSA key pair and print it",
		ArgsUsage: " ",
		Flags:     []cli.Flag{bitsFlag},
	}
	signCommand = &cli.Command{
		Action:    sign,
		Name:      "sign",
		Usage:     "sign the SHA-256 digest of a message",
		ArgsUsage: " ",
		Flags:     []cli.Flag{messageFlag, privExponentFlag, modulusFlag},
	}
	verifyCommand = &cli.Command{
		Action:    verify,
		Name:      "verify",
		Usage:     "verify a signature against a message",
		ArgsUsage: " ",
		Flags:     []cli.Flag{messageFlag, signatureFlag, pubExponentFlag, modulusFlag},
	}
	demoCommand = &cli.Command{
		Action:    demo,
		Name:      "demo",
		Usage:     "generate a key pair, sign a message and verify it in one go",
		ArgsUsage: " ",
		Flags:     []cli.Flag{messageFlag, bitsFlag},
	}
)

func initApp() {
	app.HideVersion = true
	app.Commands = []*cli.Command{
		keygenCommand,
		signCommand,
		verifyCommand,
		demoCommand,
		utils.VersionCommand,
	}
	app.Flags = utils.CommonLogFlags
	sort.Sort(cli.CommandsByName(app.Commands))
}

func main() {
	initApp()
	if err := app.Run(os.Args); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func keygen(ctx *cli.Context) error {
	utils.SetLogger(ctx)
	pub, priv, err := rsa.GenerateKeyPair(rsa.DefaultRand, ctx.Int(bitsFlag.Name))
	if err != nil {
		return err
	}
	fmt.Println("e =", pub.E)
	fmt.Println("n =", pub.N)
	fmt.Println("d =", priv.D)
	fmt.Println("modulus bits:", pub.N.BitLen())
	return nil
}

func sign(ctx *cli.Context) error {
	utils.SetLogger(ctx)
	d, err := common.GetBigIntFromStr(ctx.String(privExponentFlag.Name))
	if err != nil {
		return err
	}
	n, err := common.GetBigIntFromStr(ctx.String(modulusFlag.Name))
	if err != nil {
		return err
	}
	signature, err := rsa.Sign(&rsa.PrivateKey{D: d, N: n}, ctx.String(messageFlag.Name))
	if err != nil {
		return err
	}
	fmt.Println("signature =", signature)
	return nil
}

func verify(ctx *cli.Context) error {
	utils.SetLogger(ctx)
	e, err := common.GetBigIntFromStr(ctx.String(pubExponentFlag.Name))
	if err != nil {
		return err
	}
	n, err := common.GetBigIntFromStr(ctx.String(modulusFlag.Name))
	if err != nil {
		return err
	}
	signature, err := common.GetBigIntFromStr(ctx.String(signatureFlag.Name))
	if err != nil {
		return err
	}
	valid, err := rsa.Verify(&rsa.PublicKey{E: e, N: n}, ctx.String(messageFlag.Name), signature)
	if err != nil {
		return err
	}
	printVerifyResult(valid)
	return nil
}

func demo(ctx *cli.Context) error {
	utils.SetLogger(ctx)
	message := ctx.String(messageFlag.Name)

	pub, priv, err := rsa.GenerateKeyPair(rsa.DefaultRand, ctx.Int(bitsFlag.Name))
	if err != nil {
		return err
	}
	fmt.Println("modulus bits :", pub.N.BitLen())

	signature, err := rsa.Sign(priv, message)
	if err != nil {
		return err
	}
	fmt.Println("message      :", message)
	fmt.Println("signature    :", signature)

	valid, err := rsa.Verify(pub, message, signature)
	if err != nil {
		return err
	}
	printVerifyResult(valid)
	return nil
}

func printVerifyResult(valid bool) {
	if valid {
		color.Green("verify result: pass")
	} else {
		color.Red("verify result: fail")
	}
}
