package main

import (
	"fmt"
	"io"
	"os"

	"github.com/anyswap/ethtransaction/cmd/utils"
	"github.com/urfave/cli/v2"
)

var (
	clientIdentifier = "ethtransaction"
	// Git SHA1 commit hash of the release (set via linker flags)
	gitCommit = ""
	gitDate   = ""
)

func newApp(stdout io.Writer) *cli.App {
	app := utils.NewApp(clientIdentifier, gitCommit, gitDate, "generate an unsigned Ethereum transaction")
	app.Writer = stdout
	app.ErrWriter = stdout
	app.HideVersion = true
	app.HideHelpCommand = true
	app.ArgsUsage = "<calldata>"
	app.Description = `
Encode an unsigned transaction as RLP, ready for external signing.

Integers (--nonce, --value, --gas, --gasprice) are decimal. The recipient
address and the calldata are hex, the 0x prefix is optional. Pass "" as
calldata for an empty payload. Options go before the calldata, either
before or after the hex/bin command.

Without a command the flag based form is used: hex output, or raw bytes
with --binary.
`
	app.Action = encodeLegacy
	app.Flags = txFlags(binaryFlag)
	app.Commands = []*cli.Command{
		hexCommand,
		binCommand,
		utils.VersionCommand,
	}
	return app
}

// run executes the command line and returns the process exit code.
func run(args []string, stdout io.Writer) int {
	if err := newApp(stdout).Run(args); err != nil {
		fmt.Fprintln(stdout, err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args, os.Stdout))
}
