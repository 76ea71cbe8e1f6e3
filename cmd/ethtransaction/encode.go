package main

import (
	"fmt"

	"github.com/anyswap/ethtransaction/cmd/utils"
	"github.com/anyswap/ethtransaction/common"
	"github.com/anyswap/ethtransaction/log"
	"github.com/anyswap/ethtransaction/types"
	"github.com/urfave/cli/v2"
)

var (
	hexCommand = &cli.Command{
		Action:    encodeHex,
		Name:      "hex",
		Usage:     "write the unsigned transaction as hex",
		ArgsUsage: "<calldata>",
		Description: `
write the RLP encoded unsigned transaction as a lower case hex line.

Example:

./ethtransaction hex --nonce 0 --gasprice 1 --gas 21000 --to 0x1111111111111111111111111111111111111111 --value 1000000000000000000 ""
`,
		Flags: txFlags(),
	}

	binCommand = &cli.Command{
		Action:    encodeBin,
		Name:      "bin",
		Usage:     "write the unsigned transaction as raw bytes",
		ArgsUsage: "<calldata>",
		Description: `
write the RLP encoded unsigned transaction as raw bytes without trailing newline.

Example:

./ethtransaction bin --nonce 0 --gasprice 1 --gas 1000000 6080604052 > tx.bin
`,
		Flags: txFlags(),
	}
)

func initArgs(ctx *cli.Context) (*types.BuildTxArgs, error) {
	if ctx.NArg() != 1 {
		return nil, fmt.Errorf("%w: expected exactly one <calldata> argument, got %d", errUsage, ctx.NArg())
	}
	for _, flag := range requiredFlags {
		if !isSet(ctx, flag.Name) {
			return nil, &missingOptionError{option: flag.Name}
		}
	}

	args := &types.BuildTxArgs{
		Nonce:    stringFlag(ctx, nonceFlag.Name),
		Gas:      stringFlag(ctx, gasFlag.Name),
		GasPrice: stringFlag(ctx, gasPriceFlag.Name),
		Input:    ctx.Args().First(),
	}
	if isSet(ctx, toFlag.Name) {
		to := stringFlag(ctx, toFlag.Name)
		args.To = &to
	}
	if isSet(ctx, valueFlag.Name) {
		value := stringFlag(ctx, valueFlag.Name)
		args.Value = &value
	}

	log.Debug("initArgs finished", "to", stringFlag(ctx, toFlag.Name), "nonce", args.Nonce,
		"gas", args.Gas, "gasPrice", args.GasPrice, "value", stringFlag(ctx, valueFlag.Name), "input", args.Input)
	return args, nil
}

func encodeTx(ctx *cli.Context, showUsage func()) ([]byte, error) {
	utils.SetLogger(ctx)
	args, err := initArgs(ctx)
	if err != nil {
		if showUsage != nil && isUsageError(err) {
			showUsage()
		}
		return nil, err
	}

	tx, err := types.BuildTransaction(args)
	if err != nil {
		log.Debug("build transaction failed", "err", err)
		return nil, err
	}
	if to := tx.To(); to != nil && *to == (common.Address{}) {
		log.Warn("recipient is the zero address, omit --to for contract creation")
	}
	raw := tx.UnsignedBytes()
	log.Debug("build transaction success", "action", tx.Action(), "size", len(raw))
	log.Trace("unsigned transaction", "tx", tx.Pretty())
	return raw, nil
}

func encodeHex(ctx *cli.Context) error {
	raw, err := encodeTx(ctx, func() { _ = cli.ShowSubcommandHelp(ctx) })
	if err != nil {
		return err
	}
	return writeHex(ctx, raw)
}

func encodeBin(ctx *cli.Context) error {
	raw, err := encodeTx(ctx, func() { _ = cli.ShowSubcommandHelp(ctx) })
	if err != nil {
		return err
	}
	return writeBin(ctx, raw)
}

// encodeLegacy serves the flag based form, `[options] [--binary] <calldata>`.
func encodeLegacy(ctx *cli.Context) error {
	raw, err := encodeTx(ctx, func() { _ = cli.ShowAppHelp(ctx) })
	if err != nil {
		return err
	}
	if ctx.Bool(binaryFlag.Name) {
		return writeBin(ctx, raw)
	}
	return writeHex(ctx, raw)
}

func isSet(ctx *cli.Context, name string) bool {
	return utils.FlagContext(ctx, name).IsSet(name)
}

func stringFlag(ctx *cli.Context, name string) string {
	return utils.FlagContext(ctx, name).String(name)
}

func writeHex(ctx *cli.Context, raw []byte) error {
	_, err := fmt.Fprintln(ctx.App.Writer, common.ToHex(raw))
	return err
}

func writeBin(ctx *cli.Context, raw []byte) error {
	_, err := ctx.App.Writer.Write(raw)
	return err
}
