package main

import (
	"github.com/anyswap/ethtransaction/cmd/utils"
	"github.com/urfave/cli/v2"
)

var (
	toFlag = &cli.StringFlag{
		Name:  "to",
		Usage: "(address) recipient in hex, 0x prefix optional (omit for contract creation)",
	}
	nonceFlag = &cli.StringFlag{
		Name:  "nonce",
		Usage: "(decimal) nonce of sender, required",
	}
	valueFlag = &cli.StringFlag{
		Name:        "value",
		Usage:       "(decimal) value to send in wei",
		DefaultText: "0",
	}
	gasFlag = &cli.StringFlag{
		Name:  "gas",
		Usage: "(decimal) gas limit, required",
	}
	gasPriceFlag = &cli.StringFlag{
		Name:  "gasprice",
		Usage: "(decimal) gas price in wei, required",
	}
	binaryFlag = &cli.BoolFlag{
		Name:  "binary",
		Usage: "write binary output instead of hex",
	}

	// checked in this order, the first absent one is reported
	requiredFlags = []*cli.StringFlag{
		nonceFlag,
		gasFlag,
		gasPriceFlag,
	}
)

func txFlags(extra ...cli.Flag) []cli.Flag {
	flags := []cli.Flag{
		toFlag,
		nonceFlag,
		valueFlag,
		gasFlag,
		gasPriceFlag,
	}
	flags = append(flags, extra...)
	return append(flags, utils.LogFlags...)
}
