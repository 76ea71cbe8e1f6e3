package utils

import (
	"os"

	"github.com/anyswap/ethtransaction/log"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"
)

var (
	VerbosityFlag = &cli.Uint64Flag{
		Name:    "verbosity",
		Aliases: []string{"v"},
		Usage:   "log verbosity (0:panic, 1:fatal, 2:error, 3:warn, 4:info, 5:debug, 6:trace)",
		Value:   3,
	}
	JsonFormatFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "output log in json format",
	}
	ColorFormatFlag = &cli.BoolFlag{
		Name:  "color",
		Usage: "output log in color text format",
		Value: stderrIsTerminal(),
	}

	// LogFlags are accepted by every command
	LogFlags = []cli.Flag{
		VerbosityFlag,
		JsonFormatFlag,
		ColorFormatFlag,
	}
)

func stderrIsTerminal() bool {
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// FlagContext returns the nearest context in the lineage where the flag
// was set, so an option given before a subcommand is still seen by it.
// When the flag is set nowhere ctx itself is returned.
func FlagContext(ctx *cli.Context, name string) *cli.Context {
	for _, c := range ctx.Lineage() {
		if c.App != nil && c.IsSet(name) {
			return c
		}
	}
	return ctx
}

func SetLogger(ctx *cli.Context) {
	logLevel := FlagContext(ctx, VerbosityFlag.Name).Uint64(VerbosityFlag.Name)
	jsonFormat := FlagContext(ctx, JsonFormatFlag.Name).Bool(JsonFormatFlag.Name)
	colorFormat := FlagContext(ctx, ColorFormatFlag.Name).Bool(ColorFormatFlag.Name)
	log.SetLogger(uint32(logLevel), jsonFormat, colorFormat)
}
