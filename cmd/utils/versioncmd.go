package utils

import (
	"fmt"
	"runtime"

	"github.com/anyswap/ethtransaction/params"
	"github.com/urfave/cli/v2"
)

var (
	// VersionCommand version subcommand
	VersionCommand = &cli.Command{
		Action:    version,
		Name:      "version",
		Usage:     "Print version numbers",
		ArgsUsage: " ",
		Description: `
The output of this command is supposed to be machine-readable.
`,
	}
)

func version(ctx *cli.Context) error {
	w := ctx.App.Writer
	fmt.Fprintln(w, clientIdentifier)
	fmt.Fprintln(w, "Version:", params.VersionWithMeta)
	if gitCommit != "" {
		fmt.Fprintln(w, "Git Commit:", gitCommit)
	}
	if gitDate != "" {
		fmt.Fprintln(w, "Git Commit Date:", gitDate)
	}
	fmt.Fprintln(w, "Architecture:", runtime.GOARCH)
	fmt.Fprintln(w, "Go Version:", runtime.Version())
	fmt.Fprintln(w, "Operating System:", runtime.GOOS)
	return nil
}
