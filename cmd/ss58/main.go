// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// ss58 derives runtime storage keys and converts SS58 account IDs.
package main

import (
	"fmt"
	"io"
	"os"

	cli "gopkg.in/urfave/cli.v1"
)

var (
	version   string
	gitCommit string
	gitTag    string
)

func fullVersion() string {
	versionMeta := "release"
	if gitTag == "" {
		versionMeta = "dev"
	}
	return fmt.Sprintf("%s-%s-%s", version, gitCommit, versionMeta)
}

func newApp(out, errOut io.Writer) *cli.App {
	app := cli.NewApp()
	app.Version = fullVersion()
	app.Name = "ss58"
	app.Usage = "Substrate storage key and SS58 account ID tool"
	app.Copyright = "2026 VeChain Foundation <https://vechain.org/>"
	app.Writer = out
	app.ErrWriter = errOut
	app.Flags = []cli.Flag{
		verbosityFlag,
		jsonLogsFlag,
	}
	app.Before = func(ctx *cli.Context) error {
		initLogger(ctx, errOut)
		return nil
	}
	app.Commands = []cli.Command{
		{
			Name:      "storage-key",
			Usage:     "derive the storage key of a module item",
			ArgsUsage: "<module> <item>",
			Flags:     []cli.Flag{decimalFlag},
			Action:    storageKeyAction,
		},
		{
			Name:      "encode",
			Usage:     "encode a hex account ID as SS58 text",
			ArgsUsage: "<hex>",
			Flags:     []cli.Flag{prefixFlag},
			Action:    encodeAction,
		},
		{
			Name:      "decode",
			Usage:     "decode SS58 text into a hex account ID",
			ArgsUsage: "<ss58>",
			Action:    decodeAction,
		},
		{
			Name:   "batch",
			Usage:  "run the storage key and account conversions listed in a YAML job",
			Flags:  []cli.Flag{fileFlag, workersFlag, cacheSizeFlag},
			Action: batchAction,
		},
	}
	return app
}

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
