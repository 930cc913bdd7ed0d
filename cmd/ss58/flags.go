// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	cli "gopkg.in/urfave/cli.v1"

	"github.com/vechain/substrate/log"
	"github.com/vechain/substrate/substrate"
)

var (
	verbosityFlag = cli.Uint64Flag{
		Name:   "verbosity",
		Value:  log.LegacyLevelInfo,
		Usage:  "log verbosity (0-9)",
		EnvVar: "SS58_VERBOSITY",
	}
	jsonLogsFlag = cli.BoolFlag{
		Name:   "json-logs",
		Usage:  "output logs in JSON format, default when stderr is not a terminal",
		EnvVar: "SS58_JSON_LOGS",
	}
	prefixFlag = cli.IntFlag{
		Name:   "prefix",
		Value:  int(substrate.DefaultSS58Prefix),
		Usage:  "SS58 address prefix byte (0-255)",
		EnvVar: "SS58_PREFIX",
	}
	decimalFlag = cli.BoolFlag{
		Name:  "dec",
		Usage: "also print the key as a decimal integer",
	}
	fileFlag = cli.StringFlag{
		Name:   "file",
		Usage:  "path to the YAML job file, - for stdin",
		EnvVar: "SS58_FILE",
	}
	workersFlag = cli.IntFlag{
		Name:   "workers",
		Usage:  "number of parallel workers, 0 for one per CPU",
		EnvVar: "SS58_WORKERS",
	}
	cacheSizeFlag = cli.IntFlag{
		Name:   "cache-size",
		Value:  1024,
		Usage:  "number of storage keys kept in memory",
		EnvVar: "SS58_CACHE_SIZE",
	}
)
