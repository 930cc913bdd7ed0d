// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"io"
	"log/slog"
	"math"
	"os"

	"github.com/mattn/go-isatty"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/vechain/substrate/log"
)

var logger = log.WithContext("pkg", "ss58")

func initLogger(ctx *cli.Context, w io.Writer) {
	verbosity := ctx.GlobalUint64(verbosityFlag.Name)
	if verbosity > math.MaxInt32 {
		verbosity = math.MaxInt32
	}

	var level slog.LevelVar
	level.Set(log.FromLegacyLevel(int(verbosity)))

	var handler slog.Handler
	if ctx.GlobalBool(jsonLogsFlag.Name) || !isTerminal(w) {
		handler = log.JSONHandlerWithLevel(w, &level)
	} else {
		handler = log.LogfmtHandlerWithLevel(w, &level)
	}
	log.SetDefault(log.NewLogger(handler))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
