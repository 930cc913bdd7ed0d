// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/vechain/substrate/substrate"
)

func storageKeyAction(ctx *cli.Context) error {
	if ctx.NArg() != 2 {
		return errors.New("expected exactly two arguments: <module> <item>")
	}
	module, item := ctx.Args().Get(0), ctx.Args().Get(1)

	key := substrate.NewStorageKey(module, item)
	logger.Debug("derived storage key", "module", module, "item", item, "key", key)

	fmt.Fprintln(ctx.App.Writer, key)
	if ctx.Bool(decimalFlag.Name) {
		fmt.Fprintln(ctx.App.Writer, key.Uint256().Dec())
	}
	return nil
}

func encodeAction(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return errors.New("expected exactly one argument: <hex>")
	}
	prefix, err := prefixOf(ctx.Int(prefixFlag.Name))
	if err != nil {
		return err
	}
	id, err := substrate.ParseAccountIDHex(ctx.Args().First())
	if err != nil {
		return errors.Wrap(err, "parse account ID")
	}

	fmt.Fprintln(ctx.App.Writer, id.EncodeWithPrefix(prefix))
	return nil
}

func decodeAction(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return errors.New("expected exactly one argument: <ss58>")
	}
	id, prefix, err := substrate.DecodeAccountID(ctx.Args().First())
	if err != nil {
		return errors.Wrap(err, "decode account ID")
	}
	if prefix != substrate.DefaultSS58Prefix {
		logger.Debug("decoded non-default prefix", "prefix", prefix)
	}

	fmt.Fprintln(ctx.App.Writer, id.Hex())
	fmt.Fprintln(ctx.App.Writer, prefix)
	return nil
}

func prefixOf(v int) (byte, error) {
	if v < 0 || v > math.MaxUint8 {
		return 0, errors.Errorf("prefix out of range: %d", v)
	}
	return byte(v), nil
}
