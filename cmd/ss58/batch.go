// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"encoding/json"
	"io"
	"os"

	"github.com/pkg/errors"
	cli "gopkg.in/urfave/cli.v1"
	"gopkg.in/yaml.v3"

	"github.com/vechain/substrate/cache"
	"github.com/vechain/substrate/co"
	"github.com/vechain/substrate/substrate"
)

// ModuleItem names a runtime storage item.
type ModuleItem struct {
	Module string `yaml:"module"`
	Item   string `yaml:"item"`
}

// Job lists the conversions run by the batch command.
type Job struct {
	Prefix      *uint8       `yaml:"prefix"`
	StorageKeys []ModuleItem `yaml:"storage_keys"`
	Encode      []string     `yaml:"encode"`
	Decode      []string     `yaml:"decode"`
}

type storageKeyResult struct {
	Module string               `json:"module"`
	Item   string               `json:"item"`
	Key    substrate.StorageKey `json:"key"`
}

type accountResult struct {
	Input   string `json:"input"`
	Account string `json:"account,omitempty"`
	Hex     string `json:"hex,omitempty"`
	Prefix  *uint8 `json:"prefix,omitempty"`
	Error   string `json:"error,omitempty"`
}

type jobResult struct {
	StorageKeys []storageKeyResult `json:"storage_keys"`
	Encode      []accountResult    `json:"encode"`
	Decode      []accountResult    `json:"decode"`
}

func (r *jobResult) failed() (n int) {
	for _, res := range r.Encode {
		if res.Error != "" {
			n++
		}
	}
	for _, res := range r.Decode {
		if res.Error != "" {
			n++
		}
	}
	return
}

func loadJob(path string) (*Job, error) {
	var r io.Reader
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrap(err, "open job file")
		}
		defer f.Close()
		r = f
	}
	return decodeJob(r)
}

func decodeJob(r io.Reader) (*Job, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var job Job
	if err := dec.Decode(&job); err != nil {
		if err == io.EOF {
			return &job, nil
		}
		return nil, errors.Wrap(err, "decode job")
	}
	return &job, nil
}

func runJob(job *Job, workers int, keys *cache.StorageKeys) *jobResult {
	prefix := substrate.DefaultSS58Prefix
	if job.Prefix != nil {
		prefix = *job.Prefix
	}

	res := &jobResult{
		StorageKeys: make([]storageKeyResult, len(job.StorageKeys)),
		Encode:      make([]accountResult, len(job.Encode)),
		Decode:      make([]accountResult, len(job.Decode)),
	}

	nKeys, nEnc := len(job.StorageKeys), len(job.Encode)
	total := nKeys + nEnc + len(job.Decode)

	co.ForEach(workers, total, func(i int) {
		switch {
		case i < nKeys:
			mi := job.StorageKeys[i]
			res.StorageKeys[i] = storageKeyResult{
				Module: mi.Module,
				Item:   mi.Item,
				Key:    keys.Get(mi.Module, mi.Item),
			}
		case i < nKeys+nEnc:
			i -= nKeys
			res.Encode[i] = encodeEntry(job.Encode[i], prefix)
		default:
			i -= nKeys + nEnc
			res.Decode[i] = decodeEntry(job.Decode[i])
		}
	})
	return res
}

func encodeEntry(input string, prefix byte) accountResult {
	res := accountResult{Input: input}
	id, err := substrate.ParseAccountIDHex(input)
	if err != nil {
		logger.Warn("failed to encode account ID", "input", input, "err", err)
		res.Error = err.Error()
		return res
	}
	res.Account = id.EncodeWithPrefix(prefix)
	res.Hex = id.Hex()
	res.Prefix = &prefix
	return res
}

func decodeEntry(input string) accountResult {
	res := accountResult{Input: input}
	id, prefix, err := substrate.DecodeAccountID(input)
	if err != nil {
		logger.Warn("failed to decode account ID", "input", input, "err", err)
		res.Error = err.Error()
		return res
	}
	res.Account = id.String()
	res.Hex = id.Hex()
	res.Prefix = &prefix
	return res
}

func batchAction(ctx *cli.Context) error {
	path := ctx.String(fileFlag.Name)
	if path == "" {
		return errors.New("missing --" + fileFlag.Name)
	}
	workers := ctx.Int(workersFlag.Name)
	if workers < 0 {
		return errors.Errorf("invalid --%s: %d", workersFlag.Name, workers)
	}

	keys, err := cache.NewStorageKeys(ctx.Int(cacheSizeFlag.Name))
	if err != nil {
		return errors.Wrap(err, "create storage key cache")
	}
	job, err := loadJob(path)
	if err != nil {
		return err
	}

	res := runJob(job, workers, keys)
	_, hit, miss := keys.Stats()
	logger.Info("batch done",
		"storageKeys", len(res.StorageKeys),
		"encode", len(res.Encode),
		"decode", len(res.Decode),
		"cacheHit", hit,
		"cacheMiss", miss,
	)

	enc := json.NewEncoder(ctx.App.Writer)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		return errors.Wrap(err, "write result")
	}

	if n := res.failed(); n > 0 {
		return errors.Errorf("%d of %d account entries failed", n, len(res.Encode)+len(res.Decode))
	}
	return nil
}
