// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vechain/substrate/cache"
	"github.com/vechain/substrate/substrate"
)

func writeJob(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "job.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDecodeJob(t *testing.T) {
	job, err := decodeJob(strings.NewReader(`
prefix: 0
storage_keys:
  - module: Sudo
    item: Key
encode:
  - ` + aliceHex + `
decode:
  - ` + aliceSS58 + `
`))
	require.NoError(t, err)
	require.NotNil(t, job.Prefix)
	assert.Equal(t, uint8(0), *job.Prefix)
	assert.Equal(t, []ModuleItem{{"Sudo", "Key"}}, job.StorageKeys)
	assert.Equal(t, []string{aliceHex}, job.Encode)
	assert.Equal(t, []string{aliceSS58}, job.Decode)

	job, err = decodeJob(strings.NewReader(""))
	require.NoError(t, err)
	assert.Nil(t, job.Prefix)

	_, err = decodeJob(strings.NewReader("storage_key: []"))
	assert.Error(t, err, "unknown field")

	_, err = decodeJob(strings.NewReader("prefix: 300"))
	assert.Error(t, err, "prefix overflows a byte")
}

func TestRunJob(t *testing.T) {
	keys, err := cache.NewStorageKeys(8)
	require.NoError(t, err)

	job := &Job{
		StorageKeys: []ModuleItem{
			{"Sudo", "Key"},
			{"System", "Account"},
			{"Sudo", "Key"},
		},
		Encode: []string{aliceHex, "0x00"},
		Decode: []string{aliceSS58, "15oF4uVJwmo4TdGW7VfQxNLavjCXviqxT9S1MgbjMNHr6Sp5", "bad!"},
	}
	res := runJob(job, 4, keys)
	dump := spew.Sdump(res)

	require.Len(t, res.StorageKeys, 3, dump)
	assert.Equal(t, substrate.MustParseStorageKey("0x50a63a871aced22e88ee6466fe5aa5d9"), res.StorageKeys[0].Key, dump)
	assert.Equal(t, substrate.NewStorageKey("System", "Account"), res.StorageKeys[1].Key, dump)
	assert.Equal(t, res.StorageKeys[0].Key, res.StorageKeys[2].Key, dump)
	assert.Equal(t, 2, keys.Len())

	require.Len(t, res.Encode, 2, dump)
	assert.Equal(t, aliceSS58, res.Encode[0].Account, dump)
	assert.Empty(t, res.Encode[0].Error, dump)
	assert.Empty(t, res.Encode[1].Account, dump)
	assert.NotEmpty(t, res.Encode[1].Error, dump)

	require.Len(t, res.Decode, 3, dump)
	assert.Equal(t, aliceHex, res.Decode[0].Hex, dump)
	assert.Equal(t, uint8(42), *res.Decode[0].Prefix, dump)
	assert.Equal(t, aliceHex, res.Decode[1].Hex, dump)
	assert.Equal(t, uint8(0), *res.Decode[1].Prefix, dump)
	assert.Equal(t, aliceSS58, res.Decode[1].Account, dump)
	assert.Nil(t, res.Decode[2].Prefix, dump)
	assert.True(t, strings.HasPrefix(res.Decode[2].Error, "Invalid account ID ("), dump)

	assert.Equal(t, 2, res.failed())
}

func TestRunJobPrefix(t *testing.T) {
	keys, err := cache.NewStorageKeys(8)
	require.NoError(t, err)

	prefix := uint8(2)
	res := runJob(&Job{Prefix: &prefix, Encode: []string{aliceHex}}, 0, keys)
	require.Len(t, res.Encode, 1)
	assert.Equal(t, "HNZata7iMYWmk5RvZRTiAsSDhV8366zq2YGb3tLH5Upf74F", res.Encode[0].Account, spew.Sdump(res))
	assert.Equal(t, uint8(2), *res.Encode[0].Prefix)
}

func TestBatchCommand(t *testing.T) {
	path := writeJob(t, `
storage_keys:
  - module: Sudo
    item: Key
encode:
  - `+aliceHex+`
decode:
  - `+aliceSS58+`
`)

	out, logs, err := runApp(t, "batch", "--file", path, "--workers", "2")
	require.NoError(t, err, logs)

	var res jobResult
	require.NoError(t, json.Unmarshal([]byte(out), &res), out)
	assert.Equal(t, []storageKeyResult{{
		Module: "Sudo",
		Item:   "Key",
		Key:    substrate.MustParseStorageKey("0x50a63a871aced22e88ee6466fe5aa5d9"),
	}}, res.StorageKeys)
	require.Len(t, res.Encode, 1)
	assert.Equal(t, aliceSS58, res.Encode[0].Account)
	require.Len(t, res.Decode, 1)
	assert.Equal(t, aliceHex, res.Decode[0].Hex)

	assert.Contains(t, out, `"key": "0x50a63a871aced22e88ee6466fe5aa5d9"`)
	assert.Contains(t, logs, `"msg":"batch done"`)
}

func TestBatchCommandFailures(t *testing.T) {
	path := writeJob(t, "decode:\n  - "+aliceSS58+"\n  - 5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQZ\n")

	out, logs, err := runApp(t, "batch", "--file", path)
	require.Error(t, err)
	assert.Equal(t, "1 of 2 account entries failed", err.Error())
	assert.Contains(t, out, "Invalid hash in account ID")
	assert.Contains(t, logs, "failed to decode account ID")

	_, _, err = runApp(t, "batch")
	assert.Error(t, err, "missing file")

	_, _, err = runApp(t, "batch", "--file", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, _, err = runApp(t, "batch", "--file", path, "--cache-size", "0")
	assert.Error(t, err)

	_, _, err = runApp(t, "batch", "--file", path, "--workers", "-1")
	assert.Error(t, err)
}
