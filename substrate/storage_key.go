// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package substrate

import (
	"encoding"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"errors"
	"math/big"
	"strings"

	"github.com/holiman/uint256"
)

// StorageKeyLength length of storage key in bytes.
const StorageKeyLength = 16

var storageKeySeparator = []byte{' '}

// StorageKey is the 128-bit runtime storage key of a module item,
// held in big-endian byte order.
type StorageKey [StorageKeyLength]byte

var (
	_ json.Marshaler           = (*StorageKey)(nil)
	_ json.Unmarshaler         = (*StorageKey)(nil)
	_ encoding.TextMarshaler   = StorageKey{}
	_ encoding.TextUnmarshaler = (*StorageKey)(nil)
)

// NewStorageKey derives the storage key of the given module item.
//
// The key hashes "<module> <item>" with xxHash64 seeded 0 and 1, each written
// little-endian, the seed 0 half first. Names are not checked for the
// separator, so ("A", "B C") and ("A B", "C") map to the same key.
func NewStorageKey(module, item string) StorageKey {
	m, i := []byte(module), []byte(item)

	var k StorageKey
	binary.LittleEndian.PutUint64(k[:8], Hash64(0, m, storageKeySeparator, i))
	binary.LittleEndian.PutUint64(k[8:], Hash64(1, m, storageKeySeparator, i))
	return k
}

// String implements stringer
func (k StorageKey) String() string {
	return "0x" + hex.EncodeToString(k[:])
}

// Bytes returns byte slice form of StorageKey.
func (k StorageKey) Bytes() []byte {
	return k[:]
}

// Hi returns the upper 64 bits of the key.
func (k StorageKey) Hi() uint64 {
	return binary.BigEndian.Uint64(k[:8])
}

// Lo returns the lower 64 bits of the key.
func (k StorageKey) Lo() uint64 {
	return binary.BigEndian.Uint64(k[8:])
}

// Uint256 returns the key as an unsigned integer.
func (k StorageKey) Uint256() *uint256.Int {
	return new(uint256.Int).SetBytes(k[:])
}

// Big returns the key as a big integer.
func (k StorageKey) Big() *big.Int {
	return new(big.Int).SetBytes(k[:])
}

// MarshalText implements encoding.TextMarshaler.
func (k StorageKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *StorageKey) UnmarshalText(text []byte) error {
	parsed, err := ParseStorageKey(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// MarshalJSON implements json.Marshaler.
func (k *StorageKey) MarshalJSON() ([]byte, error) {
	if k == nil {
		return json.Marshal(nil)
	}
	return json.Marshal(k.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (k *StorageKey) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseStorageKey(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// ParseStorageKey convert string presented into StorageKey type.
// The leading "0x" is optional.
func ParseStorageKey(s string) (StorageKey, error) {
	if len(s) == StorageKeyLength*2 {
	} else if len(s) == StorageKeyLength*2+2 {
		if strings.ToLower(s[:2]) != "0x" {
			return StorageKey{}, errors.New("invalid prefix")
		}
		s = s[2:]
	} else {
		return StorageKey{}, errors.New("invalid length")
	}

	var k StorageKey
	if _, err := hex.Decode(k[:], []byte(s)); err != nil {
		return StorageKey{}, err
	}
	return k, nil
}

// MustParseStorageKey convert string presented into StorageKey type, panic on error.
func MustParseStorageKey(s string) StorageKey {
	k, err := ParseStorageKey(s)
	if err != nil {
		panic(err)
	}
	return k
}
