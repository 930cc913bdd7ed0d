// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package substrate

import (
	"hash"
	"io"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/ethereum/go-ethereum/crypto/blake2b"
)

// Blake2b512Length length of blake2b-512 digest in bytes.
const Blake2b512Length = blake2b.Size

// Hash64 computes the seeded xxHash64 of the concatenation of data.
func Hash64(seed uint64, data ...[]byte) uint64 {
	d := xxhashPool.Get().(*xxhash.Digest)
	d.ResetWithSeed(seed)
	for _, b := range data {
		d.Write(b)
	}
	sum := d.Sum64()
	xxhashPool.Put(d)
	return sum
}

var xxhashPool = sync.Pool{
	New: func() any {
		return xxhash.New()
	},
}

// NewBlake2b512 return blake2b-512 hash.
func NewBlake2b512() hash.Hash {
	hash, _ := blake2b.New512(nil)
	return hash
}

// Blake2b512 computes blake2b-512 checksum for given data.
func Blake2b512(data ...[]byte) [Blake2b512Length]byte {
	if len(data) == 1 {
		return blake2b.Sum512(data[0])
	}
	return Blake2b512Fn(func(w io.Writer) {
		for _, b := range data {
			w.Write(b)
		}
	})
}

// Blake2b512Fn computes blake2b-512 checksum for the provided writer.
func Blake2b512Fn(fn func(w io.Writer)) (h [Blake2b512Length]byte) {
	w := blake2b512StatePool.Get().(*blake2b512State)
	fn(w)
	w.Sum(w.b64[:0])
	h = w.b64
	w.Reset()
	blake2b512StatePool.Put(w)
	return
}

type blake2b512State struct {
	hash.Hash
	b64 [Blake2b512Length]byte
}

var blake2b512StatePool = sync.Pool{
	New: func() any {
		return &blake2b512State{
			Hash: NewBlake2b512(),
		}
	},
}
