// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package cache

import (
	"github.com/vechain/substrate/substrate"
)

type moduleItem struct {
	module, item string
}

// StorageKeys memoizes storage key derivation for recently used module items.
// It is safe for concurrent use.
type StorageKeys struct {
	lru *LRU
}

// NewStorageKeys creates a StorageKeys cache holding up to size entries.
func NewStorageKeys(size int) (*StorageKeys, error) {
	lru, err := NewLRU(size)
	if err != nil {
		return nil, err
	}
	return &StorageKeys{lru}, nil
}

// Get returns the storage key of the module item.
func (c *StorageKeys) Get(module, item string) substrate.StorageKey {
	v := c.lru.GetOrLoad(moduleItem{module, item}, func(key any) any {
		k := key.(moduleItem)
		return substrate.NewStorageKey(k.module, k.item)
	})
	return v.(substrate.StorageKey)
}

// Len returns count of cached keys.
func (c *StorageKeys) Len() int {
	return c.lru.Len()
}

// Stats returns the hit and miss counts, and whether the hit rate changed since the last call.
func (c *StorageKeys) Stats() (bool, int64, int64) {
	return c.lru.Stats()
}
