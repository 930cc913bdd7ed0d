// Copyright (c) 2018 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package cache

import lru "github.com/hashicorp/golang-lru"

// LRU a LRU cache extends golang-lru with hit/miss accounting.
type LRU struct {
	*lru.Cache
	stats Stats
}

// NewLRU create a LRU cache instance.
// maxSize should be > 0, or an error returned.
func NewLRU(maxSize int) (*LRU, error) {
	cache, err := lru.New(maxSize)
	if err != nil {
		return nil, err
	}
	return &LRU{Cache: cache}, nil
}

// Loader defines loader to load value.
type Loader func(key any) any

// GetOrLoad first try to get from cache, do load if missed.
func (l *LRU) GetOrLoad(key any, loader Loader) any {
	if v, ok := l.Get(key); ok {
		l.stats.Hit()
		return v
	}
	l.stats.Miss()

	v := loader(key)
	l.Add(key, v)
	return v
}

// Stats returns the hit and miss counts, and whether the hit rate changed since the last call.
func (l *LRU) Stats() (bool, int64, int64) {
	return l.stats.Stats()
}
