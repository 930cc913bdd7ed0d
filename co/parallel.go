// Copyright (c) 2018 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package co

import (
	"runtime"
	"sync"
)

// Enqueue function to enqueue parallel works.
type Enqueue func(work func())

// Parallel runs the works enqueued by cb on up to workers go routines,
// and returns when all of them are done.
// workers < 1 means one per CPU.
func Parallel(workers int, cb func(Enqueue)) {
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	var wg sync.WaitGroup
	ch := make(chan func(), workers*2)
	for range workers {
		wg.Go(func() {
			for work := range ch {
				work()
			}
		})
	}
	cb(func(work func()) { ch <- work })
	close(ch)
	wg.Wait()
}

// ForEach calls fn for every index in [0, n) using Parallel.
func ForEach(workers, n int, fn func(i int)) {
	Parallel(workers, func(enqueue Enqueue) {
		for i := range n {
			enqueue(func() { fn(i) })
		}
	})
}
