// Package common holds small helpers shared across the accumulator
// packages: batching scalar multiplications across CPUs, and turning
// external strings into scalars.
package common

import (
	"crypto/sha256"
	"runtime"
	"sync"

	"github.com/chain-labs/expraccum/curve"
)

// Parallelize splits work over [0, n) into chunks and runs fn on each
// chunk concurrently across the available CPUs, following the pattern the
// teacher's phase1/lagrange code calls as common.Parallelize (that
// function's own body never shipped with the retrieved sources, so this
// is a from-scratch implementation of the idiom every one of its call
// sites assumes: chunk by NumCPU, fan out, wait).
func Parallelize(n int, fn func(start, end int)) {
	numCPU := runtime.NumCPU()
	if n < numCPU {
		numCPU = n
	}
	if numCPU <= 1 {
		fn(0, n)
		return
	}

	var wg sync.WaitGroup
	chunk := (n + numCPU - 1) / numCPU
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			fn(start, end)
		}(start, end)
	}
	wg.Wait()
}

// ScalarFromSeed hashes an arbitrary domain string into Fr via SHA-256,
// matching the seed convention the accumulator's end-to-end scenarios use
// (s=H("s"), r=H("r")): a fixed, reproducible way to turn a human-readable
// tag into a field element without a trusted source of randomness.
func ScalarFromSeed(seed string) curve.Fr {
	digest := sha256.Sum256([]byte(seed))
	var f curve.Fr
	f.SetBytes(digest[:])
	return f
}
