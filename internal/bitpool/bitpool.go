// Package bitpool recycles the uint64 backing slices used by the dense
// form of typeflow.TypeSet, the same way hive/index/pool.go recycles
// NumericIndex values: most dense sets are short-lived (a node that
// crosses the small/dense threshold tends to do so early and then
// keep growing), so reuse avoids repeated large allocations during a
// single analysis run.
package bitpool

import "sync"

const wordBits = 64

var pool = sync.Pool{
	New: func() any {
		return make([]uint64, 0, 8)
	},
}

// Acquire returns a zeroed []uint64 with capacity for at least
// minBits bits, drawn from the pool when possible.
func Acquire(minBits int) []uint64 {
	words := (minBits + wordBits - 1) / wordBits
	if words < 1 {
		words = 1
	}
	buf := pool.Get().([]uint64)
	if cap(buf) < words {
		pool.Put(buf) //nolint:staticcheck // too small for this request, return it and allocate fresh
		return make([]uint64, words)
	}
	buf = buf[:words]
	for i := range buf {
		buf[i] = 0
	}
	return buf
}

// Grow returns a zero-extended copy of buf with room for at least
// minBits bits, releasing buf back to the pool.
func Grow(buf []uint64, minBits int) []uint64 {
	words := (minBits + wordBits - 1) / wordBits
	if words <= len(buf) {
		return buf
	}
	grown := Acquire(minBits)
	copy(grown, buf)
	Release(buf)
	return grown
}

// Release returns buf to the pool for reuse.
func Release(buf []uint64) {
	if buf == nil {
		return
	}
	pool.Put(buf[:0]) //nolint:staticcheck // intentional cap-preserving reset
}
