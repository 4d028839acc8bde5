package typeflow

import (
	"math/bits"

	"github.com/joshuapare/typeflow/internal/bitpool"
)

// smallSetThreshold is the small vector form's capacity: it holds at
// most this many indices before converting to a bitset. Tunable within
// [4,16] with identical observable semantics; 6 is a reasonable default.
const smallSetThreshold = 6

// denseCapacityFactor sizes a freshly-dense bitset to comfortably
// accommodate registry growth after the conversion: twice the current
// registry size.
const denseCapacityFactor = 2

// typeSet is a compact-then-dense set of Type indices. Below
// smallSetThreshold elements it is an unsorted slice;
// at capacity, insertion promotes it to a bitset. The promotion is
// one-way: a typeSet never reverts to the small form.
//
// The zero value is a valid, empty small set.
type typeSet struct {
	small []int    // unsorted, insertion order; nil once dense
	dense []uint64 // bitset, indexed by Type index; nil while small
	count int      // cached population count, valid in both forms
}

// contains reports whether index i is a member of the set.
func (s *typeSet) contains(i int) bool {
	if s.dense != nil {
		word := i / 64
		if word < 0 || word >= len(s.dense) {
			return false
		}
		return s.dense[word]&(1<<uint(i%64)) != 0
	}
	for _, v := range s.small {
		if v == i {
			return true
		}
	}
	return false
}

// add inserts index i, returning true iff the set changed. Promotes
// from small to dense when the small form is at capacity and i is
// not already present.
func (s *typeSet) add(i int, registrySize int) bool {
	if s.contains(i) {
		return false
	}

	if s.dense != nil {
		s.ensureDenseCapacity(i + 1)
		word := i / 64
		s.dense[word] |= 1 << uint(i%64)
		s.count++
		return true
	}

	if len(s.small) < smallSetThreshold {
		s.small = append(s.small, i)
		s.count++
		return true
	}

	// At capacity: promote to dense, then insert i.
	s.promoteToDense(registrySize)
	s.ensureDenseCapacity(i + 1)
	word := i / 64
	s.dense[word] |= 1 << uint(i%64)
	s.count++
	return true
}

// promoteToDense converts the small-vector representation into a
// bitset sized to registrySize*denseCapacityFactor bits.
func (s *typeSet) promoteToDense(registrySize int) {
	capBits := registrySize * denseCapacityFactor
	if capBits < smallSetThreshold+1 {
		capBits = smallSetThreshold + 1
	}
	s.dense = bitpool.Acquire(capBits)
	for _, v := range s.small {
		word := v / 64
		s.dense[word] |= 1 << uint(v%64)
	}
	s.small = nil
}

// ensureDenseCapacity grows the dense bitset so index minBits-1 is
// addressable.
func (s *typeSet) ensureDenseCapacity(minBits int) {
	s.dense = bitpool.Grow(s.dense, minBits)
}

// size returns the number of members.
func (s *typeSet) size() int { return s.count }

// enumerate calls fn once per member. Dense sets yield ascending
// index order; small sets yield insertion order. Callers must not
// depend on ordering beyond "each type appears once".
func (s *typeSet) enumerate(fn func(i int)) {
	if s.dense != nil {
		for word, w := range s.dense {
			for w != 0 {
				idx := word*64 + bits.TrailingZeros64(w)
				fn(idx)
				w &= w - 1
			}
		}
		return
	}
	for _, v := range s.small {
		fn(v)
	}
}

// toSlice materializes the set's members via enumerate, for callers
// that need a snapshot of raw indices. Consumer and transition
// deliveries build their []Type snapshots with Node.snapshotTypes
// instead.
func (s *typeSet) toSlice() []int {
	out := make([]int, 0, s.count)
	s.enumerate(func(i int) { out = append(out, i) })
	return out
}
