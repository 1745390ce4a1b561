// Package smallvec provides a small-vector: a sequence that stores its first
// Cap elements inline, in value storage, and only allocates a heap slice
// once that threshold is exceeded.
//
// This is the value-type analogue of the pointer arena a self-referential
// parser would otherwise need: because the element types this package is
// used for (tag-pairs of plain integers) contain no pointers, a fixed inline
// array plus an overflow slice is sufficient, with no need for the
// GC-root chunk-linking trick a pointer arena uses to keep itself alive.
package smallvec

// Cap is the number of elements stored inline before SmallVec spills to the
// heap. Twitch messages rarely carry more than 40 tags; 128 leaves ample
// headroom before the pathological spill path triggers.
const Cap = 128

// SmallVec is a sequence of T that stores up to [Cap] elements inline and
// falls back to a heap slice beyond that.
//
// The zero value is an empty, ready-to-use SmallVec.
type SmallVec[T any] struct {
	inline [Cap]T
	n      int // number of elements in inline, while spill == nil
	spill  []T // once non-nil, all elements live here instead
}

// Len returns the number of elements currently stored.
func (v *SmallVec[T]) Len() int {
	if v.spill != nil {
		return len(v.spill)
	}
	return v.n
}

// Push appends a value, spilling to the heap the first time [Cap] is
// exceeded.
func (v *SmallVec[T]) Push(val T) {
	if v.spill != nil {
		v.spill = append(v.spill, val)
		return
	}
	if v.n < Cap {
		v.inline[v.n] = val
		v.n++
		return
	}

	// Overflow: migrate to a heap slice with room to grow.
	v.spill = make([]T, Cap, Cap*2)
	copy(v.spill, v.inline[:])
	v.spill = append(v.spill, val)
}

// At returns the element at index i. It panics if i is out of range.
func (v *SmallVec[T]) At(i int) T {
	if v.spill != nil {
		return v.spill[i]
	}
	return v.inline[i]
}

// Slice materializes the contents as an owned slice. Callers that only need
// read access to elements in order should prefer [SmallVec.All] to avoid
// this allocation.
func (v *SmallVec[T]) Slice() []T {
	if v.spill != nil {
		return append([]T(nil), v.spill...)
	}
	out := make([]T, v.n)
	copy(out, v.inline[:v.n])
	return out
}

// All iterates over the elements in insertion order without allocating.
func (v *SmallVec[T]) All(yield func(int, T) bool) {
	n := v.Len()
	for i := 0; i < n; i++ {
		if !yield(i, v.At(i)) {
			return
		}
	}
}
