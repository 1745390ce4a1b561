// Package simdscan implements the L1 byte-search kernels: finding the first
// occurrence of a delimiter byte, or of any of a small fixed set of
// delimiters, inside a byte slice.
//
// Each kernel is a total function on byte slices: it never fails, and every
// architecture-specific implementation is required to agree bit-for-bit with
// the portable scalar one (see the differential test in simdscan_test.go).
//
// Every delimiter these kernels are asked to find is ASCII, so a reported
// offset never lands inside a multi-byte UTF-8 sequence: any span a caller
// derives from these offsets bounds a valid UTF-8 substring of its input.
//
// True vectorization in Go has no stable, assembly-free compiler intrinsic
// for SSE2/AVX2/AVX-512/NEON, so each arch-tagged file here instead uses the
// classic SWAR ("SIMD within a register") word-parallel trick: load a
// uint64 word at a time, broadcast-compare all its bytes against the
// target in one shot using the textbook haszero/hasless bit manipulation, and
// use trailing-zero-count to recover the matching byte's offset. This keeps
// the shape of a true vector kernel (full-lane broadcast compare, aligned
// loop, scalar tail) even without hardware vector registers.
package simdscan

// Delim identifies which of the tag-list delimiters matched in a
// [FindAny] scan.
type Delim int

const (
	// DelimNone indicates no delimiter was found.
	DelimNone Delim = iota
	DelimEquals
	DelimSemicolon
	DelimSpace
)

// FindByte returns the offset of the first occurrence of b in data, or -1 if
// absent.
func FindByte(data []byte, b byte) int {
	return findByte(data, b)
}

// FindAny locates the first occurrence of '=', ';', or ' ' in data, and
// reports which one it was. Ties (impossible, since a byte cannot equal two
// distinct delimiters at once) are broken by lowest offset implicitly by
// scanning left to right.
func FindAny(data []byte) (offset int, which Delim) {
	return findAny(data)
}
