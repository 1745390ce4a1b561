package simdscan

import (
	"encoding/binary"
	"math/bits"
)

// wordSize is the width, in bytes, of the uint64 word the SWAR kernels
// operate on. All lane-count rationale below (amd64 unrolling 4 words to
// stand in for a 256/512-bit vector register, arm64 unrolling 2 words to
// stand in for a 128-bit NEON register) is expressed in terms of this
// constant.
const wordSize = 8

// broadcast replicates b into every byte of a uint64.
func broadcast(b byte) uint64 {
	return 0x0101010101010101 * uint64(b)
}

// hasZeroByte implements the classic "haszero" SWAR trick: given a word where
// every byte has already been XORed against the target, it produces a
// nonzero result iff any byte in the original word equaled the target.
//
// This is the scalar analogue of a SIMD broadcast-compare-and-movemask: each
// byte lane that matched ends up with its high bit seeded with a 1 after the
// subtraction/complement/and step below.
func hasZeroByte(w uint64) uint64 {
	const lo = 0x0101010101010101
	const hi = 0x8080808080808080
	return (w - lo) & ^w & hi
}

// firstMatchInWord returns the byte offset (0..7) of the lowest-addressed
// matching byte in a hasZeroByte mask, assuming it is nonzero.
func firstMatchInWord(mask uint64) int {
	// trailing_zeros / 8 recovers the lane index, mirroring x86's
	// movemask+trailing_zeros pattern and NEON's
	// shift-by-4-and-narrow+trailing_zeros/4 pattern: both reduce to
	// "index of the first set lane" once the mask has one tagged bit per
	// byte lane.
	return bits.TrailingZeros64(mask) / 8
}

// findByteWordUnroll scans data for b using unroll consecutive wordSize-byte
// words per iteration before falling back to a scalar tail scan.
//
// unroll approximates the number of wordSize-byte lanes covered by one
// vector compare on a given architecture (4 for amd64's AVX2/AVX-512-class
// 256/512-bit registers, 2 for arm64's 128-bit NEON registers).
func findByteWordUnroll(data []byte, b byte, unroll int) int {
	n := len(data)
	chunk := wordSize * unroll
	needle := broadcast(b)

	i := 0
	for ; i+chunk <= n; i += chunk {
		for j := 0; j < unroll; j++ {
			off := i + j*wordSize
			w := binary.NativeEndian.Uint64(data[off : off+wordSize])
			if mask := hasZeroByte(w ^ needle); mask != 0 {
				return off + firstMatchInWord(mask)
			}
		}
	}

	// Aligned-word remainder: consume whole words without the outer unroll.
	for ; i+wordSize <= n; i += wordSize {
		w := binary.NativeEndian.Uint64(data[i : i+wordSize])
		if mask := hasZeroByte(w ^ needle); mask != 0 {
			return i + firstMatchInWord(mask)
		}
	}

	// Scalar tail: fewer than wordSize bytes remain. Vector kernels would
	// reload the last lane unaligned here, but a plain byte scan over the
	// (small, <=7 byte) remainder costs the same.
	if rest := scalarFindByte(data[i:], b); rest >= 0 {
		return i + rest
	}
	return -1
}

// findAnyWordUnroll is [findByteWordUnroll] generalized to the three tag
// delimiters at once, matching the L2 parser's combined '='/';'/' ' scan.
func findAnyWordUnroll(data []byte, unroll int) (int, Delim) {
	n := len(data)
	chunk := wordSize * unroll

	eq := broadcast('=')
	semi := broadcast(';')
	sp := broadcast(' ')

	i := 0
	for ; i+chunk <= n; i += chunk {
		for j := 0; j < unroll; j++ {
			off := i + j*wordSize
			w := binary.NativeEndian.Uint64(data[off : off+wordSize])
			if off, d, ok := firstOfThree(w, off, eq, semi, sp); ok {
				return off, d
			}
		}
	}

	for ; i+wordSize <= n; i += wordSize {
		w := binary.NativeEndian.Uint64(data[i : i+wordSize])
		if off, d, ok := firstOfThree(w, i, eq, semi, sp); ok {
			return off, d
		}
	}

	if rest, d := scalarFindAny(data[i:]); rest >= 0 {
		return i + rest, d
	}
	return -1, DelimNone
}

// firstOfThree finds the lowest-offset byte in the word w (located at base)
// that matches any of the three broadcast needles, returning which
// delimiter it was.
func firstOfThree(w uint64, base int, eq, semi, sp uint64) (int, Delim, bool) {
	best := -1
	var which Delim

	consider := func(mask uint64, d Delim) {
		if mask == 0 {
			return
		}
		off := base + firstMatchInWord(mask)
		if best == -1 || off < best {
			best = off
			which = d
		}
	}

	consider(hasZeroByte(w^eq), DelimEquals)
	consider(hasZeroByte(w^semi), DelimSemicolon)
	consider(hasZeroByte(w^sp), DelimSpace)

	return best, which, best != -1
}
