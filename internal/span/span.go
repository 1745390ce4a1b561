// Package span provides the packed byte-offset range type used throughout
// the parser to reference substrings of a source buffer without copying.
package span

import (
	"fmt"
	"math"

	"github.com/tmigo/tmi/internal/dbg"
)

// Span is a packed {start, end} pair of byte offsets into some source
// buffer, such as one IRC line.
//
// This is a packed representation with the layout
//
//	struct {
//	  start, len uint32
//	}
//
// The zero value faithfully represents an empty span at offset 0.
type Span uint64

// Of builds a Span from a start offset and a length.
func Of(start, length int) Span {
	dbg.Assert(start >= 0 && length >= 0, "negative span component: [%d:%d]", start, length)
	dbg.Assert(int64(start) <= math.MaxUint32 && int64(length) <= math.MaxUint32,
		"span component too large: [%d:%d]", start, length)
	return Span(uint32(start)) | Span(uint32(length))<<32
}

// Between builds a Span covering [start, end).
func Between(start, end int) Span {
	dbg.Assert(end >= start, "span end before start: [%d:%d]", start, end)
	return Of(start, end-start)
}

// Start returns the start offset of this span.
func (s Span) Start() int { return int(uint32(s)) }

// Len returns the length of this span.
func (s Span) Len() int { return int(s >> 32) }

// End returns the end offset of this span.
func (s Span) End() int { return s.Start() + s.Len() }

// Empty reports whether this span has zero length.
func (s Span) Empty() bool { return s.Len() == 0 }

// Bytes resolves this span against src, returning the referenced substring.
//
// The returned slice aliases src; callers must not retain it beyond the
// lifetime of src unless they first copy it.
func (s Span) Bytes(src []byte) []byte {
	if s.Len() == 0 {
		return nil
	}
	return src[s.Start():s.End()]
}

// String resolves this span against src, returning the referenced substring
// as a string without copying (via the same aliasing rules as [Span.Bytes]).
func (s Span) String(src []byte) string {
	if s.Len() == 0 {
		return ""
	}
	return unsafeString(s.Bytes(src))
}

// Format implements [fmt.Formatter].
func (s Span) Format(f fmt.State, verb rune) {
	fmt.Fprintf(f, "[%d:%d]", s.Start(), s.End())
}

// Within reports whether this span is a valid range into a buffer of the
// given length: 0 <= start <= end <= length.
func (s Span) Within(length int) bool {
	return s.Start() >= 0 && s.Start() <= s.End() && s.End() <= length
}
