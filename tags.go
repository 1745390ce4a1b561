package tmi

import (
	"github.com/tmigo/tmi/internal/smallvec"
	"github.com/tmigo/tmi/internal/span"
)

// TagPair packs the two spans of one key=value pair from the tag list, as
// three integers: key_start, key_len, and value_len. The value's start is
// implicitly key_start + key_len + 1 (skipping the '=').
//
// Invariant: key_start+key_len < len(source) and the byte at that offset is
// '='. A lone key with no '=' is dropped at parse time rather than producing
// a TagPair, so this invariant always holds for TagPairs that exist.
type TagPair struct {
	KeyStart int32
	KeyLen   int32
	ValueLen int32
}

// KeySpan returns the span of the tag's key.
func (p TagPair) KeySpan() Span {
	return span.Of(int(p.KeyStart), int(p.KeyLen))
}

// ValueSpan returns the span of the tag's value.
func (p TagPair) ValueSpan() Span {
	return span.Of(int(p.KeyStart)+int(p.KeyLen)+1, int(p.ValueLen))
}

// TagList is an ordered, insertion-order-preserving sequence of [TagPair]s
// parsed from one message's tag section. Lookup is a linear scan: Twitch
// messages typically carry 5-40 tags, and at these sizes a scan comfortably
// beats the overhead of hashing.
//
// The first [smallvec.Cap] tags are stored inline; pathological messages
// with more tags spill to the heap. See internal/smallvec.
type TagList struct {
	pairs smallvec.SmallVec[TagPair]
}

// Len returns the number of tags parsed, duplicates included.
func (l *TagList) Len() int { return l.pairs.Len() }

// At returns the i'th tag pair in wire order.
func (l *TagList) At(i int) TagPair { return l.pairs.At(i) }

func (l *TagList) push(p TagPair) { l.pairs.Push(p) }

// Get returns the value span of the first tag pair whose key matches name,
// read directly from src (no [Tag] decoding or unescaping).
func (l *TagList) Get(src Source, name string) (Span, bool) {
	n := l.Len()
	for i := 0; i < n; i++ {
		p := l.At(i)
		if p.KeySpan().String(src) == name {
			return p.ValueSpan(), true
		}
	}
	return Span(0), false
}

// GetTag returns the value span of the first tag pair whose key decodes to
// the given [Tag].
func (l *TagList) GetTag(src Source, want Tag) (Span, bool) {
	n := l.Len()
	for i := 0; i < n; i++ {
		p := l.At(i)
		if lookupTag(p.KeySpan().Bytes(src)) == want {
			return p.ValueSpan(), true
		}
	}
	return Span(0), false
}
