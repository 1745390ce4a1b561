package tmi

import (
	"bytes"
	"unsafe"
)

// commaSubstitute is Twitch's legacy stand-in for a literal comma inside tag
// values, U+2E1D (⸝), predating the backslash-escape scheme for everything
// else. It is substituted unconditionally, not as a backslash escape.
var commaSubstitute = []byte{0xE2, 0xB8, 0x9D}

// Value is a lazily-unescaped tag value: a span over the source plus a
// cache filled in on first read.
//
// The cache is a plain field, not synchronized: sharing a
// not-yet-read Value across goroutines needs external synchronization.
// Once read, a Value is safe to share. [Decode] never returns a Value
// directly: every typed [Message] field already holds the resolved
// string. So this caveat only applies to a Value obtained directly via
// [Frame.Value].
type Value struct {
	raw   Span
	src   Source
	cache string
	isSet bool
}

func newValue(src Source, raw Span) Value {
	return Value{raw: raw, src: src}
}

// Get returns the unescaped value, materializing and caching it on first
// call. When the raw value contains neither a backslash nor the legacy
// comma-substitute sequence, the source bytes are returned as a string with
// no allocation. This is the common case: most tag values carry no escapes.
func (v *Value) Get() string {
	if v.isSet {
		return v.cache
	}

	raw := v.raw.Bytes(v.src)
	v.cache = unescape(raw)
	v.isSet = true
	return v.cache
}

// Raw returns the unmodified, still-escaped span, resolved against src.
func (v *Value) Raw() string {
	return v.raw.String(v.src)
}

// unescape decodes Twitch's tag-value escape dictionary:
//
//	\:  -> ;
//	\s  -> space
//	\\  -> backslash
//	\r  -> CR
//	\n  -> LF
//	⸝   -> , (not backslash-prefixed)
//	\x  -> x for any other x (the backslash is simply consumed)
func unescape(raw []byte) string {
	if bytes.IndexByte(raw, '\\') < 0 && !bytes.Contains(raw, commaSubstitute) {
		return unsafeString(raw)
	}

	out := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); {
		switch {
		case raw[i] == '\\' && i+1 < len(raw):
			switch raw[i+1] {
			case ':':
				out = append(out, ';')
			case 's':
				out = append(out, ' ')
			case '\\':
				out = append(out, '\\')
			case 'r':
				out = append(out, '\r')
			case 'n':
				out = append(out, '\n')
			default:
				out = append(out, raw[i+1])
			}
			i += 2
		case raw[i] == '\\':
			// Trailing lone backslash with nothing after it: drop it.
			i++
		case i+3 <= len(raw) && bytes.Equal(raw[i:i+3], commaSubstitute):
			out = append(out, ',')
			i += 3
		default:
			out = append(out, raw[i])
			i++
		}
	}
	return unsafe.String(unsafe.SliceData(out), len(out))
}

// unsafeString reinterprets b as a string without copying. Every caller
// only ever does this over a byte slice that is either immutable source
// data, or a freshly allocated buffer that is never written to again.
func unsafeString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}
