package tmi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnescapeDictionary(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{"semicolon", `a\:b`, "a;b"},
		{"space", `a\sb`, "a b"},
		{"backslash", `a\\b`, `a\b`},
		{"cr", `a\rb`, "a\rb"},
		{"lf", `a\nb`, "a\nb"},
		{"unknown escape consumes backslash", `a\xb`, "axb"},
		{"trailing lone backslash dropped", `ab\`, "ab"},
		{"comma substitute", "a⸝b", "a,b"},
		{"no escapes is unchanged", "plain value", "plain value"},
		{"empty", "", ""},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, unescape([]byte(tc.in)))
		})
	}
}

// colorTagValue parses a synthetic "@color=raw PING" line and returns the
// Value for the color tag, for exercising [Value.Get] and [Value.Raw]
// against a real Span rather than a hand-built one.
func colorTagValue(t *testing.T, raw string) Value {
	t.Helper()
	frame, ok := Parse(Source("@color=" + raw + " PING"))
	require.True(t, ok)
	v, ok := frame.Value(TagColor)
	require.True(t, ok, "color tag not found")
	return v
}

func TestValueGetIsCachedAfterFirstRead(t *testing.T) {
	t.Parallel()

	v := colorTagValue(t, `a\sb`)
	first := v.Get()
	second := v.Get()
	assert.Equal(t, "a b", first)
	assert.Equal(t, first, second)
}

func TestValueRawIsUnmodified(t *testing.T) {
	t.Parallel()

	v := colorTagValue(t, `a\sb`)
	assert.Equal(t, `a\sb`, v.Raw())
	assert.Equal(t, "a b", v.Get())
	assert.Equal(t, `a\sb`, v.Raw())
}

func TestUnescapeZeroCopyFastPath(t *testing.T) {
	t.Parallel()

	raw := []byte("no-escapes-here")
	got := unescape(raw)
	assert.Equal(t, string(raw), got)
}

// FuzzUnescape checks that unescape never panics on arbitrary input, and
// that every substitution it performs (backslash-pair or comma-substitute)
// only ever shrinks the value, never grows it.
func FuzzUnescape(f *testing.F) {
	f.Add(`a\:b\s\\c\r\nd`)
	f.Add("a⸝b")
	f.Add(`trailing\`)
	f.Add("")
	f.Add(`\`)

	f.Fuzz(func(t *testing.T, raw string) {
		out := unescape([]byte(raw))
		if len(out) > len(raw) {
			t.Fatalf("unescape(%q) = %q grew from %d to %d bytes", raw, out, len(raw), len(out))
		}
	})
}
