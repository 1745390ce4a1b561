package tmi_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmigo/tmi"
)

func TestWriteFormatsTrailingParam(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	err := tmi.Write(&b, "PRIVMSG", "#chan", "hello world")
	require.NoError(t, err)
	assert.Equal(t, "PRIVMSG #chan :hello world\r\n", b.String())
}

func TestWriteSingleWordParamNeedsNoColon(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	err := tmi.Write(&b, "JOIN", "#chan")
	require.NoError(t, err)
	assert.Equal(t, "JOIN #chan\r\n", b.String())
}

func TestWriteThenParseRoundTrips(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	require.NoError(t, tmi.Write(&b, "PRIVMSG", "#chan", "hello world"))
	line := strings.TrimSuffix(b.String(), "\r\n")

	frame, ok := tmi.Parse(tmi.Source(line))
	require.True(t, ok)
	assert.Equal(t, tmi.CommandPrivmsg, frame.Command)

	channel, hasChannel := frame.Channel()
	require.True(t, hasChannel)
	assert.Equal(t, "#chan", channel)

	params, hasParams := frame.Params()
	require.True(t, hasParams)
	assert.Equal(t, ":hello world", params)
}

// TestTagListReconstructsWirePrefix pins the tag-order guarantee: for a line
// whose tag section is well-formed, re-emitting "@" + "k1=v1;...;kn=vn" + " "
// from the raw tag list in order reproduces a prefix of the input.
func TestTagListReconstructsWirePrefix(t *testing.T) {
	t.Parallel()

	line := "@badge-info=;badges=broadcaster/1;color=#FF0000;display-name=X;id=abc PING"
	frame, ok := tmi.Parse(tmi.Source(line))
	require.True(t, ok)

	var b strings.Builder
	b.WriteByte('@')
	for i := 0; i < frame.Tags.Len(); i++ {
		if i > 0 {
			b.WriteByte(';')
		}
		p := frame.Tags.At(i)
		b.WriteString(p.KeySpan().String(frame.Src))
		b.WriteByte('=')
		b.WriteString(p.ValueSpan().String(frame.Src))
	}
	b.WriteByte(' ')

	assert.True(t, strings.HasPrefix(line, b.String()),
		"reconstructed %q is not a prefix of %q", b.String(), line)
}
