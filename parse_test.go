package tmi_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmigo/tmi"
	"github.com/tmigo/tmi/internal/fixtures"
)

func loadCorpus(t *testing.T) []fixtures.Case {
	t.Helper()
	cases, err := fixtures.Load("testdata/corpus.yaml")
	require.NoError(t, err, "loading corpus")
	return cases
}

func TestParseCorpus(t *testing.T) {
	t.Parallel()

	for _, tc := range loadCorpus(t) {
		tc := tc
		t.Run(tc.Name, func(t *testing.T) {
			t.Parallel()

			frame, ok := tmi.Parse(tmi.Source(tc.Line))
			if tc.ParseFails {
				assert.False(t, ok, "expected Parse to fail")
				return
			}
			require.True(t, ok, "expected Parse to succeed")

			if tc.Command != "" {
				assert.Equal(t, tc.Command, frame.Command.String())
			}

			channel, hasChannel := frame.Channel()
			assert.Equal(t, tc.HasChannel, hasChannel)
			if tc.HasChannel {
				assert.Equal(t, tc.Channel, channel)
			}

			for name, want := range tc.Tags {
				sp, ok := frame.RawTag(name)
				require.True(t, ok, "tag %q not found", name)
				assert.Equal(t, want, sp.String(frame.Src), "raw value of tag %q", name)
			}
		})
	}
}

func TestParseEmptyLineFails(t *testing.T) {
	t.Parallel()

	_, ok := tmi.Parse(tmi.Source(""))
	assert.False(t, ok)
}

func TestParseCommandOnly(t *testing.T) {
	t.Parallel()

	frame, ok := tmi.Parse(tmi.Source("PING"))
	require.True(t, ok)
	assert.Equal(t, tmi.CommandPing, frame.Command)
	assert.False(t, frame.HasPrefix)
	assert.False(t, frame.HasChannel)
	assert.False(t, frame.HasParams)
}

func TestParseIsDeterministic(t *testing.T) {
	t.Parallel()

	line := tmi.Source("@id=1;room-id=2 :nick!user@host PRIVMSG #chan :hello world")
	a, okA := tmi.Parse(line)
	b, okB := tmi.Parse(line)
	require.True(t, okA)
	require.True(t, okB)
	assert.Equal(t, a, b)
}

func TestFrameIntoOwnedPreservesFields(t *testing.T) {
	t.Parallel()

	line := tmi.Source("@id=1 :nick!user@host PRIVMSG #chan :hello")
	frame, ok := tmi.Parse(line)
	require.True(t, ok)

	owned := frame.IntoOwned()
	assert.Equal(t, frame.Command, owned.Command)

	ch1, _ := frame.Channel()
	ch2, _ := owned.Channel()
	assert.Equal(t, ch1, ch2)

	// Mutating the original buffer must not affect the owned copy.
	for i := range line {
		line[i] = '!'
	}
	ch3, _ := owned.Channel()
	assert.Equal(t, ch2, ch3)
}

func TestParsePrefixBareSpanIsHost(t *testing.T) {
	t.Parallel()

	frame, ok := tmi.Parse(tmi.Source(":tmi.twitch.tv PING"))
	require.True(t, ok)
	require.True(t, frame.HasPrefix)
	assert.False(t, frame.Prefix.HasNick())
	assert.Equal(t, "tmi.twitch.tv", frame.Prefix.Host(frame.Src))
}

func TestParsePrefixNickUserHost(t *testing.T) {
	t.Parallel()

	frame, ok := tmi.Parse(tmi.Source(":nick!user@host PRIVMSG #c :hi"))
	require.True(t, ok)
	require.True(t, frame.Prefix.HasNick())
	require.True(t, frame.Prefix.HasUser())
	nick, _ := frame.Prefix.Nick(frame.Src)
	assert.Equal(t, "nick", nick)
	assert.Equal(t, "host", frame.Prefix.Host(frame.Src))
}

func TestDuplicateTagsKeepsFirst(t *testing.T) {
	t.Parallel()

	frame, ok := tmi.Parse(tmi.Source("@id=first;id=second PING"))
	require.True(t, ok)

	sp, found := frame.RawTag("id")
	require.True(t, found)
	assert.Equal(t, "first", sp.String(frame.Src))
}

func TestParseLoneTagKeyIsDropped(t *testing.T) {
	t.Parallel()

	frame, ok := tmi.Parse(tmi.Source("@lonekey;id=1 PING"))
	require.True(t, ok)
	assert.Equal(t, 1, frame.Tags.Len())
	_, found := frame.RawTag("lonekey")
	assert.False(t, found)
	_, found = frame.RawTag("id")
	assert.True(t, found)
}
