package tagtable

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupFindsSeededEntries(t *testing.T) {
	t.Parallel()

	tbl := New([]Entry{
		{Key: "badges", Value: 1},
		{Key: "display-name", Value: 2},
		{Key: "room-id", Value: 3},
	})

	v, ok := tbl.Lookup([]byte("display-name"))
	require.True(t, ok)
	assert.Equal(t, 2, v)

	v, ok = tbl.Lookup([]byte("room-id"))
	require.True(t, ok)
	assert.Equal(t, 3, v)
}

func TestLookupMissingKey(t *testing.T) {
	t.Parallel()

	tbl := New([]Entry{{Key: "badges", Value: 1}})
	_, ok := tbl.Lookup([]byte("not-a-tag"))
	assert.False(t, ok)
}

func TestLookupEmptyTable(t *testing.T) {
	t.Parallel()

	tbl := New(nil)
	_, ok := tbl.Lookup([]byte("anything"))
	assert.False(t, ok)
}

func TestNewPanicsOnZeroValue(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		New([]Entry{{Key: "x", Value: 0}})
	})
}

func TestLookupOverLargeRealisticKeySet(t *testing.T) {
	t.Parallel()

	var entries []Entry
	for i := 0; i < 90; i++ {
		entries = append(entries, Entry{Key: fmt.Sprintf("msg-param-field-%d", i), Value: i + 1})
	}
	tbl := New(entries)

	for i, e := range entries {
		v, ok := tbl.Lookup([]byte(e.Key))
		require.True(t, ok, "entry %d (%q) not found", i, e.Key)
		assert.Equal(t, e.Value, v)
	}

	_, ok := tbl.Lookup([]byte("msg-param-field-not-seeded"))
	assert.False(t, ok)
}
