package smallvec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushAndLenInline(t *testing.T) {
	t.Parallel()

	var v SmallVec[int]
	for i := 0; i < Cap/2; i++ {
		v.Push(i)
	}
	assert.Equal(t, Cap/2, v.Len())
	assert.Equal(t, 0, v.At(0))
	assert.Equal(t, Cap/2-1, v.At(Cap/2-1))
}

func TestPushSpillsBeyondCap(t *testing.T) {
	t.Parallel()

	var v SmallVec[int]
	for i := 0; i < Cap+10; i++ {
		v.Push(i)
	}
	require.Equal(t, Cap+10, v.Len())
	for i := 0; i < Cap+10; i++ {
		assert.Equal(t, i, v.At(i), "element %d", i)
	}
}

func TestSlice(t *testing.T) {
	t.Parallel()

	t.Run("inline", func(t *testing.T) {
		t.Parallel()
		var v SmallVec[string]
		v.Push("a")
		v.Push("b")
		assert.Equal(t, []string{"a", "b"}, v.Slice())
	})

	t.Run("spilled", func(t *testing.T) {
		t.Parallel()
		var v SmallVec[int]
		for i := 0; i < Cap+3; i++ {
			v.Push(i)
		}
		got := v.Slice()
		require.Len(t, got, Cap+3)
		assert.Equal(t, Cap+2, got[Cap+2])
	})

	t.Run("slice is a copy", func(t *testing.T) {
		t.Parallel()
		var v SmallVec[int]
		v.Push(1)
		got := v.Slice()
		got[0] = 99
		assert.Equal(t, 1, v.At(0))
	})
}

func TestAllIteratesInOrder(t *testing.T) {
	t.Parallel()

	var v SmallVec[int]
	for i := 0; i < Cap+5; i++ {
		v.Push(i * 2)
	}

	var got []int
	v.All(func(i, val int) bool {
		got = append(got, val)
		return true
	})
	require.Len(t, got, Cap+5)
	for i, val := range got {
		assert.Equal(t, i*2, val)
	}
}

func TestAllStopsWhenYieldReturnsFalse(t *testing.T) {
	t.Parallel()

	var v SmallVec[int]
	v.Push(1)
	v.Push(2)
	v.Push(3)

	var seen int
	v.All(func(i, val int) bool {
		seen++
		return val != 2
	})
	assert.Equal(t, 2, seen)
}

func TestZeroValueIsEmpty(t *testing.T) {
	t.Parallel()

	var v SmallVec[int]
	assert.Equal(t, 0, v.Len())
	assert.Empty(t, v.Slice())
}
