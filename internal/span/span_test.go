package span

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOfAndBetween(t *testing.T) {
	t.Parallel()

	s := Of(3, 5)
	assert.Equal(t, 3, s.Start())
	assert.Equal(t, 5, s.Len())
	assert.Equal(t, 8, s.End())

	b := Between(3, 8)
	assert.Equal(t, s, b)
}

func TestZeroValueIsEmptyAtOffsetZero(t *testing.T) {
	t.Parallel()

	var s Span
	assert.Equal(t, 0, s.Start())
	assert.Equal(t, 0, s.Len())
	assert.True(t, s.Empty())
}

func TestBytesAndString(t *testing.T) {
	t.Parallel()

	src := []byte("hello world")
	s := Between(6, 11)
	assert.Equal(t, "world", string(s.Bytes(src)))
	assert.Equal(t, "world", s.String(src))
}

func TestEmptySpanResolvesToNilAndEmptyString(t *testing.T) {
	t.Parallel()

	src := []byte("hello")
	s := Of(2, 0)
	assert.Nil(t, s.Bytes(src))
	assert.Equal(t, "", s.String(src))
}

func TestWithin(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		s      Span
		length int
		want   bool
	}{
		{"fits exactly", Between(0, 10), 10, true},
		{"fits with room", Between(2, 5), 10, true},
		{"end beyond length", Between(2, 11), 10, false},
		{"empty span at end of buffer", Of(10, 0), 10, true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.s.Within(tc.length))
		})
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	s := Between(3, 8)
	assert.Equal(t, "[3:8]", fmt.Sprintf("%v", s))
}
