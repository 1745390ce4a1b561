package simdscan

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindByteDifferential(t *testing.T) {
	lengths := []int{0, 1, 15, 16, 17, 31, 32, 33, 1024}
	for _, n := range lengths {
		data := make([]byte, n)
		for i := range data {
			data[i] = 'x'
		}

		positions := map[string]int{"absent": -1}
		if n > 0 {
			positions["start"] = 0
			positions["end"] = n - 1
			positions["mid"] = n / 2
			if n >= 2 {
				positions["penultimate"] = n - 2
			}
			positions["second"] = min(1, n-1)
		}

		for name, pos := range positions {
			t.Run(name, func(t *testing.T) {
				buf := append([]byte(nil), data...)
				want := scalarFindByte(buf, '=')
				if pos >= 0 {
					buf[pos] = '='
					want = pos
				}

				got := FindByte(buf, '=')
				require.Equal(t, want, got, "len=%d pos=%d", n, pos)
			})
		}
	}
}

func TestFindAnyDifferential(t *testing.T) {
	inputs := []string{
		"",
		"a",
		strings.Repeat("a", 15),
		strings.Repeat("a", 16) + ";",
		"key=value",
		"key=value;k2=v2",
		"leading space then =",
		strings.Repeat("a", 63) + " ",
		strings.Repeat("z", 200) + "=mid;end ",
	}

	for _, in := range inputs {
		data := []byte(in)
		wantOff, wantDelim := scalarFindAny(data)
		gotOff, gotDelim := FindAny(data)
		require.Equal(t, wantOff, gotOff, "input %q", in)
		require.Equal(t, wantDelim, gotDelim, "input %q", in)
	}
}

func TestFindByteReturnsFirstMatch(t *testing.T) {
	data := []byte("aaa=bbb=ccc")
	require.Equal(t, 3, FindByte(data, '='))
}

func TestFindAnyTieBreakIsLowestOffset(t *testing.T) {
	// ';' occurs before '=' in this input; FindAny must report the earlier one.
	off, d := FindAny([]byte("abc;def=ghi"))
	require.Equal(t, 3, off)
	require.Equal(t, DelimSemicolon, d)
}
