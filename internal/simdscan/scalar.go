package simdscan

// scalarFindByte is the portable, architecture-independent fallback: a plain
// left-to-right byte scan. Every vectorized backend must agree with this
// function on every input (see TestFindByteDifferential).
func scalarFindByte(data []byte, b byte) int {
	for i, c := range data {
		if c == b {
			return i
		}
	}
	return -1
}

// scalarFindAny is the portable fallback for [FindAny].
func scalarFindAny(data []byte) (int, Delim) {
	for i, c := range data {
		switch c {
		case '=':
			return i, DelimEquals
		case ';':
			return i, DelimSemicolon
		case ' ':
			return i, DelimSpace
		}
	}
	return -1, DelimNone
}
