//go:build !amd64 && !arm64

package simdscan

// No vector-capable backend is known for this architecture, so the kernels
// fall back to the portable scalar scan.

func findByte(data []byte, b byte) int {
	return scalarFindByte(data, b)
}

func findAny(data []byte) (int, Delim) {
	return scalarFindAny(data)
}
