package span

import "unsafe"

// unsafeString reinterprets b as a string without copying, using the
// compiler-builtin unsafe.String/unsafe.SliceData pair.
//
// This is safe as long as b is never mutated again, which holds here because
// every Span is resolved against an immutable source buffer.
func unsafeString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}
