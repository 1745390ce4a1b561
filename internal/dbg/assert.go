// Package dbg provides lazily-formatted debugging and assertion helpers used
// throughout the parser to document and check invariants without paying for
// string formatting unless the assertion actually fails.
package dbg

import "fmt"

// Assert panics if cond is false. The message is only formatted when the
// assertion actually fails, so call sites are free to pass expensive
// arguments.
func Assert(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Errorf("tmi: internal assertion failed: "+format, args...))
	}
}
