package tmi

import "github.com/tmigo/tmi/internal/span"

// Source is one IRC line's worth of immutable bytes, with any trailing CRLF
// already stripped by the caller's line source. Every [Span] produced by
// [Parse] is meaningless without the Source it was parsed from.
type Source []byte

// Span is a {start, end} pair of byte offsets into a [Source]. All
// delimiters recognized by this package are ASCII, so a Span always bounds
// a valid UTF-8 substring of its source.
type Span = span.Span
