package tmi

import (
	"fmt"
	"io"
	"strings"
)

// Write encodes a minimal IRC line and writes it to w: "<command>[ param]*".
// The last param, if it contains a space or starts with ':', is written as
// the trailing parameter, prefixed with ':'. Earlier params are written as
// given, with no check for spaces or a leading ':'.
//
// This is a test-harness collaborator, not a performance-sensitive part of
// this package: it exists so round-trip tests can build wire lines without
// hand-assembled strings, not to be a general-purpose IRC client writer.
func Write(w io.Writer, command string, params ...string) error {
	var b strings.Builder
	b.WriteString(command)

	for i, p := range params {
		b.WriteByte(' ')
		last := i == len(params)-1
		if last && (strings.ContainsRune(p, ' ') || strings.HasPrefix(p, ":")) {
			b.WriteByte(':')
		}
		b.WriteString(p)
	}
	b.WriteString("\r\n")

	_, err := io.WriteString(w, b.String())
	if err != nil {
		return fmt.Errorf("tmi: write: %w", err)
	}
	return nil
}
