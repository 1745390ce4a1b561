package tmi

import (
	"github.com/tmigo/tmi/internal/simdscan"
	"github.com/tmigo/tmi/internal/span"
)

// Parse parses exactly one line (with any trailing CRLF already stripped)
// into a [Frame].
//
// Parse returns false only when the command segment is empty or missing;
// every other malformation (unterminated tag list, missing prefix, missing
// channel, ...) degrades gracefully into a best-effort Frame with the
// corresponding optional parts left unset.
func Parse(src Source) (Frame, bool) {
	var f Frame
	f.Src = src

	n := len(src)
	pos := 0

	if pos < n && src[pos] == '@' {
		pos++
		tagsEnd, next := scanSegment(src, pos)
		parseTags(&f, src[pos:tagsEnd], pos)
		pos = next
	}

	if pos < n && src[pos] == ':' {
		pos++
		prefixEnd, next := scanSegment(src, pos)
		parsePrefix(&f, src[pos:prefixEnd], pos)
		pos = next
	}

	cmdEnd, next := scanSegment(src, pos)
	if cmdEnd == pos {
		return Frame{}, false
	}
	setCommand(&f, src[pos:cmdEnd], pos)
	pos = next

	if pos < n && src[pos] == '#' {
		chEnd, next := scanSegment(src, pos)
		f.HasChannel = true
		f.ChannelSpan = span.Between(pos, chEnd)
		pos = next
	}

	if pos < n {
		f.HasParams = true
		f.ParamsSpan = span.Between(pos, n)
	}

	return f, true
}

// scanSegment finds the end of the space-delimited segment starting at pos,
// returning (segmentEnd, positionAfterSeparatingSpace). If no further space
// exists, both values are len(src): end-of-line acts as the terminator, so a
// line missing its terminating whitespace still parses.
func scanSegment(src Source, pos int) (segEnd, afterSep int) {
	rel := simdscan.FindByte(src[pos:], ' ')
	if rel < 0 {
		return len(src), len(src)
	}
	end := pos + rel
	return end, end + 1
}

// parseTags walks the byte range [base, base+len(data)) of the source as
// alternating Key/Value states: splitting on '=' while in Key state, on ';'
// while in Value state. It uses the combined kernel ([simdscan.FindAny])
// rather than two separate single-byte scans, consuming hits in order and
// skipping any that don't belong to the current state. An '=' seen while in
// Value state is data, not a delimiter, which is how a URL inside a tag
// value survives intact.
func parseTags(f *Frame, data []byte, base int) {
	n := len(data)
	i := 0
	for i < n {
		keyStart := i
		eq, d := findDelim(data, i, simdscan.DelimEquals, simdscan.DelimSemicolon)
		if eq < 0 {
			// Lone key with no '=' trailing to end-of-line: dropped.
			return
		}
		if d == simdscan.DelimSemicolon {
			// Lone key with no '=': dropped.
			i = eq + 1
			continue
		}

		valEnd, _ := findDelim(data, eq+1, simdscan.DelimSemicolon)
		if valEnd < 0 {
			valEnd = n
			i = n
		} else {
			i = valEnd + 1
		}

		f.Tags.push(TagPair{
			KeyStart: int32(base + keyStart),
			KeyLen:   int32(eq - keyStart),
			ValueLen: int32(valEnd - eq - 1),
		})
	}
}

// findDelim scans data[from:] for the first occurrence of any delimiter in
// want, skipping over any other delimiter [simdscan.FindAny] reports along
// the way (treating it as ordinary data rather than a stop condition).
// Returns -1 if none of the wanted delimiters occurs before end-of-data.
func findDelim(data []byte, from int, want ...simdscan.Delim) (int, simdscan.Delim) {
	pos := from
	for pos < len(data) {
		off, d := simdscan.FindAny(data[pos:])
		if off < 0 {
			return -1, simdscan.DelimNone
		}
		abs := pos + off
		for _, w := range want {
			if d == w {
				return abs, d
			}
		}
		pos = abs + 1
	}
	return -1, simdscan.DelimNone
}

// parsePrefix parses the byte range [base, base+len(data)) as a prefix body
// (everything between the leading ':' and the following space).
func parsePrefix(f *Frame, data []byte, base int) {
	f.HasPrefix = true

	at := simdscan.FindByte(data, '@')
	if at < 0 {
		// Twitch deviation: a bare span with no '@' is a host, not a nick.
		f.Prefix.HostSpan = span.Between(base, base+len(data))
		return
	}

	f.Prefix.HostSpan = span.Between(base+at+1, base+len(data))

	left := data[:at]
	bang := simdscan.FindByte(left, '!')
	if bang < 0 {
		f.Prefix.NickSpan = span.Between(base, base+at)
		f.Prefix.hasNick = true
		return
	}

	f.Prefix.NickSpan = span.Between(base, base+bang)
	f.Prefix.hasNick = true
	f.Prefix.UserSpan = span.Between(base+bang+1, base+at)
	f.Prefix.hasUser = true
}

// setCommand classifies the command word located at [base, base+len(word))
// against the fixed dictionary, recording its span if unrecognized.
func setCommand(f *Frame, word []byte, base int) {
	if cmd, ok := commandDict[string(word)]; ok {
		f.Command = cmd
		return
	}
	f.Command = CommandOther
	f.CommandSpan = span.Between(base, base+len(word))
}
