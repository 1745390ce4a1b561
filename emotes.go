package tmi

import "strings"

// EmoteRange is one (emote_id, start, end) annotation pointing into a
// PRIVMSG's text, as produced by parsing the emotes tag.
type EmoteRange struct {
	EmoteID string
	Start   int
	End     int
}

// parseEmotes parses an emotes tag value of the form
// "id:start-end[,start-end]*[/id:...]*" into individual [EmoteRange]
// entries. A malformed range (non-numeric bounds, missing '-') is skipped
// rather than failing the whole message.
func parseEmotes(s string) []EmoteRange {
	if s == "" {
		return nil
	}

	var out []EmoteRange
	for _, group := range strings.Split(s, "/") {
		id, ranges, ok := strings.Cut(group, ":")
		if !ok {
			continue
		}
		for _, r := range strings.Split(ranges, ",") {
			startStr, endStr, ok := strings.Cut(r, "-")
			if !ok {
				continue
			}
			start, ok1 := parseUint(startStr)
			end, ok2 := parseUint(endStr)
			if !ok1 || !ok2 {
				continue
			}
			out = append(out, EmoteRange{EmoteID: id, Start: int(start), End: int(end)})
		}
	}
	return out
}
