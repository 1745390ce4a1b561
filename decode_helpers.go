package tmi

// fieldString resolves a required tag to its unescaped value.
func fieldString(f *Frame, cmd Command, tag Tag, field string) (string, error) {
	v, ok := f.Value(tag)
	if !ok {
		return "", errMissing(cmd, field)
	}
	return v.Get(), nil
}

// optString resolves an optional tag to its unescaped value.
func optString(f *Frame, tag Tag) (string, bool) {
	v, ok := f.Value(tag)
	if !ok {
		return "", false
	}
	return v.Get(), true
}

// fieldUint resolves a required tag as an unsigned 64-bit counter.
func fieldUint(f *Frame, cmd Command, tag Tag, field string) (uint64, error) {
	s, err := fieldString(f, cmd, tag, field)
	if err != nil {
		return 0, err
	}
	n, ok := parseUint(s)
	if !ok {
		return 0, errMalformed(cmd, field)
	}
	return n, nil
}

// optUint resolves an optional tag as an unsigned 64-bit counter. A
// malformed optional numeric tag degrades to absent rather than failing
// decode.
func optUint(f *Frame, tag Tag) (uint64, bool) {
	s, ok := optString(f, tag)
	if !ok {
		return 0, false
	}
	return parseUint(s)
}

// optInt resolves an optional tag as a signed 64-bit integer.
func optInt(f *Frame, tag Tag) (int64, bool) {
	s, ok := optString(f, tag)
	if !ok {
		return 0, false
	}
	return parseInt(s)
}

// optBool01 resolves an optional "0"/"1" tag to a bool; any non-"0" value
// is treated as true, matching Twitch's tolerant boolean tags.
func optBool01(f *Frame, tag Tag) (bool, bool) {
	s, ok := optString(f, tag)
	if !ok {
		return false, false
	}
	return s != "0", true
}

// fieldTimestamp resolves a required tmi-sent-ts-style tag.
func fieldTimestamp(f *Frame, cmd Command, tag Tag, field string) (int64, error) {
	s, err := fieldString(f, cmd, tag, field)
	if err != nil {
		return 0, err
	}
	ts, ok := parseInt(s)
	if !ok {
		return 0, errMalformed(cmd, field)
	}
	return ts, nil
}

// fieldChannel resolves the frame's required channel.
func fieldChannel(f *Frame, cmd Command) (string, error) {
	ch, ok := f.Channel()
	if !ok {
		return "", errMissing(cmd, "channel")
	}
	return ch, nil
}

// fieldNick resolves the frame's required prefix nick.
func fieldNick(f *Frame, cmd Command) (string, error) {
	if !f.HasPrefix || !f.Prefix.HasNick() {
		return "", errMissing(cmd, "prefix nick")
	}
	nick, _ := f.Prefix.Nick(f.Src)
	return nick, nil
}

// fieldParams resolves the frame's required raw params.
func fieldParams(f *Frame, cmd Command) (string, error) {
	p, ok := f.Params()
	if !ok {
		return "", errMissing(cmd, "params")
	}
	return p, nil
}

// fieldBadges resolves the required badges/badge-info pair into merged
// [BadgeData].
func fieldBadges(f *Frame, cmd Command) ([]BadgeData, error) {
	badges, err := fieldString(f, cmd, TagBadges, "badges")
	if err != nil {
		return nil, err
	}
	info, err := fieldString(f, cmd, TagBadgeInfo, "badge-info")
	if err != nil {
		return nil, err
	}
	return mergeBadges(parseBadgeList(badges), parseBadgeList(info)), nil
}

// optBadges resolves an optional badges/badge-info pair; absence of either
// tag degrades to an empty list rather than failing decode.
func optBadges(f *Frame) []BadgeData {
	badges, _ := optString(f, TagBadges)
	info, _ := optString(f, TagBadgeInfo)
	return mergeBadges(parseBadgeList(badges), parseBadgeList(info))
}

// optEmotes resolves the optional emotes tag.
func optEmotes(f *Frame) []EmoteRange {
	s, ok := optString(f, TagEmotes)
	if !ok {
		return nil
	}
	return parseEmotes(s)
}
