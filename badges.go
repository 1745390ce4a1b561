package tmi

import "strings"

// Badge is one entry from a badges or badge-info tag: a name/version pair.
type Badge struct {
	Name    string
	Version string
}

// BadgeData merges one badges entry with the matching badge-info entry (by
// name): badge-info's value, when present for the same badge name, is
// surfaced as Extra (its most common use is the subscriber badge's month
// count).
type BadgeData struct {
	Name    string
	Version string
	Extra   string // from badge-info, "" if absent
}

// parseBadgeList parses a comma-separated "name/version,name2/version2"
// tag value into individual [Badge] entries. Malformed entries (missing the
// '/') are skipped rather than failing the whole message: badges are
// additive decoration, not load-bearing fields.
func parseBadgeList(s string) []Badge {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]Badge, 0, len(parts))
	for _, p := range parts {
		name, version, ok := strings.Cut(p, "/")
		if !ok {
			continue
		}
		out = append(out, Badge{Name: name, Version: version})
	}
	return out
}

// mergeBadges merges badges with the same-named entries from badgeInfo into
// [BadgeData].
func mergeBadges(badges, badgeInfo []Badge) []BadgeData {
	info := make(map[string]string, len(badgeInfo))
	for _, b := range badgeInfo {
		info[b.Name] = b.Version
	}

	out := make([]BadgeData, 0, len(badges))
	for _, b := range badges {
		out = append(out, BadgeData{
			Name:    b.Name,
			Version: b.Version,
			Extra:   info[b.Name],
		})
	}
	return out
}

// SubscriberMonths returns the subscriber badge-info value as a month
// count, if the subscriber badge is present and its extra value parses as
// an integer.
func SubscriberMonths(badges []BadgeData) (int, bool) {
	for _, b := range badges {
		if b.Name == "subscriber" && b.Extra != "" {
			if n, ok := parseUint(b.Extra); ok {
				return int(n), true
			}
		}
	}
	return 0, false
}
