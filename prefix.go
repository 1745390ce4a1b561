package tmi

// Prefix is the optional sender identity of a message, in nick!user@host or
// host form.
//
// Invariants: HostSpan is always present when a Prefix exists; if
// UserSpan is present then NickSpan is present too (nick!user@host form).
// Twitch deviates from RFC 1459 by never requiring a bare nick (with no '@')
// to mean anything but a host. This package follows that deviation and
// treats such a prefix as host-only.
type Prefix struct {
	NickSpan Span
	UserSpan Span
	HostSpan Span

	hasNick bool
	hasUser bool
}

// HasNick reports whether this prefix carries a nick span.
func (p Prefix) HasNick() bool { return p.hasNick }

// HasUser reports whether this prefix carries a user span.
func (p Prefix) HasUser() bool { return p.hasUser }

// Nick resolves the nick span against src, if present.
func (p Prefix) Nick(src Source) (string, bool) {
	if !p.hasNick {
		return "", false
	}
	return p.NickSpan.String(src), true
}

// Host resolves the host span against src.
func (p Prefix) Host(src Source) string {
	return p.HostSpan.String(src)
}
