package tmi

// FollowersOnlyKind discriminates whether a channel's followers-only mode is
// disabled or enabled.
type FollowersOnlyKind int

const (
	// FollowersOnlyDisabled means anyone may chat, subject to other room
	// settings.
	FollowersOnlyDisabled FollowersOnlyKind = iota
	// FollowersOnlyEnabled means only followers may chat, optionally only
	// those who have followed for at least MinFollowMinutes.
	FollowersOnlyEnabled
)

// FollowersOnly is the decoded followers-only tri-state: negative raw
// values mean [FollowersOnlyDisabled]; zero means enabled with no minimum
// follow age; a positive raw value means enabled with that many minutes as
// the minimum follow age.
type FollowersOnly struct {
	Kind             FollowersOnlyKind
	MinFollowMinutes int64
	HasMinFollow     bool
}

// RoomState is a partial update to a channel's settings: every field is
// optional, since Twitch only sends the settings that changed.
type RoomState struct {
	Channel   string
	ChannelID string

	EmoteOnly    bool
	HasEmoteOnly bool

	FollowersOnly    FollowersOnly
	HasFollowersOnly bool

	R9K    bool
	HasR9K bool

	Slow    uint64
	HasSlow bool

	SubsOnly    bool
	HasSubsOnly bool
}

// Kind implements [Message].
func (RoomState) Kind() MessageKind { return KindRoomState }

func decodeRoomState(f *Frame) (RoomState, error) {
	const cmd = CommandRoomState

	channel, err := fieldChannel(f, cmd)
	if err != nil {
		return RoomState{}, err
	}

	rs := RoomState{Channel: channel}
	rs.ChannelID, _ = optString(f, TagRoomID)

	if v, ok := optBool01(f, TagEmoteOnly); ok {
		rs.EmoteOnly, rs.HasEmoteOnly = v, true
	}
	if v, ok := optBool01(f, TagR9K); ok {
		rs.R9K, rs.HasR9K = v, true
	}
	if v, ok := optBool01(f, TagSubsOnly); ok {
		rs.SubsOnly, rs.HasSubsOnly = v, true
	}
	if v, ok := optUint(f, TagSlow); ok {
		rs.Slow, rs.HasSlow = v, true
	}
	if n, ok := optInt(f, TagFollowersOnly); ok {
		rs.HasFollowersOnly = true
		switch {
		case n < 0:
			rs.FollowersOnly = FollowersOnly{Kind: FollowersOnlyDisabled}
		case n == 0:
			rs.FollowersOnly = FollowersOnly{Kind: FollowersOnlyEnabled}
		default:
			rs.FollowersOnly = FollowersOnly{Kind: FollowersOnlyEnabled, MinFollowMinutes: n, HasMinFollow: true}
		}
	}

	return rs, nil
}
