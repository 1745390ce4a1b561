package tmi

import "strings"

// UserState is sent on joining a channel, or after successfully sending a
// PRIVMSG to one. It carries the same shape as [GlobalUserState] but
// reflects channel-specific badges and emote sets.
type UserState struct {
	Channel   string
	UserName  string
	Badges    []BadgeData
	EmoteSets []string
	Color     string
	HasColor  bool
}

// Kind implements [Message].
func (UserState) Kind() MessageKind { return KindUserState }

func decodeUserState(f *Frame) (UserState, error) {
	const cmd = CommandUserState

	channel, err := fieldChannel(f, cmd)
	if err != nil {
		return UserState{}, err
	}
	userName, err := fieldString(f, cmd, TagDisplayName, "display-name")
	if err != nil {
		return UserState{}, err
	}
	badges, err := fieldBadges(f, cmd)
	if err != nil {
		return UserState{}, err
	}

	u := UserState{Channel: channel, UserName: userName, Badges: badges}
	if sets, ok := optString(f, TagEmoteSets); ok && sets != "" {
		u.EmoteSets = strings.Split(sets, ",")
	}
	if color, ok := optString(f, TagColor); ok && color != "" {
		u.Color, u.HasColor = color, true
	}
	return u, nil
}
