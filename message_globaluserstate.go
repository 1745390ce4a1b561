package tmi

import "strings"

// GlobalUserState is sent once, immediately after a successful login.
type GlobalUserState struct {
	ID        string
	Name      string
	Badges    []BadgeData
	EmoteSets []string
	Color     string
	HasColor  bool
}

// Kind implements [Message].
func (GlobalUserState) Kind() MessageKind { return KindGlobalUserState }

func decodeGlobalUserState(f *Frame) (GlobalUserState, error) {
	const cmd = CommandGlobalUserState

	id, err := fieldString(f, cmd, TagUserID, "user-id")
	if err != nil {
		return GlobalUserState{}, err
	}
	name, err := fieldString(f, cmd, TagDisplayName, "display-name")
	if err != nil {
		return GlobalUserState{}, err
	}

	g := GlobalUserState{
		ID:     id,
		Name:   name,
		Badges: optBadges(f),
	}
	if sets, ok := optString(f, TagEmoteSets); ok && sets != "" {
		g.EmoteSets = strings.Split(sets, ",")
	}
	if color, ok := optString(f, TagColor); ok && color != "" {
		g.Color, g.HasColor = color, true
	}
	return g, nil
}
