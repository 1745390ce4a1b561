package tmi

// Whisper is a direct message between two users, not tied to any channel.
type Whisper struct {
	Recipient string
	Sender    User
	Text      string
	Badges    []BadgeData
	Emotes    []EmoteRange
	Color     string
	HasColor  bool
}

// Kind implements [Message].
func (Whisper) Kind() MessageKind { return KindWhisper }

func decodeWhisper(f *Frame) (Whisper, error) {
	const cmd = CommandWhisper

	params, err := fieldParams(f, cmd)
	if err != nil {
		return Whisper{}, err
	}
	recipient, text, ok := splitWhisperParams(params)
	if !ok {
		return Whisper{}, errMalformed(cmd, "params")
	}

	userID, err := fieldString(f, cmd, TagUserID, "user-id")
	if err != nil {
		return Whisper{}, err
	}
	nick, err := fieldNick(f, cmd)
	if err != nil {
		return Whisper{}, err
	}
	displayName, err := fieldString(f, cmd, TagDisplayName, "display-name")
	if err != nil {
		return Whisper{}, err
	}
	badges, err := fieldBadges(f, cmd)
	if err != nil {
		return Whisper{}, err
	}

	w := Whisper{
		Recipient: recipient,
		Sender:    User{ID: userID, Login: nick, Name: displayName},
		Text:      text,
		Badges:    badges,
		Emotes:    optEmotes(f),
	}
	if color, ok := optString(f, TagColor); ok && color != "" {
		w.Color, w.HasColor = color, true
	}
	return w, nil
}
