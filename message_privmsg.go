package tmi

import "time"

// Privmsg is a chat message delivered to a channel.
type Privmsg struct {
	Channel   string
	ChannelID string
	MessageID string
	Sender    User
	Text      string
	IsAction  bool
	Badges    []BadgeData
	Color     string
	HasColor  bool
	Bits      uint64
	HasBits   bool
	Emotes    []EmoteRange
	Timestamp int64 // milliseconds since the Unix epoch, UTC
}

// Kind implements [Message].
func (Privmsg) Kind() MessageKind { return KindPrivmsg }

// SentAt returns the message's tmi-sent-ts tag as a UTC time.
func (p Privmsg) SentAt() time.Time { return timestampToTime(p.Timestamp) }

func decodePrivmsg(f *Frame) (Privmsg, error) {
	const cmd = CommandPrivmsg

	channel, err := fieldChannel(f, cmd)
	if err != nil {
		return Privmsg{}, err
	}
	channelID, err := fieldString(f, cmd, TagRoomID, "room-id")
	if err != nil {
		return Privmsg{}, err
	}
	messageID, err := fieldString(f, cmd, TagID, "id")
	if err != nil {
		return Privmsg{}, err
	}
	userID, err := fieldString(f, cmd, TagUserID, "user-id")
	if err != nil {
		return Privmsg{}, err
	}
	nick, err := fieldNick(f, cmd)
	if err != nil {
		return Privmsg{}, err
	}
	displayName, err := fieldString(f, cmd, TagDisplayName, "display-name")
	if err != nil {
		return Privmsg{}, err
	}
	timestamp, err := fieldTimestamp(f, cmd, TagTmiSentTS, "tmi-sent-ts")
	if err != nil {
		return Privmsg{}, err
	}
	badges, err := fieldBadges(f, cmd)
	if err != nil {
		return Privmsg{}, err
	}

	rawText, ok := messageText(f)
	if !ok {
		return Privmsg{}, errMissing(cmd, "text")
	}
	text, isAction := stripAction(rawText)

	p := Privmsg{
		Channel:   channel,
		ChannelID: channelID,
		MessageID: messageID,
		Sender:    User{ID: userID, Login: nick, Name: displayName},
		Text:      text,
		IsAction:  isAction,
		Badges:    badges,
		Emotes:    optEmotes(f),
		Timestamp: timestamp,
	}
	if color, ok := optString(f, TagColor); ok && color != "" {
		p.Color, p.HasColor = color, true
	}
	if bits, ok := optUint(f, TagBits); ok {
		p.Bits, p.HasBits = bits, true
	}
	return p, nil
}
