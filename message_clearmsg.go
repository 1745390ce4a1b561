package tmi

import "time"

// ClearMsg is sent when a single message is deleted from a channel.
type ClearMsg struct {
	Channel   string
	ChannelID string
	Sender    string
	MessageID string
	Text      string
	IsAction  bool
	Timestamp int64
}

// Kind implements [Message].
func (ClearMsg) Kind() MessageKind { return KindClearMsg }

// SentAt returns the message's tmi-sent-ts tag as a UTC time.
func (c ClearMsg) SentAt() time.Time { return timestampToTime(c.Timestamp) }

func decodeClearMsg(f *Frame) (ClearMsg, error) {
	const cmd = CommandClearMsg

	channel, err := fieldChannel(f, cmd)
	if err != nil {
		return ClearMsg{}, err
	}
	channelID, err := fieldString(f, cmd, TagRoomID, "room-id")
	if err != nil {
		return ClearMsg{}, err
	}
	sender, err := fieldString(f, cmd, TagLogin, "login")
	if err != nil {
		return ClearMsg{}, err
	}
	messageID, err := fieldString(f, cmd, TagTargetMsgID, "target-msg-id")
	if err != nil {
		return ClearMsg{}, err
	}
	timestamp, err := fieldTimestamp(f, cmd, TagTmiSentTS, "tmi-sent-ts")
	if err != nil {
		return ClearMsg{}, err
	}
	rawText, ok := messageText(f)
	if !ok {
		return ClearMsg{}, errMissing(cmd, "text")
	}
	text, isAction := stripAction(rawText)

	return ClearMsg{
		Channel:   channel,
		ChannelID: channelID,
		Sender:    sender,
		MessageID: messageID,
		Text:      text,
		IsAction:  isAction,
		Timestamp: timestamp,
	}, nil
}
