package tmi

import "time"

// ClearChatActionKind discriminates the three things a CLEARCHAT can mean.
type ClearChatActionKind int

const (
	// ClearChatActionClear means the entire chat history was cleared.
	ClearChatActionClear ClearChatActionKind = iota
	// ClearChatActionBan means a single user was permanently banned.
	ClearChatActionBan
	// ClearChatActionTimeOut means a single user was timed out.
	ClearChatActionTimeOut
)

// ClearChatAction is the specific action a [ClearChat] represents. User and
// UserID are only set for Ban and TimeOut; Duration is only set for
// TimeOut.
type ClearChatAction struct {
	Kind     ClearChatActionKind
	User     string
	UserID   string
	Duration uint64 // seconds
}

// ClearChat is sent when a user, or the entire chat, is cleared of
// messages.
type ClearChat struct {
	Channel   string
	ChannelID string
	Action    ClearChatAction
	Timestamp int64
}

// Kind implements [Message].
func (ClearChat) Kind() MessageKind { return KindClearChat }

// SentAt returns the message's tmi-sent-ts tag as a UTC time.
func (c ClearChat) SentAt() time.Time { return timestampToTime(c.Timestamp) }

func decodeClearChat(f *Frame) (ClearChat, error) {
	const cmd = CommandClearChat

	channel, err := fieldChannel(f, cmd)
	if err != nil {
		return ClearChat{}, err
	}
	channelID, err := fieldString(f, cmd, TagRoomID, "room-id")
	if err != nil {
		return ClearChat{}, err
	}
	timestamp, err := fieldTimestamp(f, cmd, TagTmiSentTS, "tmi-sent-ts")
	if err != nil {
		return ClearChat{}, err
	}

	action := ClearChatAction{Kind: ClearChatActionClear}
	if user, ok := messageText(f); ok {
		userID, err := fieldString(f, cmd, TagTargetUserID, "target-user-id")
		if err != nil {
			return ClearChat{}, err
		}
		if duration, ok := optUint(f, TagBanDuration); ok {
			action = ClearChatAction{Kind: ClearChatActionTimeOut, User: user, UserID: userID, Duration: duration}
		} else {
			action = ClearChatAction{Kind: ClearChatActionBan, User: user, UserID: userID}
		}
	}

	return ClearChat{
		Channel:   channel,
		ChannelID: channelID,
		Action:    action,
		Timestamp: timestamp,
	}, nil
}
