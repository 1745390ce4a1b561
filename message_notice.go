package tmi

// Notice carries a server-side informational or error message, identified
// by the msg-id tag documented at dev.twitch.tv/docs/irc/msg-id.
//
// Channel and ID are both absent on the handful of notices Twitch sends
// before a client completes login.
type Notice struct {
	Channel    string
	HasChannel bool
	Text       string
	ID         string
	HasID      bool
}

// Kind implements [Message].
func (Notice) Kind() MessageKind { return KindNotice }

func decodeNotice(f *Frame) (Notice, error) {
	var n Notice
	if ch, ok := f.Channel(); ok {
		n.Channel = ch
		n.HasChannel = true
	}

	text, ok := messageText(f)
	if !ok {
		return Notice{}, errMissing(CommandNotice, "text")
	}
	n.Text = text

	if id, ok := optString(f, TagMsgID); ok {
		n.ID = id
		n.HasID = true
	}
	return n, nil
}
