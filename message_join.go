package tmi

// Join announces that a user joined a channel.
type Join struct {
	Channel string
	User    string
}

// Kind implements [Message].
func (Join) Kind() MessageKind { return KindJoin }

func decodeJoin(f *Frame) (Join, error) {
	channel, err := fieldChannel(f, CommandJoin)
	if err != nil {
		return Join{}, err
	}
	user, err := fieldNick(f, CommandJoin)
	if err != nil {
		return Join{}, err
	}
	return Join{Channel: channel, User: user}, nil
}
