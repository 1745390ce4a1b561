package tmi

// Part announces that a user left a channel.
type Part struct {
	Channel string
	User    string
}

// Kind implements [Message].
func (Part) Kind() MessageKind { return KindPart }

func decodePart(f *Frame) (Part, error) {
	channel, err := fieldChannel(f, CommandPart)
	if err != nil {
		return Part{}, err
	}
	user, err := fieldNick(f, CommandPart)
	if err != nil {
		return Part{}, err
	}
	return Part{Channel: channel, User: user}, nil
}
