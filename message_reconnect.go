package tmi

// Reconnect tells a client to close its connection and reconnect, typically
// ahead of planned server maintenance. It carries no fields.
type Reconnect struct{}

// Kind implements [Message].
func (Reconnect) Kind() MessageKind { return KindReconnect }

func decodeReconnect(f *Frame) (Reconnect, error) {
	return Reconnect{}, nil
}
