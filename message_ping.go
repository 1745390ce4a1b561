package tmi

// Ping is sent regularly by Twitch's chat servers to check that a client is
// still alive; it must be answered with a [Pong] carrying the same nonce.
type Ping struct {
	Nonce    string
	HasNonce bool
}

// Kind implements [Message].
func (Ping) Kind() MessageKind { return KindPing }

func decodePing(f *Frame) (Ping, error) {
	var p Ping
	if text, ok := messageText(f); ok {
		p.Nonce = text
		p.HasNonce = true
	}
	return p, nil
}
