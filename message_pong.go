package tmi

// Pong answers a [Ping], echoing its nonce if it had one.
type Pong struct {
	Nonce    string
	HasNonce bool
}

// Kind implements [Message].
func (Pong) Kind() MessageKind { return KindPong }

func decodePong(f *Frame) (Pong, error) {
	var p Pong
	if text, ok := messageText(f); ok {
		p.Nonce = text
		p.HasNonce = true
	}
	return p, nil
}
