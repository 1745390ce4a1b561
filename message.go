package tmi

// MessageKind identifies which typed message a [Message] carries.
type MessageKind int

const (
	KindOther MessageKind = iota
	KindClearChat
	KindClearMsg
	KindGlobalUserState
	KindJoin
	KindNotice
	KindPart
	KindPing
	KindPong
	KindPrivmsg
	KindReconnect
	KindRoomState
	KindUserNotice
	KindUserState
	KindWhisper
)

// Message is the common interface implemented by every typed message kind
// L4 can decode a [Frame] into.
type Message interface {
	Kind() MessageKind
}

// Other wraps a [Frame] whose command has no typed representation: an
// unrecognized command word, or a recognized one with no decoder of its own
// (CAP and the login numerics). This is not an error condition (see
// errors.go): such frames route here instead of failing decode.
type Other struct {
	Frame Frame
}

// Kind implements [Message].
func (Other) Kind() MessageKind { return KindOther }
