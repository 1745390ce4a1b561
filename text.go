package tmi

import "strings"

const (
	actionEnvelope = "\x01"
	actionPrefix   = actionEnvelope + "ACTION "
)

// stripAction strips the /me envelope ("\x01ACTION <text>\x01") from a
// PRIVMSG or CLEARMSG text, if present.
func stripAction(s string) (string, bool) {
	if strings.HasPrefix(s, actionPrefix) && strings.HasSuffix(s, actionEnvelope) &&
		len(s) >= len(actionPrefix)+len(actionEnvelope) {
		return s[len(actionPrefix) : len(s)-len(actionEnvelope)], true
	}
	return s, false
}

// messageText returns the contents of a frame's params after the first
// ':', or the full params if none is present. [Parse] draws no distinction
// between middle and trailing params, so this is where that distinction is
// recovered.
func messageText(f *Frame) (string, bool) {
	params, ok := f.Params()
	if !ok {
		return "", false
	}
	if i := strings.IndexByte(params, ':'); i >= 0 {
		return params[i+1:], true
	}
	return params, true
}

// splitWhisperParams splits a WHISPER's params on the first " :": left is
// the recipient, right is the text.
func splitWhisperParams(params string) (recipient, text string, ok bool) {
	return strings.Cut(params, " :")
}
