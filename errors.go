package tmi

import "fmt"

// ErrCode classifies why [Decode] rejected a frame. The only remediation
// available to a caller is to drop the message, so this stays a flat, small
// taxonomy rather than growing a case per required tag.
type ErrCode int

const (
	// ErrMissingField means a field [Decode] requires for this message kind
	// was absent (no such tag, no prefix nick, no channel, ...).
	ErrMissingField ErrCode = iota
	// ErrMalformedField means a required field was present but failed to
	// parse (a non-numeric tmi-sent-ts, WHISPER params with no " :", ...).
	ErrMalformedField
)

// MessageParseError is the single opaque error [Decode] returns when a
// frame cannot be converted into its typed message.
type MessageParseError struct {
	Code    ErrCode
	Command Command
	Field   string // best-effort; may be empty
}

// Error implements [error].
func (e *MessageParseError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("tmi: failed to decode %v message", e.Command)
	}
	return fmt.Sprintf("tmi: failed to decode %v message: field %q: %s", e.Command, e.Field, e.reason())
}

func (e *MessageParseError) reason() string {
	switch e.Code {
	case ErrMissingField:
		return "missing"
	case ErrMalformedField:
		return "malformed"
	default:
		return "invalid"
	}
}

func errMissing(cmd Command, field string) error {
	return &MessageParseError{Code: ErrMissingField, Command: cmd, Field: field}
}

func errMalformed(cmd Command, field string) error {
	return &MessageParseError{Code: ErrMalformedField, Command: cmd, Field: field}
}
