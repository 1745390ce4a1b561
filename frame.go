package tmi

import (
	"fmt"

	"github.com/tmigo/tmi/internal/dbg"
)

// Frame is the hand-off type between the L2 frame parser and the L4 typed
// decoder: one parsed IRC line, as spans over its source.
//
// A Frame's spans are only meaningful relative to the exact Source it was
// parsed from (held alongside it, as Src). Frame values are safe to share
// read-only across goroutines, and to copy by value; copying a Frame never
// copies the underlying source bytes.
type Frame struct {
	Src Source

	Tags TagList

	HasPrefix bool
	Prefix    Prefix

	Command     Command
	CommandSpan Span // populated when Command == CommandOther

	HasChannel  bool
	ChannelSpan Span

	HasParams  bool
	ParamsSpan Span
}

// Channel resolves the channel name (including the leading '#'), if present.
func (f *Frame) Channel() (string, bool) {
	if !f.HasChannel {
		return "", false
	}
	return f.ChannelSpan.String(f.Src), true
}

// Params resolves the raw params span, if present.
func (f *Frame) Params() (string, bool) {
	if !f.HasParams {
		return "", false
	}
	return f.ParamsSpan.String(f.Src), true
}

// Tag looks up a known tag's value span directly, without a full [Decode].
func (f *Frame) Tag(name Tag) (Span, bool) {
	return f.Tags.GetTag(f.Src, name)
}

// RawTag looks up a tag by its literal wire name, including unknown tags.
func (f *Frame) RawTag(name string) (Span, bool) {
	return f.Tags.Get(f.Src, name)
}

// Value looks up a known tag and returns a lazily-unescaped [Value] over it.
func (f *Frame) Value(name Tag) (Value, bool) {
	sp, ok := f.Tags.GetTag(f.Src, name)
	if !ok {
		return Value{}, false
	}
	return newValue(f.Src, sp), true
}

// IntoOwned copies the source buffer, producing an [OwnedFrame] whose
// lifetime is independent of whatever buffer f.Src was borrowed from.
//
// Spans are plain integer offsets rather than pointers, so they carry over
// unchanged: copying the source is the only work needed to detach a Frame's
// lifetime.
func (f *Frame) IntoOwned() OwnedFrame {
	owned := make(Source, len(f.Src))
	copy(owned, f.Src)

	clone := *f
	clone.Src = owned
	return OwnedFrame{clone}
}

// OwnedFrame is a [Frame] that owns a private copy of its source buffer.
type OwnedFrame struct {
	Frame
}

// Format implements [fmt.Formatter], printing a debug view of the frame's
// shape (command, channel, tag count) without resolving every span. Useful
// when logging a frame a transport collaborator failed to decode.
func (f Frame) Format(s fmt.State, verb rune) {
	var channel any
	if ch, ok := f.Channel(); ok {
		channel = ch
	}
	dbg.Dict(f.Command,
		"channel", channel,
		"tags", f.Tags.Len(),
		"prefix", dbg.Fprintf("%v", f.HasPrefix),
	).Format(s, verb)
}
