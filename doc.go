// Package tmi is a zero-copy, allocation-free parser and typed decoder for
// Twitch's IRCv3 dialect.
//
// The package is layered bottom-up:
//
//   - internal/simdscan locates delimiter bytes in the wire format.
//   - [Parse] (L2) splits one line into a [Frame]: byte-offset spans over
//     the tags, prefix, command, channel, and params, all referencing the
//     input without copying it.
//   - [Frame.Tag] and [Value] (L3) resolve a tag span to a [Tag] enum
//     member and lazily unescape its value on first read.
//   - [Decode] (L4) turns a [Frame] into one of the ~14 typed [Message]
//     kinds, validating and converting the fields each kind requires.
//
// # Support status
//
// This package targets Twitch's IRC dialect specifically, not general
// IRCv3 compliance. It does not implement a client, connection handling,
// reconnection, or rate limiting. See [Write] for the one collaborator
// this package does provide, a minimal line writer for round-tripping
// messages in tests.
package tmi
