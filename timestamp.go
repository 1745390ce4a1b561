package tmi

import "time"

// timestampToTime converts a tmi-sent-ts-style millisecond count to a UTC
// [time.Time]. Negative values have been observed in the wild and are
// accepted without clamping; [time.UnixMilli] handles them natively.
func timestampToTime(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
