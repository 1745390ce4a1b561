package tmi

import "github.com/tmigo/tmi/internal/tagtable"

var tagLookup = buildTagLookup()

func buildTagLookup() *tagtable.Table {
	entries := make([]tagtable.Entry, 0, numKnownTags-1)
	for t := TagBadgeInfo; t < numKnownTags; t++ {
		entries = append(entries, tagtable.Entry{Key: tagNames[t], Value: int(t)})
	}
	return tagtable.New(entries)
}

// lookupTag maps a raw tag-key byte slice to its [Tag] enum value, or
// TagUnknown if the name isn't recognized.
func lookupTag(name []byte) Tag {
	if v, ok := tagLookup.Lookup(name); ok {
		return Tag(v)
	}
	return TagUnknown
}
