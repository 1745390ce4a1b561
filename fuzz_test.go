package tmi_test

import (
	"reflect"
	"testing"

	"github.com/tmigo/tmi"
	"github.com/tmigo/tmi/internal/fixtures"
)

// FuzzParse checks that Parse never panics on arbitrary input, and that a
// successful parse is deterministic: re-parsing the same bytes produces an
// identical Frame.
func FuzzParse(f *testing.F) {
	if cases, err := fixtures.Load("testdata/corpus.yaml"); err == nil {
		for _, tc := range cases {
			f.Add(tc.Line)
		}
	}
	f.Add("")
	f.Add("PING")
	f.Add(`@a=1;b=\s\:\\ :nick!user@host PRIVMSG #chan :hello ⸝ world`)

	f.Fuzz(func(t *testing.T, line string) {
		src := tmi.Source(line)
		frame, ok := tmi.Parse(src)
		if !ok {
			return
		}

		again, ok2 := tmi.Parse(src)
		if !ok2 {
			t.Fatalf("Parse(%q) succeeded once and failed on a repeat", line)
		}
		if !reflect.DeepEqual(frame, again) {
			t.Fatalf("Parse(%q) is not deterministic: %+v != %+v", line, frame, again)
		}

		// Decode must never panic, whatever it decides about the input.
		_, _ = tmi.Decode(frame)
	})
}
