package dbg

import "fmt"

// Formatter defers formatting work until a value is actually rendered with
// %v, so building a debug view of a frame costs nothing unless it is
// printed.
type Formatter func(s fmt.State)

func (f Formatter) Format(s fmt.State, verb rune) {
	if verb != 'v' {
		fmt.Fprintf(s, "%%!%c(dbg.Formatter)", verb)
		return
	}
	f(s)
}

func (f Formatter) String() string { return fmt.Sprint(f) }

// Fprintf is like fmt.Fprintf, but the printing is delayed until the
// returned value is formatted with %v.
func Fprintf(format string, args ...any) Formatter {
	return Formatter(func(s fmt.State) { fmt.Fprintf(s, format, args...) })
}

// Dict renders a frame-shaped debug dictionary: a prefix (typically the
// command) followed by braced key: value entries. Entries with a nil value
// are skipped, so an absent optional part of a frame passed as nil (such as
// a missing channel) simply doesn't appear.
func Dict(prefix any, kv ...any) Formatter {
	return Formatter(func(s fmt.State) {
		if len(kv)%2 != 0 {
			panic("dbg: Dict needs an even number of key/value arguments")
		}

		if prefix == nil {
			prefix = ""
		}

		first := true
		fmt.Fprintf(s, "%v{", prefix)
		for i := 0; i < len(kv); i += 2 {
			k, v := kv[i], kv[i+1]
			if v == nil {
				continue
			}

			if !first {
				fmt.Fprint(s, ", ")
			}
			first = false
			fmt.Fprintf(s, "%v: %v", k, v)
		}
		fmt.Fprint(s, "}")
	})
}
