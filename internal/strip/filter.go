// Package strip removes C-family line (//) and block (/* */) comments from
// text while leaving single- and double-quoted string literals untouched,
// including escaped quotes inside them.
//
// The filter is a single-pass finite state machine: each state consumes one
// rune, decides what to emit, and names the next state. Malformed input
// (an unterminated string or comment) is not an error; the machine runs to
// end of input and returns whatever was accumulated.
package strip

// TraceFunc receives one call per state change of the filter.
type TraceFunc func(from, to State)

// Filter drives the comment-stripping state machine. The zero value is
// ready to use, and a Filter may be reused across RemoveComments calls.
// A Filter must not be shared between goroutines.
type Filter struct {
	// Trace, when non-nil, is called on every state change.
	Trace TraceFunc

	current   State
	behaviors map[State]behavior
}

// RemoveComments runs text through the state machine and returns it with
// comments removed. It always succeeds; see the package comment for the
// treatment of malformed input.
func (f *Filter) RemoveComments(text string) string {
	io := newInputOutput(text)
	f.current = Initial

	for f.current != Done {
		f.setState(f.behavior(f.current).step(io))
	}

	return io.result()
}

// setState transitions to next, reporting the change to Trace. A self
// transition is not a change and is not reported.
func (f *Filter) setState(next State) {
	if next == f.current {
		return
	}

	if f.Trace != nil {
		f.Trace(f.current, next)
	}
	f.current = next
}

// behavior returns the behavior for s, constructing it on first use. The
// cache holds at most one behavior per state.
func (f *Filter) behavior(s State) behavior {
	if f.behaviors == nil {
		f.behaviors = make(map[State]behavior)
	}

	b, ok := f.behaviors[s]
	if !ok {
		b = newBehavior(s)
		f.behaviors[s] = b
	}

	return b
}

// RemoveComments strips C-family comments from text using a fresh Filter.
func RemoveComments(text string) string {
	var f Filter
	return f.RemoveComments(text)
}
