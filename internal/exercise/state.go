package exercise

import (
	"fmt"
	"io"

	"decomment/internal/display"
	"decomment/internal/strip"
)

// stateSampleText is the text filtered by the State exercise. It covers the
// interesting cases: line and block comments, a comment-like sequence inside
// a block comment, escaped quotes, and comment markers inside string
// literals.
const stateSampleText = "//########################################################################\n" +
	"//########################################################################\n" +
	"// A comment.  /* A nested comment */\n" +
	"\n" +
	"void stripExercise() // An exercise in state machines\n" +
	"{\n" +
	"    char character = '\\\"';\n" +
	"    std::cout << std::endl;\n" +
	"    std::cout << \"\\\"State\\\" /*Exercise*/\" << std::endl;\n" +
	"\n" +
	"    Filter filterContext;\n" +
	"\n" +
	"    std::cout << \"\\t\\tDone. //(No, really)//\" << std::endl;\n" +
	"}"

// State demonstrates the comment-stripping state machine: the sample text is
// shown with line numbers, filtered, and shown again.
func State(w io.Writer, trace bool) error {
	fmt.Fprintln(w)
	fmt.Fprintln(w, display.Banner("State"))

	fmt.Fprintln(w, "  Text to filter:")
	fmt.Fprint(w, display.NumberedLines(stateSampleText))

	fmt.Fprintln(w, "  Filtering text...")

	var f strip.Filter
	if trace {
		f.Trace = func(from, to strip.State) {
			fmt.Fprintln(w, display.Transition(from.String(), to.String()))
		}
	}
	filtered := f.RemoveComments(stateSampleText)

	fmt.Fprintln(w, "  Filtered text:")
	fmt.Fprint(w, display.NumberedLines(filtered))

	fmt.Fprintln(w, "  Done.")
	return nil
}
