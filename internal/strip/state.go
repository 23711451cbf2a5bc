package strip

import "fmt"

// State identifies one state of the comment-stripping machine.
type State int

const (
	// Initial is the pre-start state; it consumes no input and moves
	// straight to NormalText.
	Initial State = iota
	// NormalText is ordinary code outside strings and comments.
	NormalText
	// DoubleQuotedText is the inside of a "..." literal.
	DoubleQuotedText
	// SingleQuotedText is the inside of a '...' literal.
	SingleQuotedText
	// EscapedDoubleQuoteText follows a backslash inside a "..." literal.
	EscapedDoubleQuoteText
	// EscapedSingleQuoteText follows a backslash inside a '...' literal.
	EscapedSingleQuoteText
	// StartComment follows a '/' in NormalText; the slash is held until the
	// next rune decides whether a comment started.
	StartComment
	// LineComment is the inside of a // comment, up to the newline.
	LineComment
	// BlockComment is the inside of a /* */ comment.
	BlockComment
	// EndBlockComment follows a '*' inside a block comment.
	EndBlockComment
	// Done is terminal; no input is consumed or emitted past it.
	Done
)

var stateNames = map[State]string{
	Initial:                "Initial",
	NormalText:             "NormalText",
	DoubleQuotedText:       "DoubleQuotedText",
	SingleQuotedText:       "SingleQuotedText",
	EscapedDoubleQuoteText: "EscapedDoubleQuoteText",
	EscapedSingleQuoteText: "EscapedSingleQuoteText",
	StartComment:           "StartComment",
	LineComment:            "LineComment",
	BlockComment:           "BlockComment",
	EndBlockComment:        "EndBlockComment",
	Done:                   "Done",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("State(%d)", int(s))
}
