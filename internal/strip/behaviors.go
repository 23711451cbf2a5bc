package strip

// behavior implements one state of the machine. step consumes exactly one
// rune from io (Initial and Done consume none), emits zero or more runes,
// and returns the next state. Behaviors carry no data, so a single instance
// per state is enough.
type behavior interface {
	step(io *inputOutput) State
}

func newBehavior(s State) behavior {
	switch s {
	case Initial:
		return initial{}
	case NormalText:
		return normalText{}
	case DoubleQuotedText:
		return doubleQuotedText{}
	case SingleQuotedText:
		return singleQuotedText{}
	case EscapedDoubleQuoteText:
		return escapedDoubleQuoteText{}
	case EscapedSingleQuoteText:
		return escapedSingleQuoteText{}
	case StartComment:
		return startComment{}
	case LineComment:
		return lineComment{}
	case BlockComment:
		return blockComment{}
	case EndBlockComment:
		return endBlockComment{}
	default:
		return done{}
	}
}

type initial struct{}

func (initial) step(*inputOutput) State {
	return NormalText
}

type normalText struct{}

func (normalText) step(io *inputOutput) State {
	switch r := io.next(); r {
	case EOF:
		return Done
	case '"':
		io.emit(r)
		return DoubleQuotedText
	case '\'':
		io.emit(r)
		return SingleQuotedText
	case '/':
		// Hold the slash; the next rune decides if a comment started.
		return StartComment
	default:
		io.emit(r)
		return NormalText
	}
}

type doubleQuotedText struct{}

func (doubleQuotedText) step(io *inputOutput) State {
	switch r := io.next(); r {
	case EOF:
		return Done
	case '"':
		io.emit(r)
		return NormalText
	case '\\':
		io.emit(r)
		return EscapedDoubleQuoteText
	default:
		io.emit(r)
		return DoubleQuotedText
	}
}

type singleQuotedText struct{}

func (singleQuotedText) step(io *inputOutput) State {
	switch r := io.next(); r {
	case EOF:
		return Done
	case '\'':
		io.emit(r)
		return NormalText
	case '\\':
		io.emit(r)
		return EscapedSingleQuoteText
	default:
		io.emit(r)
		return SingleQuotedText
	}
}

type escapedDoubleQuoteText struct{}

func (escapedDoubleQuoteText) step(io *inputOutput) State {
	r := io.next()
	if r == EOF {
		return Done
	}

	io.emit(r)
	return DoubleQuotedText
}

type escapedSingleQuoteText struct{}

func (escapedSingleQuoteText) step(io *inputOutput) State {
	r := io.next()
	if r == EOF {
		return Done
	}

	io.emit(r)
	return SingleQuotedText
}

type startComment struct{}

func (startComment) step(io *inputOutput) State {
	switch r := io.next(); r {
	case EOF:
		return Done
	case '/':
		return LineComment
	case '*':
		return BlockComment
	default:
		// Not a comment after all: flush the held '/' followed by the rune
		// that disproved it.
		io.emit('/')
		io.emit(r)
		return NormalText
	}
}

type lineComment struct{}

func (lineComment) step(io *inputOutput) State {
	switch r := io.next(); r {
	case EOF:
		return Done
	case '\n':
		io.emit(r)
		return NormalText
	default:
		// Comment text is dropped.
		return LineComment
	}
}

type blockComment struct{}

func (blockComment) step(io *inputOutput) State {
	switch io.next() {
	case EOF:
		return Done
	case '*':
		return EndBlockComment
	default:
		return BlockComment
	}
}

type endBlockComment struct{}

func (endBlockComment) step(io *inputOutput) State {
	switch io.next() {
	case EOF:
		return Done
	case '/':
		return NormalText
	default:
		return BlockComment
	}
}

type done struct{}

func (done) step(*inputOutput) State {
	return Done
}
