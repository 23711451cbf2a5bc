package strip

import "strings"

// EOF marks the end of input. It is returned by the source instead of a
// real rune and is never written to the output.
const EOF rune = -1

// inputOutput is the character source and sink the state machine runs
// against: a fixed rune view of the input, a forward-only cursor, and the
// accumulating filtered output.
type inputOutput struct {
	input []rune
	pos   int
	out   strings.Builder
}

func newInputOutput(text string) *inputOutput {
	return &inputOutput{input: []rune(text)}
}

// next returns the next input rune and advances the cursor, or EOF once the
// input is exhausted. EOF is sticky: every later call returns it again.
func (io *inputOutput) next() rune {
	if io.pos >= len(io.input) {
		return EOF
	}

	r := io.input[io.pos]
	io.pos++
	return r
}

// emit appends r to the filtered output. Emitting EOF does nothing.
func (io *inputOutput) emit(r rune) {
	if r == EOF {
		return
	}
	io.out.WriteRune(r)
}

func (io *inputOutput) result() string {
	return io.out.String()
}
