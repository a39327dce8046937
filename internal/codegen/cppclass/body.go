package cppclass

// Body accumulates the implementation text of a function, constructor or
// destructor. Fragments are stored verbatim; nothing is escaped or validated.
//
// The zero value is an empty body ready for use, and a Body can be copied
// freely by value.
type Body struct {
	text string
}

// Append adds text to the end of the body.
func (b *Body) Append(text string) {
	b.text += text
}

// AppendLine adds text followed by a line terminator.
func (b *Body) AppendLine(text string) {
	b.text += text + "\n"
}

// Text returns everything appended so far.
func (b *Body) Text() string {
	return b.text
}
