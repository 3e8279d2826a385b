package translator

// Cursor is a forward-only view over the characters of an expression.
// Consumed characters are never revisited.
type Cursor interface {
	// Peek returns the next character without consuming it.
	// ok is false at end of input.
	Peek() (r rune, ok bool)
	// Next consumes and returns the next character.
	Next() (r rune, ok bool)
	// Offset returns the number of characters consumed so far.
	Offset() int
}

type runeCursor struct {
	src []rune
	pos int
}

// NewCursor returns a Cursor positioned at the first rune of src.
func NewCursor(src string) Cursor {
	return &runeCursor{src: []rune(src)}
}

func (c *runeCursor) Peek() (rune, bool) {
	if c.pos >= len(c.src) {
		return 0, false
	}

	return c.src[c.pos], true
}

func (c *runeCursor) Next() (rune, bool) {
	r, ok := c.Peek()
	if ok {
		c.pos++
	}

	return r, ok
}

func (c *runeCursor) Offset() int {
	return c.pos
}
