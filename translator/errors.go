package translator

import (
	"errors"
	"fmt"
)

var (
	// ErrUnmatchedParenthesis indicates a '(' whose inner expression is not followed by ')'.
	ErrUnmatchedParenthesis = errors.New("unmatched parenthesis")
	// ErrUnconsumedTrailingInput indicates characters left over after a complete expression.
	ErrUnconsumedTrailingInput = errors.New("unconsumed trailing input")
	// ErrUnexpectedCharacter indicates an operand was required but the next character cannot start one.
	ErrUnexpectedCharacter = errors.New("unexpected character")
	// ErrPrematureEndOfInput indicates the input ended where a number or ')' was required.
	ErrPrematureEndOfInput = errors.New("premature end of input")
	// ErrInvalidNumber indicates a malformed number literal such as "1." or "2e".
	ErrInvalidNumber = errors.New("invalid number")
)

// SyntaxError describes the first malformed-input condition met while translating.
type SyntaxError struct {
	// Err is one of the sentinel errors of this package.
	Err error
	// Offset is the 0-based rune index of the offending character.
	Offset int
	// Char is the offending character. It is meaningless when AtEOF is set.
	Char rune
	// AtEOF reports that the error was raised at end of input.
	AtEOF bool
	// Detail says what was expected.
	Detail string
}

func (e *SyntaxError) Error() string {
	found := fmt.Sprintf("found '%c'", e.Char)
	if e.AtEOF {
		found = "reached end of input"
	}

	if e.Detail == "" {
		return fmt.Sprintf("%v: %s at position %d", e.Err, found, e.Offset+1)
	}

	return fmt.Sprintf("%v: %s but %s at position %d", e.Err, e.Detail, found, e.Offset+1)
}

// Unwrap lets errors.Is match the sentinel, and ErrPrematureEndOfInput for
// every error raised at end of input.
func (e *SyntaxError) Unwrap() []error {
	if e.AtEOF && e.Err != ErrPrematureEndOfInput {
		return []error{e.Err, ErrPrematureEndOfInput}
	}

	return []error{e.Err}
}
