package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/shibukawa/postfix/translator"
	"golang.org/x/text/width"
)

// inputError attaches the rejected line to a translation error.
type inputError struct {
	err   error
	input string
}

func (e *inputError) Error() string { return e.err.Error() }

func (e *inputError) Unwrap() error { return e.err }

// reportError prints err and, for syntax errors, the input line with a
// caret under the offending character.
func reportError(w io.Writer, err error) {
	color.New(color.FgRed).Fprintf(w, "Error: %v\n", err)

	var ie *inputError

	var se *translator.SyntaxError
	if !errors.As(err, &ie) || !errors.As(err, &se) {
		return
	}

	fmt.Fprintf(w, "  %s\n", ie.input)
	fmt.Fprintf(w, "  %s%s\n", strings.Repeat(" ", displayWidth(ie.input, se.Offset)), color.New(color.FgRed, color.Bold).Sprint("^"))
}

// displayWidth returns the terminal columns taken by the first n runes of s.
func displayWidth(s string, n int) int {
	cols := 0

	for i, r := range []rune(s) {
		if i >= n {
			break
		}

		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			cols += 2
		default:
			cols++
		}
	}

	return cols
}
