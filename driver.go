// Package postfix reads an infix arithmetic expression from a line source and
// writes its postfix (Reverse Polish) translation.
package postfix

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shibukawa/postfix/translator"
	"golang.org/x/text/width"
)

// Options control a single read-translate-print cycle.
type Options struct {
	// Prompt is written on its own line before the input is read.
	Prompt string
	// Quiet suppresses the prompt.
	Quiet bool
	// Separator is placed between postfix tokens.
	Separator string
	// NormalizeWidth folds full-width characters such as "１＋２" to ASCII.
	NormalizeWidth bool
}

// Result holds the expression that was read and its translation.
type Result struct {
	// Input is the line after trimming and width folding. It is set even
	// when the translation fails, so diagnostics can point into it.
	Input    string
	Postfix  string
	Consumed int
}

// Translate reads exactly one line from src and translates it.
func Translate(src LineSource, opts Options) (Result, error) {
	line, err := src.NextLine()
	if errors.Is(err, io.EOF) {
		return Result{}, ErrNoInput
	}

	if err != nil {
		return Result{}, fmt.Errorf("failed to read input: %w", err)
	}

	line = strings.TrimSpace(line)
	if opts.NormalizeWidth {
		line = width.Fold.String(line)
	}

	res := Result{Input: line}

	cur := translator.NewCursor(line)

	out, err := translator.TranslateCursor(cur, translator.Options{Separator: opts.Separator})
	res.Consumed = cur.Offset()

	if err != nil {
		return res, err
	}

	res.Postfix = out

	return res, nil
}

// Run writes the prompt to w, translates one line from src and writes the
// postfix expression to w. Nothing but the prompt is written on failure.
func Run(src LineSource, w io.Writer, opts Options) (Result, error) {
	if !opts.Quiet {
		if _, err := fmt.Fprintln(w, opts.Prompt); err != nil {
			return Result{}, fmt.Errorf("failed to write prompt: %w", err)
		}
	}

	res, err := Translate(src, opts)
	if err != nil {
		return res, err
	}

	if _, err := fmt.Fprintln(w, res.Postfix); err != nil {
		return res, fmt.Errorf("failed to write result: %w", err)
	}

	return res, nil
}
