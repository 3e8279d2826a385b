package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/shibukawa/postfix"
)

// TranslateCmd represents the translate command
type TranslateCmd struct {
	Separator      *string `short:"s" help:"String placed between postfix tokens (default: none)"`
	NormalizeWidth bool    `help:"Fold full-width characters to ASCII before parsing"`
}

// Run executes the translate command
func (cmd *TranslateCmd) Run(ctx *Context) error {
	config, err := postfix.LoadConfig(ctx.Config)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if cmd.Separator != nil {
		config.Separator = *cmd.Separator
	}

	if cmd.NormalizeWidth {
		config.NormalizeWidth = true
	}

	if err := config.Validate(); err != nil {
		return err
	}

	opts := config.Options()
	opts.Quiet = ctx.Quiet

	trace := color.New(color.FgBlue)

	if ctx.Verbose {
		trace.Fprintf(ctx.Stderr, "Configuration: %s\n", ctx.Config)
		trace.Fprintf(ctx.Stderr, "Separator: %q, normalize width: %t\n", opts.Separator, opts.NormalizeWidth)
	}

	res, err := postfix.Run(postfix.NewLineSource(ctx.Stdin), ctx.Stdout, opts)

	if ctx.Verbose {
		trace.Fprintf(ctx.Stderr, "Input: %q\n", res.Input)
		trace.Fprintf(ctx.Stderr, "Consumed %d of %d characters\n", res.Consumed, len([]rune(res.Input)))
	}

	if err != nil {
		return &inputError{err: err, input: res.Input}
	}

	return nil
}
