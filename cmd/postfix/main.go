package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
)

const version = "v0.1.0"

// Context represents the global context for commands
type Context struct {
	Config  string
	Verbose bool
	Quiet   bool

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// CLI represents the command-line interface
type CLI struct {
	Config    string       `help:"Configuration file path" default:"postfix.yaml"`
	Verbose   bool         `help:"Enable verbose output" short:"v"`
	Quiet     bool         `help:"Suppress the input prompt" short:"q"`
	Translate TranslateCmd `cmd:"" default:"withargs" help:"Read one infix expression from stdin and print it in postfix notation"`
	Version   VersionCmd   `cmd:"" help:"Show version information"`
}

// VersionCmd represents the version command
type VersionCmd struct{}

// Run executes the version command
func (cmd *VersionCmd) Run(ctx *Context) error {
	_, err := fmt.Fprintln(ctx.Stdout, "postfix "+version)
	return err
}

func newParser(cli *CLI, options ...kong.Option) (*kong.Kong, error) {
	options = append([]kong.Option{
		kong.Name("postfix"),
		kong.Description("Translate an infix arithmetic expression into postfix (Reverse Polish) notation."),
		kong.UsageOnError(),
	}, options...)

	return kong.New(cli, options...)
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var cli CLI

	parser, err := newParser(&cli, kong.Writers(stdout, stderr))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		reportError(stderr, err)
		return 1
	}

	appCtx := &Context{
		Config:  cli.Config,
		Verbose: cli.Verbose,
		Quiet:   cli.Quiet,
		Stdin:   stdin,
		Stdout:  stdout,
		Stderr:  stderr,
	}

	if err := kctx.Run(appCtx); err != nil {
		reportError(stderr, err)
		return 1
	}

	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
