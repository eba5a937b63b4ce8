// Command toyregex is a thin CLI wrapper around the regex core:
// pattern/flag/input-file ingestion feeding a single regex.Exec call. It
// never touches the core's internals beyond that entry point.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/tkyk0317/toy-regex/regex"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

const (
	exitOK = iota
	exitUsage
	exitInvalidPattern
	exitIOError
)

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("toyregex", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		input     = fs.String("s", "", "input string to match against")
		inputFile = fs.String("i", "", "read input from this file instead of -s")
		useVM     = fs.Bool("vm", false, "use the bytecode VM back end instead of the automaton back end")
		substring bool
	)
	fs.BoolVar(&substring, "substring", true, "match pattern anywhere in the input instead of requiring a full-string match")

	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(stderr, "usage: toyregex [flags] <pattern>")
		fs.PrintDefaults()
		return exitUsage
	}
	pattern := fs.Arg(0)

	text, err := resolveInput(*input, *inputFile)
	if err != nil {
		fmt.Fprintf(stderr, "toyregex: %v\n", err)
		return exitIOError
	}

	matched, err := regex.Exec(pattern, text, *useVM, substring)
	if err != nil {
		fmt.Fprintf(stderr, "toyregex: %v\n", err)
		return exitInvalidPattern
	}

	fmt.Fprintf(stdout, "%t\n", matched)
	return exitOK
}

func resolveInput(inline, path string) (string, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read input file: %w", err)
		}
		return string(data), nil
	}
	return inline, nil
}
