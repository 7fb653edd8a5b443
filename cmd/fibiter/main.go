package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/Blank01442/Flow/bench"
	"github.com/Blank01442/Flow/fib"
	"github.com/Blank01442/Flow/log"
)

const (
	input    = 35
	language = "Go"
)

func run(stdout io.Writer) error {
	m, err := bench.Run(input, fib.Iterative)
	if err != nil {
		return fmt.Errorf("failed to measure fib.Iterative: %v", err)
	}
	return m.Report(stdout, language)
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), `%s computes Fibonacci(%d) iteratively and prints the cpu time it took.

Usage:

	%s [flags]

Flags:
`, os.Args[0], input, os.Args[0])
		flag.PrintDefaults()
	}
	verbose := flag.Bool("verbose", false, "Show the logging message")
	flag.Parse()

	log.EnableDebugLog = *verbose

	if err := run(os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
