package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/Blank01442/Flow/bench"
	"github.com/Blank01442/Flow/log"
)

type benchmark struct {
	title   string
	program string
}

var benchmarks = []benchmark{
	{title: "Go Iterative", program: "fibiter"},
	{title: "Go Recursive", program: "fibrec"},
}

var errSomeFailed = errors.New("some benchmarks failed")

// findProgram prefers the program in binDir and falls back to the one in $PATH.
func findProgram(binDir, name string) (string, error) {
	path := filepath.Join(binDir, name)
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		return path, nil
	}
	return exec.LookPath(name)
}

// runAll runs the benchmarks one by one. A failed benchmark doesn't stop the rest.
func runAll(w io.Writer, binDir string, benchmarks []benchmark) error {
	failed := false
	for _, b := range benchmarks {
		fmt.Fprintf(w, "--- Running %s Benchmark ---\n", b.title)

		path, err := findProgram(binDir, b.program)
		if err != nil {
			log.Printf("%s is not found in %s or $PATH", b.program, binDir)
			fmt.Fprintf(w, "Error: '%s' not found: %v\n\n", b.program, err)
			failed = true
			continue
		}

		result, err := bench.RunProgram(path)
		if err != nil {
			log.WithField("program", path).WithField("wall", result.Wall).Print(err)
			fmt.Fprintf(w, "%s Execution Error:\n%s\n", b.title, result.Stderr)
			failed = true
			continue
		}

		fmt.Fprintf(w, "%s\n", result.Stdout)
		fmt.Fprintf(w, "Actual %s execution time: %.4f seconds\n\n", b.title, result.Wall.Seconds())
	}

	if failed {
		return errSomeFailed
	}
	return nil
}

func defaultBinDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), `%s runs the fibonacci benchmark programs and reports the wall time of each.

Usage:

	%s [flags]

Flags:
`, os.Args[0], os.Args[0])
		flag.PrintDefaults()
	}
	binDir := flag.String("bindir", defaultBinDir(), "The `directory` which contains the fibiter and fibrec programs. $PATH is searched if not found there.")
	verbose := flag.Bool("verbose", false, "Show the logging message")
	flag.Parse()

	log.EnableDebugLog = *verbose

	if err := runAll(os.Stdout, *binDir, benchmarks); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
