// Command trebuchet reads an Advent of Code 2023 day 1 calibration
// document from a named file or standard input and prints the sum of
// its calibration values:
//
//	trebuchet input.txt
//	cat input.txt | trebuchet
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-isatty"

	"aoc/trebuchet"
)

// Exit codes, so scripts can tell a misuse from a failed run.
const (
	exitSuccess = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}

// run is main with its edges injected: argv as invoked, the stream
// standing in for standard input, and the two output streams. It
// returns the process exit code. Standard output carries nothing but
// the result line; every diagnostic goes to errw.
func run(argv []string, stdin io.Reader, out, errw io.Writer) int {
	prog := "trebuchet"
	if len(argv) > 0 && argv[0] != "" {
		prog = filepath.Base(argv[0])
	}

	fs := flag.NewFlagSet(prog, flag.ContinueOnError)
	fs.SetOutput(errw)
	fs.Usage = func() {
		fmt.Fprintf(errw, "Usage: %s [filename]\n", prog)
		fs.PrintDefaults()
	}
	debug := fs.Bool("debug", false, "log scan details to stderr")
	if err := fs.Parse(argv[1:]); err != nil {
		return exitUsage
	}
	if fs.NArg() > 1 {
		fs.Usage()
		return exitUsage
	}

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(errw, &slog.HandlerOptions{Level: level}))

	in := stdin
	if fs.NArg() == 1 {
		name := fs.Arg(0)
		f, err := os.Open(name)
		if err != nil {
			fmt.Fprintf(errw, "%s: unable to open file: %v\n", prog, err)
			return exitFailure
		}
		defer f.Close()
		logger.Debug("reading file", "path", name)
		in = f
	} else {
		if f, ok := in.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
			logger.Info("reading from standard input, press ^C to exit")
		}
		logger.Debug("reading standard input")
	}

	t0 := time.Now()
	sum, err := trebuchet.SumReader(in)
	if err != nil {
		fmt.Fprintf(errw, "%s: %v\n", prog, err)
		return exitFailure
	}
	logger.Debug("scan complete", "sum", sum, "took", time.Since(t0))

	fmt.Fprintf(out, "Sum = %d\n", sum)
	return exitSuccess
}
