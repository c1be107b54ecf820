// Kmp prints the failure table of a pattern and every position where it
// occurs in a text.
//
// Input is two whitespace-delimited tokens on stdin, text then pattern,
// unless -text and/or -pattern are given. Output is two lines on stdout:
// the failure table, then the 0-based match starts (empty when none).
package main

import (
	"flag"
	"fmt"
	"os"

	"fortio.org/cli"
	"fortio.org/log"
	"github.com/katalvlaran/editorials/internal/tokens"
	"github.com/katalvlaran/editorials/kmp"
)

func main() {
	os.Exit(Main())
}

func Main() int {
	textFlag := flag.String("text", "", "`text` to search, read from stdin when empty")
	patternFlag := flag.String("pattern", "", "`pattern` to look for, read from stdin when empty")
	mode := flag.String("mode", "bytes", "symbol `mode`: bytes, runes or graphemes; positions count these symbols")
	limit := flag.Int("limit", 0, "stop after `n` matches, 0 for all")
	nonOverlapping := flag.Bool("non-overlapping", false, "report non-overlapping matches only")
	cli.ArgsHelp = "\nreads text then pattern from stdin unless -text/-pattern are set"
	cli.Main()

	text, pattern := *textFlag, *patternFlag
	in := tokens.NewReader(os.Stdin)
	var err error
	if text == "" {
		if text, err = in.Next("text"); err != nil {
			return log.FErrf("Error reading input: %v", err)
		}
	}
	if pattern == "" {
		if pattern, err = in.Next("pattern"); err != nil {
			return log.FErrf("Error reading input: %v", err)
		}
	}
	log.LogVf("Searching %d bytes of text for %q (mode %s)", len(text), pattern, *mode)

	opts := []kmp.Option{kmp.WithLimit(*limit)}
	if *nonOverlapping {
		opts = append(opts, kmp.WithNonOverlapping())
	}

	var failure, matches []int
	switch *mode {
	case "bytes":
		failure, matches, err = search([]byte(text), []byte(pattern), opts)
	case "runes":
		failure, matches, err = search(kmp.Runes(text), kmp.Runes(pattern), opts)
	case "graphemes":
		failure, matches, err = search(kmp.Graphemes(text), kmp.Graphemes(pattern), opts)
	default:
		return log.FErrf("Unknown -mode %q, want bytes, runes or graphemes", *mode)
	}
	if err != nil {
		return log.FErrf("Error searching: %v", err)
	}

	fmt.Println(tokens.JoinInts(failure))
	fmt.Println(tokens.JoinInts(matches))
	log.LogVf("Found %d match(es)", len(matches))

	return 0
}

func search[T comparable](text, pattern []T, opts []kmp.Option) ([]int, []int, error) {
	m, err := kmp.Compile(pattern, opts...)
	if err != nil {
		return nil, nil, err
	}

	return m.Failure(), m.FindAll(text), nil
}
