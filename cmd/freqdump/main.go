package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/bjornpagen/locdist/freqmap"
	"github.com/bjornpagen/locdist/pairlist"
	"github.com/davecgh/go-spew/spew"
)

type entry struct {
	Value int32
	Count uint32
}

func entries(m freqmap.FreqMap) []entry {
	out := make([]entry, 0, len(m))
	for v, c := range m {
		out = append(out, entry{Value: v, Count: c})
	}

	// sort them by value
	sort.Slice(out, func(i, j int) bool {
		return out[i].Value < out[j].Value
	})

	return out
}

func tableToString(es []entry) string {
	var b strings.Builder

	for _, e := range es {
		fmt.Fprintf(&b, "%d %d\n", e.Value, e.Count)
	}

	return b.String()
}

func dump(w, diag io.Writer, path string, withSpew bool) error {
	lists, err := pairlist.Load(path, diag)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}

	es := entries(freqmap.New(lists.Right))

	_, err = io.WriteString(w, tableToString(es))
	if err != nil {
		return fmt.Errorf("write table: %w", err)
	}

	if withSpew {
		spew.Fdump(w, lists)
	}

	return nil
}

// parseArgs accepts "<path>" or "-v <path>".
func parseArgs(args []string) (path string, verbose, ok bool) {
	if len(args) == 2 && args[0] == "-v" {
		verbose = true
		args = args[1:]
	}
	if len(args) != 1 {
		return "", false, false
	}
	return args[0], verbose, true
}

func main() {
	path, verbose, ok := parseArgs(os.Args[1:])
	if !ok {
		fmt.Println("usage: freqdump [-v] <path to input>")
		os.Exit(1)
	}

	err := dump(os.Stdout, os.Stderr, path, verbose)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
