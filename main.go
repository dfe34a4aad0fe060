package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bjornpagen/locdist/analyze"
	"github.com/bjornpagen/locdist/pairlist"
)

const inputFile = "input.txt"

func report(w io.Writer, r analyze.Result) error {
	_, err := fmt.Fprintf(w, "Got sum of distances: %d\nGot similarity score: %d\n", r.Distance, r.Similarity)
	return err
}

func run(name string, stdout, stderr io.Writer) int {
	lists, err := pairlist.Load(name, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error reading vectors from file: %v\n", err)
		return 1
	}

	err = report(stdout, analyze.Run(lists))
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	return 0
}

func main() {
	os.Exit(run(inputFile, os.Stdout, os.Stderr))
}
