package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"factorpair/scanner"
	"factorpair/solver"
)

func main() {
	input := flag.String("in", "", "Input file to read cases from (default stdin)")
	flag.Parse()

	var r io.Reader = os.Stdin
	if *input != "" {
		file, err := os.Open(*input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening input %s: %v\n", *input, err)
			os.Exit(1)
		}
		defer file.Close()
		r = file
	}

	cases, err := scanner.ReadCases(bufio.NewReader(r))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading cases: %v\n", err)
		os.Exit(1)
	}

	out := bufio.NewWriter(os.Stdout)
	for _, c := range cases {
		cost, err := solver.MinAdjustmentCost(c.Values)
		switch {
		case errors.Is(err, solver.ErrNoCandidate):
			fmt.Fprintln(out, -1)
		case err != nil:
			fmt.Fprintf(os.Stderr, "Error solving case: %v\n", err)
			os.Exit(1)
		default:
			fmt.Fprintln(out, cost)
		}
	}
	out.Flush()
}
