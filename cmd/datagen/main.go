package main

import (
	"bufio"
	"flag"
	"fmt"
	"math/rand"
	"os"

	"factorpair/solver"
)

const (
	defaultNumCases   = 10
	defaultSeqLen     = 50
	defaultOutputFile = "cases.txt"
)

func main() {
	numCases := flag.Int("cases", defaultNumCases, "Number of test cases to generate")
	seqLen := flag.Int("len", defaultSeqLen, "Sequence length per case")
	maxValue := flag.Int("max", solver.MaxValue, "Upper bound for generated values")
	output := flag.String("out", defaultOutputFile, "Output file")
	seed := flag.Int64("seed", 1, "Random seed")
	flag.Parse()

	if *seqLen < 2 || *maxValue < 1 || *maxValue > solver.MaxValue {
		fmt.Fprintln(os.Stderr, "Invalid -len or -max")
		os.Exit(1)
	}

	rng := rand.New(rand.NewSource(*seed))

	file, err := os.Create(*output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", *output, err)
		os.Exit(1)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	fmt.Fprintln(w, *numCases)
	for i := 0; i < *numCases; i++ {
		fmt.Fprintln(w, *seqLen)
		writeRow(w, rng, *seqLen, *maxValue)
		// The trailing row of the format, skipped by readers.
		writeRow(w, rng, *seqLen, *maxValue)
	}
	w.Flush()

	fmt.Printf("Wrote %d cases to %s\n", *numCases, *output)
}

// writeRow writes n random values in [1, max] on a single line.
func writeRow(w *bufio.Writer, rng *rand.Rand, n, max int) {
	for j := 0; j < n; j++ {
		if j > 0 {
			fmt.Fprint(w, " ")
		}
		fmt.Fprint(w, 1+rng.Intn(max))
	}
	fmt.Fprintln(w)
}
