/*
Package scanner reads test cases from a whitespace-separated integer
stream: a case count T, then per case a sequence length n, the n
sequence values and a further n integers that the computation does not
use.
*/
package scanner

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"factorpair/solver"
)

// Case holds the parsed sequence of one test case.
type Case struct {
	Values []int
}

// ReadCases parses all test cases from r. It returns an error on
// non-integer tokens, truncated streams and values outside the range
// [1, solver.MaxValue].
func ReadCases(r io.Reader) ([]Case, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	count, err := nextInt(sc, "case count")
	if err != nil {
		return nil, err
	}
	if count < 0 {
		return nil, fmt.Errorf("case count must be non-negative, got %d", count)
	}

	cases := make([]Case, 0, count)
	for i := 1; i <= count; i++ {
		c, err := readCase(sc)
		if err != nil {
			return nil, fmt.Errorf("case %d: %w", i, err)
		}
		cases = append(cases, c)
	}

	return cases, nil
}

func readCase(sc *bufio.Scanner) (Case, error) {
	n, err := nextInt(sc, "sequence length")
	if err != nil {
		return Case{}, err
	}
	if n < 1 {
		return Case{}, fmt.Errorf("sequence length must be positive, got %d", n)
	}

	values := make([]int, n)
	for j := range values {
		v, err := nextInt(sc, "sequence value")
		if err != nil {
			return Case{}, err
		}
		if v < 1 || v > solver.MaxValue {
			return Case{}, fmt.Errorf("value %d out of range [1, %d]", v, solver.MaxValue)
		}
		values[j] = v
	}

	// The format carries a second row of n integers per case; read it
	// to keep case boundaries aligned, then discard it.
	for j := 0; j < n; j++ {
		if _, err := nextInt(sc, "trailing value"); err != nil {
			return Case{}, err
		}
	}

	return Case{Values: values}, nil
}

func nextInt(sc *bufio.Scanner, what string) (int, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, fmt.Errorf("reading %s: %w", what, err)
		}
		return 0, fmt.Errorf("unexpected end of input while reading %s", what)
	}

	v, err := strconv.Atoi(sc.Text())
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", what, sc.Text(), err)
	}
	return v, nil
}
