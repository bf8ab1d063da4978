package solver

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// MaxValue is the upper bound for sequence values and for the candidate
// factors examined by the cost sieve.
const MaxValue = 200000

// ErrNoCandidate reports that no candidate factor yields two adjustable
// values. This happens only near the value bound, where the usable
// multiples of every shared factor would lie beyond MaxValue.
var ErrNoCandidate = errors.New("no factor yields two adjustable values")

// HasCommonFactorPair reports whether any two values of the sequence
// already share a common factor greater than one.
func HasCommonFactorPair(values []int) bool {
	for i := 0; i < len(values); i++ {
		for j := i + 1; j < len(values); j++ {
			if GCD(values[i], values[j]) > 1 {
				return true
			}
		}
	}
	return false
}

// MinAdjustmentCost returns the minimum total cost of adjusting the
// sequence so that at least two of its values share a common factor
// greater than one. Adjusting a value costs 0 if it already equals a
// multiple of the candidate factor, 1 if it is one below such a multiple
// and 2 if it is two below. The sequence must contain at least two
// values, each in the range [1, MaxValue]. It returns ErrNoCandidate
// when no factor yields two adjustable values.
func MinAdjustmentCost(values []int) (int, error) {
	if len(values) < 2 {
		return 0, fmt.Errorf("sequence must contain at least two values, got %d", len(values))
	}
	for _, v := range values {
		if v < 1 || v > MaxValue {
			return 0, fmt.Errorf("value %d out of range [1, %d]", v, MaxValue)
		}
	}

	if HasCommonFactorPair(values) {
		return 0, nil
	}

	freq := make([]int, MaxValue+2)
	for _, v := range values {
		freq[v]++
	}

	best := math.MaxInt
	for p := 2; p <= MaxValue; p++ {
		costs := collectCosts(freq, p)
		if len(costs) < 2 {
			continue
		}
		sort.Ints(costs)
		if sum := costs[0] + costs[1]; sum < best {
			best = sum
		}
	}
	if best == math.MaxInt {
		return 0, ErrNoCandidate
	}

	return best, nil
}

// collectCosts walks the multiples of p and records one adjustment cost
// per value occurrence usable for each multiple. Only the cheapest
// matching tier of a multiple contributes.
func collectCosts(freq []int, p int) []int {
	var costs []int

	for m := p; m <= MaxValue; m += p {
		switch {
		case freq[m] > 0:
			for k := 0; k < freq[m]; k++ {
				costs = append(costs, 0)
			}
		case m-1 >= 1 && freq[m-1] > 0:
			for k := 0; k < freq[m-1]; k++ {
				costs = append(costs, 1)
			}
		case m-2 >= 1 && freq[m-2] > 0:
			for k := 0; k < freq[m-2]; k++ {
				costs = append(costs, 2)
			}
		}
	}

	return costs
}
