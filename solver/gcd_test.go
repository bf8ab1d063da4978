package solver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"factorpair/solver"
)

func TestGCD(t *testing.T) {
	testCases := []struct {
		a        int
		b        int
		expected int
	}{
		{12, 18, 6},
		{18, 12, 6},
		{4, 9, 1},
		{7, 7, 7},
		{1, 1, 1},
		{13, 1, 1},
		{21, 14, 7},
		{200000, 100000, 100000},
		{5, 0, 5},
		{0, 5, 5},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, solver.GCD(tc.a, tc.b), "GCD(%d, %d)", tc.a, tc.b)
	}
}
