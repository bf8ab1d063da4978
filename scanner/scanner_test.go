package scanner_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"factorpair/scanner"
)

func TestReadCases(t *testing.T) {
	input := `2
2
4 9
1 1
3
1 1 1
5 5 5
`

	cases, err := scanner.ReadCases(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, cases, 2)

	assert.Equal(t, []int{4, 9}, cases[0].Values)
	assert.Equal(t, []int{1, 1, 1}, cases[1].Values)
}

func TestReadCases_ArbitraryWhitespace(t *testing.T) {
	input := "1 2 4 9 1 1"

	cases, err := scanner.ReadCases(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, cases, 1)
	assert.Equal(t, []int{4, 9}, cases[0].Values)
}

func TestReadCases_ZeroCases(t *testing.T) {
	cases, err := scanner.ReadCases(strings.NewReader("0"))
	require.NoError(t, err)
	assert.Empty(t, cases)
}

func TestReadCases_Errors(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{"empty input", ""},
		{"non-integer case count", "x"},
		{"negative case count", "-1"},
		{"missing sequence length", "1"},
		{"zero sequence length", "1 0"},
		{"non-integer value", "1 2 4 x 1 1"},
		{"value below range", "1 2 0 9 1 1"},
		{"value above range", "1 2 4 200001 1 1"},
		{"missing trailing row", "1 2 4 9 1"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := scanner.ReadCases(strings.NewReader(tc.input))
			require.Error(t, err)
		})
	}
}
