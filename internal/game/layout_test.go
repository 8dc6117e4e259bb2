package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardLayoutIs15x15(t *testing.T) {
	squares, err := ParseLayout(StandardLayout())
	require.NoError(t, err)
	require.Len(t, squares, 15)
	for _, row := range squares {
		require.Len(t, row, 15)
	}

	// Spot-check the tournament premium squares.
	assert.Equal(t, Square{LetterMultiplier: 1, WordMultiplier: 3}, squares[0][0])
	assert.Equal(t, Square{LetterMultiplier: 1, WordMultiplier: 3}, squares[0][14])
	assert.Equal(t, Square{LetterMultiplier: 1, WordMultiplier: 3}, squares[14][0])
	assert.Equal(t, Square{LetterMultiplier: 1, WordMultiplier: 3}, squares[14][14])
	assert.Equal(t, Square{LetterMultiplier: 1, WordMultiplier: 2}, squares[7][7])
	assert.Equal(t, Square{LetterMultiplier: 2, WordMultiplier: 1}, squares[0][3])
	assert.Equal(t, Square{LetterMultiplier: 3, WordMultiplier: 1}, squares[1][5])
	assert.Equal(t, Square{LetterMultiplier: 1, WordMultiplier: 1}, squares[0][1])

	// The standard board is symmetric under 180° rotation.
	for r := 0; r < 15; r++ {
		for c := 0; c < 15; c++ {
			assert.Equal(t, squares[r][c], squares[14-r][14-c], "squares (%d,%d) vs rotated", r, c)
		}
	}
}

func TestParseLayoutRejectsBadInput(t *testing.T) {
	cases := []struct {
		name, layout string
	}{
		{"unknown char", "..\n.x"},
		{"ragged rows", "...\n..\n..."},
		{"non-square", "...\n..."},
		{"empty", "\n\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseLayout(tc.layout)
			assert.Error(t, err)
		})
	}
}

func TestParseLayoutSkipsBlankLines(t *testing.T) {
	squares, err := ParseLayout("\n..\ndT\n\n")
	require.NoError(t, err)
	require.Len(t, squares, 2)
	assert.Equal(t, Square{LetterMultiplier: 2, WordMultiplier: 1}, squares[1][0])
	assert.Equal(t, Square{LetterMultiplier: 1, WordMultiplier: 3}, squares[1][1])
}
