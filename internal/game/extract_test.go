package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gridFromRows builds an occupancy grid from row strings, where '.'
// means empty and any letter is a tile showing that letter.
func gridFromRows(rows ...string) [][]*Tile {
	tiles := make([][]*Tile, len(rows))
	for i, row := range rows {
		tiles[i] = make([]*Tile, len(row))
		for j, r := range row {
			if r != '.' {
				s := string(r)
				tiles[i][j] = &Tile{Key: s, Letter: s}
			}
		}
	}
	return tiles
}

func wordsOf(runs []run) []string {
	out := make([]string, len(runs))
	for i, r := range runs {
		out[i] = r.word
	}
	return out
}

func TestExtractRunsFindsMaximalWords(t *testing.T) {
	runs := extractRuns(gridFromRows(
		".....",
		".cat.",
		".a...",
		".ts..",
		".....",
	))
	assert.ElementsMatch(t, []string{"cat", "ts", "cat"}, wordsOf(runs))
}

func TestExtractRunsIgnoresSingleTiles(t *testing.T) {
	runs := extractRuns(gridFromRows(
		"a....",
		".....",
		"..b..",
		".....",
		"....c",
	))
	assert.Empty(t, runs)
}

func TestExtractRunsAtBoardEdges(t *testing.T) {
	// Runs flush with the right and bottom edges close correctly.
	runs := extractRuns(gridFromRows(
		"...on",
		"....o",
		".....",
		".....",
		"...go",
	))
	assert.ElementsMatch(t, []string{"on", "go", "no"}, wordsOf(runs))
}

func TestRunsTouchingFiltersByPlacementRect(t *testing.T) {
	tiles := gridFromRows(
		".....",
		".cat.",
		".....",
		".at..",
		".....",
	)
	runs := extractRuns(tiles)
	require.Len(t, runs, 2)

	placed := rect{minRow: 1, maxRow: 1, minCol: 1, maxCol: 3}
	touching := runsTouching(runs, placed)
	require.Len(t, touching, 1)
	assert.Equal(t, "cat", touching[0].word)
}
