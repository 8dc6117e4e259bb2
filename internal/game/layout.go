// internal/game/layout.go
//
// Board layout parsing.
//
// A layout is a multi-line text block; each non-blank line is one row.
// Square characters:
//   .   plain square
//   d   double-letter square
//   t   triple-letter square
//   D   double-word square
//   T   triple-word square
//
// All rows must have equal length and the grid must be square. The
// standard 15×15 tournament layout is embedded as the default
// (configurable via BOARD_LAYOUT_FILE at the server layer).

package game

import (
	"errors"
	"fmt"
	"strings"

	_ "embed"
)

//go:embed layout.txt
var standardLayout string

// StandardLayout returns the embedded 15×15 layout text.
func StandardLayout() string {
	return standardLayout
}

// ParseLayout converts a layout text block into the square grid.
// The grid is built once at game creation and never modified after.
func ParseLayout(text string) ([][]Square, error) {
	var rows [][]Square
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		row := make([]Square, 0, len(line))
		for _, r := range line {
			sq := Square{LetterMultiplier: 1, WordMultiplier: 1}
			switch r {
			case '.':
			case 'd':
				sq.LetterMultiplier = 2
			case 't':
				sq.LetterMultiplier = 3
			case 'D':
				sq.WordMultiplier = 2
			case 'T':
				sq.WordMultiplier = 3
			default:
				return nil, fmt.Errorf("board layout: unknown square character %q", r)
			}
			row = append(row, sq)
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, errors.New("board layout: no rows")
	}
	n := len(rows)
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("board layout: row %d has %d squares, want %d", i, len(row), n)
		}
	}
	return rows, nil
}
