// internal/game/extract.go
//
// Word extraction: find every maximal horizontal and vertical run of
// occupied cells with length >= 2 on a hypothetical post-placement
// grid, then keep only the runs whose bounding rectangle intersects
// the bounding rectangle of the new placements. That keeps the main
// word along the placement line and every perpendicular word a placed
// letter created, and drops unrelated words elsewhere on the board.

package game

import "strings"

// run is one maximal contiguous word on the board: its bounding
// rectangle plus the displayed letters in reading order.
type run struct {
	rect rect
	word string
}

// extractRuns scans the grid row by row and column by column,
// collapsing consecutive occupied cells into maximal runs and keeping
// those of length >= 2.
func extractRuns(tiles [][]*Tile) []run {
	n := len(tiles)
	var runs []run

	for row := 0; row < n; row++ {
		start := -1
		for col := 0; col <= n; col++ {
			if col < n && tiles[row][col] != nil {
				if start < 0 {
					start = col
				}
				continue
			}
			if start >= 0 && col-start >= 2 {
				runs = append(runs, horizontalRun(tiles, row, start, col-1))
			}
			start = -1
		}
	}

	for col := 0; col < n; col++ {
		start := -1
		for row := 0; row <= n; row++ {
			if row < n && tiles[row][col] != nil {
				if start < 0 {
					start = row
				}
				continue
			}
			if start >= 0 && row-start >= 2 {
				runs = append(runs, verticalRun(tiles, col, start, row-1))
			}
			start = -1
		}
	}
	return runs
}

// horizontalRun builds the run for row cells [startCol..endCol].
func horizontalRun(tiles [][]*Tile, row, startCol, endCol int) run {
	var sb strings.Builder
	for col := startCol; col <= endCol; col++ {
		sb.WriteString(tiles[row][col].Letter)
	}
	return run{
		rect: rect{minRow: row, maxRow: row, minCol: startCol, maxCol: endCol},
		word: sb.String(),
	}
}

// verticalRun builds the run for column cells [startRow..endRow].
func verticalRun(tiles [][]*Tile, col, startRow, endRow int) run {
	var sb strings.Builder
	for row := startRow; row <= endRow; row++ {
		sb.WriteString(tiles[row][col].Letter)
	}
	return run{
		rect: rect{minRow: startRow, maxRow: endRow, minCol: col, maxCol: col},
		word: sb.String(),
	}
}

// runsTouching filters runs to those overlapping the placement
// rectangle on both axes.
func runsTouching(runs []run, placed rect) []run {
	var out []run
	for _, r := range runs {
		if r.rect.intersects(placed) {
			out = append(out, r)
		}
	}
	return out
}
