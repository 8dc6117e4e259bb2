// internal/game/score.go
//
// Scoring. For each extracted word the letter points are accumulated
// cell by cell; a cell's letter multiplier applies only when the cell
// was filled by the current move. The word multiplier is the product
// of the word multipliers of the newly filled cells of that word.
// Previously placed tiles contribute their plain letter value and a
// word factor of 1 — multipliers fire exactly once, on the move that
// lands on them.

package game

import "fmt"

// scoreRun computes the score of one word. placed marks the cells
// filled by the current move.
func (g *Game) scoreRun(tiles [][]*Tile, r run, placed map[cell]bool) (int, error) {
	letterPoints := 0
	wordMultiplier := 1
	for row := r.rect.minRow; row <= r.rect.maxRow; row++ {
		for col := r.rect.minCol; col <= r.rect.maxCol; col++ {
			t := tiles[row][col]
			if t == nil {
				// Runs are maximal occupied stretches, so this cannot
				// happen unless extraction is broken.
				return 0, fmt.Errorf("internal error: no tile at row %d, col %d while scoring %q", row, col, r.word)
			}
			points := g.TileSet.Score(t.Key)
			if placed[cell{row, col}] {
				sq := g.Board.Squares[row][col]
				points *= sq.LetterMultiplier
				wordMultiplier *= sq.WordMultiplier
			}
			letterPoints += points
		}
	}
	return letterPoints * wordMultiplier, nil
}

// scoreRuns sums the word scores of a move. The bingo bonus is added
// by the caller, it depends on the placement count alone.
func (g *Game) scoreRuns(tiles [][]*Tile, runs []run, placed map[cell]bool) (int, error) {
	total := 0
	for _, r := range runs {
		points, err := g.scoreRun(tiles, r, placed)
		if err != nil {
			return 0, err
		}
		total += points
	}
	return total, nil
}
