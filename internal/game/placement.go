// internal/game/placement.go
//
// Placement validation: the structural rules a set of proposed tile
// placements must satisfy before words are even looked at.
//
// Rules gated by Config.CheckPlacement:
//   - at most RackSize tiles per move
//   - all placements on one line (bounding rectangle is one-dimensional)
//   - no empty cell inside the bounding rectangle after placement
//   - at least one placement orthogonally adjacent to an existing tile,
//     waived when the board holds no tiles at all (first move; there is
//     deliberately no center-square rule)
//
// Always enforced, independent of the flag: tile identities must be
// known letters or the wildcard, target cells must be in bounds, empty,
// and distinct.

package game

import (
	"errors"
	"fmt"
)

// rect is an inclusive bounding rectangle of board cells.
type rect struct {
	minRow, minCol int
	maxRow, maxCol int
}

// boundingRect computes the bounding rectangle of a non-empty placement set.
func boundingRect(placements []Placement) rect {
	r := rect{
		minRow: placements[0].Row, maxRow: placements[0].Row,
		minCol: placements[0].Col, maxCol: placements[0].Col,
	}
	for _, p := range placements[1:] {
		if p.Row < r.minRow {
			r.minRow = p.Row
		}
		if p.Row > r.maxRow {
			r.maxRow = p.Row
		}
		if p.Col < r.minCol {
			r.minCol = p.Col
		}
		if p.Col > r.maxCol {
			r.maxCol = p.Col
		}
	}
	return r
}

// intersects reports whether two rectangles overlap: their row
// intervals overlap AND their column intervals overlap.
func (r rect) intersects(o rect) bool {
	return r.minRow <= o.maxRow && o.minRow <= r.maxRow &&
		r.minCol <= o.maxCol && o.minCol <= r.maxCol
}

// cell addresses one board position.
type cell struct {
	row, col int
}

// checkPlacements validates a proposed move against the current board.
// An empty placement set is a pass and is always fine. The board is not
// touched; on error the caller rejects the whole move.
func (g *Game) checkPlacements(placements []Placement) error {
	for _, p := range placements {
		if err := g.TileSet.CheckTile(p.Tile); err != nil {
			return err
		}
	}
	if len(placements) == 0 {
		return nil
	}

	// Structural sanity, independent of the rule flag: each placement
	// must target a distinct empty cell on the board.
	n := g.Board.Size()
	seen := make(map[cell]bool, len(placements))
	for _, p := range placements {
		if p.Row < 0 || p.Row >= n || p.Col < 0 || p.Col >= n {
			return fmt.Errorf("placement at row %d, col %d is off the board", p.Row, p.Col)
		}
		if g.Board.Tiles[p.Row][p.Col] != nil {
			return fmt.Errorf("placement at row %d, col %d is already occupied", p.Row, p.Col)
		}
		c := cell{p.Row, p.Col}
		if seen[c] {
			return fmt.Errorf("two placements target row %d, col %d", p.Row, p.Col)
		}
		seen[c] = true
	}

	if !g.Config.CheckPlacement {
		return nil
	}

	if len(placements) > RackSize {
		return fmt.Errorf("a move may place at most %d tiles", RackSize)
	}

	r := boundingRect(placements)
	if r.minRow != r.maxRow && r.minCol != r.maxCol {
		return errors.New("placed tiles must all be in one row or one column")
	}

	// No gaps: every cell of the line segment must be covered by an
	// existing tile or one of the new placements.
	for row := r.minRow; row <= r.maxRow; row++ {
		for col := r.minCol; col <= r.maxCol; col++ {
			if g.Board.Tiles[row][col] == nil && !seen[cell{row, col}] {
				return errors.New("placed tiles must form an unbroken line")
			}
		}
	}

	// Adjacency: the move must connect to what is already on the board,
	// unless the board is still empty.
	if g.Board.Empty() {
		return nil
	}
	for _, p := range placements {
		if g.hasNeighbor(p.Row, p.Col) {
			return nil
		}
	}
	return errors.New("placed tiles must touch a tile already on the board")
}

// hasNeighbor reports whether any orthogonally adjacent cell holds a tile.
func (g *Game) hasNeighbor(row, col int) bool {
	return g.Board.TileAt(row-1, col) != nil ||
		g.Board.TileAt(row+1, col) != nil ||
		g.Board.TileAt(row, col-1) != nil ||
		g.Board.TileAt(row, col+1) != nil
}
