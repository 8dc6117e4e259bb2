// internal/game/engine.go
//
// The move pipeline for a scrabble game.
// Responsibilities:
//   - Play: validate placements, extract the words they form, score
//     them, gate them through the dictionary, and commit — atomically.
//     A rejected move returns an error and leaves the receiver's state
//     untouched; a committed move is a brand-new Game value.
//   - Pass: an empty move that still advances turn order.
//   - Undo: pop the last move and clear exactly its cells.
//   - Turn attribution and the on-demand scoreboard.
//
// Copy-on-write: the tile grid is cloned before placements are applied,
// so rejection needs no rollback and undo needs no trail beyond the
// move log itself.

package game

import (
	"fmt"
	"strings"
)

// Play runs the full pipeline for a proposed move. An empty placement
// set is a pass. On success it returns the successor game and the
// committed move record; on rejection it returns a nil game, the error
// describing the first failed rule, and no state change.
func (g *Game) Play(placements []Placement) (*Game, Move, error) {
	placements = normalize(placements)
	if err := g.checkPlacements(placements); err != nil {
		return nil, Move{}, err
	}

	tiles := cloneTiles(g.Board.Tiles)
	placed := make(map[cell]bool, len(placements))
	for _, p := range placements {
		t := p.Tile
		tiles[p.Row][p.Col] = &t
		placed[cell{p.Row, p.Col}] = true
	}

	words := []string{}
	points := 0
	if len(placements) > 0 {
		runs := runsTouching(extractRuns(tiles), boundingRect(placements))
		var err error
		points, err = g.scoreRuns(tiles, runs, placed)
		if err != nil {
			return nil, Move{}, err
		}
		if len(placements) == RackSize {
			points += BingoBonus
		}
		for _, r := range runs {
			words = append(words, r.word)
		}
		if g.Config.UseDictionary {
			if err := g.checkWords(words); err != nil {
				return nil, Move{}, err
			}
		}
	}

	mv := Move{Placements: placements, Words: words, Points: points}
	next := &Game{
		Config:  g.Config,
		Board:   Board{Squares: g.Board.Squares, Tiles: tiles},
		TileSet: g.TileSet,
		Players: g.Players,
		Moves:   appendMove(g.Moves, mv),
		dict:    g.dict,
	}
	return next, mv, nil
}

// Pass commits an empty move: no placements, no words, zero points.
// Turn order still advances by one.
func (g *Game) Pass() (*Game, Move) {
	next, mv, err := g.Play(nil)
	if err != nil {
		// An empty placement set passes every check.
		panic("game: pass rejected: " + err.Error())
	}
	return next, mv
}

// Undo removes the most recent move: its cells are cleared and the
// move is dropped from the log. Undoing with an empty log returns the
// game unchanged; Undo never fails.
func (g *Game) Undo() *Game {
	if len(g.Moves) == 0 {
		return g
	}
	last := g.Moves[len(g.Moves)-1]
	tiles := cloneTiles(g.Board.Tiles)
	for _, p := range last.Placements {
		tiles[p.Row][p.Col] = nil
	}
	return &Game{
		Config:  g.Config,
		Board:   Board{Squares: g.Board.Squares, Tiles: tiles},
		TileSet: g.TileSet,
		Players: g.Players,
		Moves:   g.Moves[:len(g.Moves)-1:len(g.Moves)-1],
		dict:    g.dict,
	}
}

// checkWords rejects the move if any formed word is missing from the
// dictionary. All offending words are reported, not just the first.
func (g *Game) checkWords(words []string) error {
	if g.dict == nil {
		return nil
	}
	var invalid []string
	for _, w := range words {
		if !g.dict.Contains(w) {
			invalid = append(invalid, w)
		}
	}
	if len(invalid) > 0 {
		return fmt.Errorf("not in dictionary: %s", strings.Join(invalid, ", "))
	}
	return nil
}

// PlayerName returns the name of the player a move index is assigned
// to: players take turns in order, cyclically.
func (g *Game) PlayerName(moveIndex int) string {
	if len(g.Players) == 0 {
		return UnknownPlayer
	}
	return g.Players[moveIndex%len(g.Players)].Name
}

// NextPlayer returns whose turn the next move is.
func (g *Game) NextPlayer() string {
	return g.PlayerName(len(g.Moves))
}

// PlayerScore is one scoreboard row.
type PlayerScore struct {
	Name   string `json:"name"`
	Points int    `json:"points"`
}

// Scoreboard recomputes cumulative scores from the move log, so it is
// always consistent with the current history, undo included.
func (g *Game) Scoreboard() []PlayerScore {
	if len(g.Players) == 0 {
		return nil
	}
	rows := make([]PlayerScore, len(g.Players))
	for i, p := range g.Players {
		rows[i].Name = p.Name
	}
	for i, mv := range g.Moves {
		rows[i%len(g.Players)].Points += mv.Points
	}
	return rows
}

// normalize lowercases tile keys and displayed letters so that board
// contents and dictionary lookups share one canonical form.
func normalize(placements []Placement) []Placement {
	if placements == nil {
		return nil
	}
	out := make([]Placement, len(placements))
	for i, p := range placements {
		p.Tile.Key = strings.ToLower(p.Tile.Key)
		p.Tile.Letter = strings.ToLower(p.Tile.Letter)
		out[i] = p
	}
	return out
}

// cloneTiles copies the occupancy grid. Tiles themselves are immutable
// once placed, so the pointers are shared.
func cloneTiles(tiles [][]*Tile) [][]*Tile {
	out := make([][]*Tile, len(tiles))
	for i, row := range tiles {
		out[i] = make([]*Tile, len(row))
		copy(out[i], row)
	}
	return out
}

// appendMove appends without aliasing the previous game's move slice.
func appendMove(moves []Move, mv Move) []Move {
	out := make([]Move, len(moves)+1)
	copy(out, moves)
	out[len(moves)] = mv
	return out
}
