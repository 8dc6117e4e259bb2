// internal/game/types.go
//
// Core type definitions for the scrabble scoring engine.
// Defines:
//   - Square: one board cell's static letter/word multipliers.
//   - Tile: a scoring key plus the letter it shows on the board.
//   - Placement: one tile proposed for one cell.
//   - Move: a committed record of placements, formed words, and points.
//   - Board, Player, Config, Game: the persisted game value.
//
// The engine is pure and single-threaded: Play/Undo never mutate the
// receiver, they build and return a fresh Game. Callers serialize move
// submission against the latest value.

package game

const (
	// RackSize is the maximum number of tiles a move may place.
	RackSize = 7

	// BingoBonus is awarded when a move places a full rack of tiles.
	BingoBonus = 50

	// Wildcard is the tile-set key of the zero-value blank tile.
	Wildcard = " "

	// UnknownPlayer is the turn attribution when no players are configured.
	UnknownPlayer = "unknown"
)

// Square holds the static multipliers of one board cell.
// Both multipliers are >= 1; a plain square is {1, 1}.
type Square struct {
	LetterMultiplier int `json:"letterMultiplier"`
	WordMultiplier   int `json:"wordMultiplier"`
}

// Tile is a scoring identity on the board. Key is a single lowercase
// letter present in the tile set, or Wildcard for the blank tile.
// Letter is the letter the tile displays: for a normal tile it equals
// Key, for a blank it is whatever letter the player chose.
type Tile struct {
	Key    string `json:"key"`
	Letter string `json:"letter"`
}

// Placement proposes (or records) the occupation of one cell by one tile.
type Placement struct {
	Tile Tile `json:"tile"`
	Row  int  `json:"row"`
	Col  int  `json:"col"`
}

// Move is an immutable record of one committed turn.
// A pass has no placements, no words, and zero points.
type Move struct {
	Placements []Placement `json:"placements"`
	Words      []string    `json:"words"`
	Points     int         `json:"points"`
}

// Player identifies one participant. Turn order is slice order, cyclic.
type Player struct {
	Name string `json:"name"`
}

// Config toggles the optional validation stages of the move pipeline.
type Config struct {
	UseDictionary  bool `json:"useDictionary"`
	CheckPlacement bool `json:"checkPlacement"`
}

// Board pairs the static square grid with the tile occupancy grid.
// Both grids are always N×N with matching N. A nil entry in Tiles is
// an empty cell.
type Board struct {
	Squares [][]Square `json:"squares"`
	Tiles   [][]*Tile  `json:"tiles"`
}

// Size returns the board dimension N.
func (b Board) Size() int {
	return len(b.Squares)
}

// TileAt returns the tile at (row, col), or nil if the cell is empty
// or out of bounds.
func (b Board) TileAt(row, col int) *Tile {
	if row < 0 || row >= len(b.Tiles) || col < 0 || col >= len(b.Tiles[row]) {
		return nil
	}
	return b.Tiles[row][col]
}

// Empty reports whether no cell on the board holds a tile.
func (b Board) Empty() bool {
	for _, row := range b.Tiles {
		for _, t := range row {
			if t != nil {
				return false
			}
		}
	}
	return true
}

// Dictionary is the word-membership test injected at game construction.
// Implementations receive lowercase, letters-only words.
type Dictionary interface {
	Contains(word string) bool
}

// Game is the single aggregate root. Everything it owns is exported so
// the value round-trips through encoding/json verbatim; the dictionary
// is runtime configuration and is reattached after a load.
type Game struct {
	Config  Config   `json:"config"`
	Board   Board    `json:"board"`
	TileSet TileSet  `json:"tileSet"`
	Players []Player `json:"players"`
	Moves   []Move   `json:"moves"`

	dict Dictionary
}

// New constructs a game from a board layout text, a tile set, and an
// ordered player list. The dictionary may be nil when Config.UseDictionary
// is false.
func New(cfg Config, layout string, tileSet TileSet, players []Player, dict Dictionary) (*Game, error) {
	squares, err := ParseLayout(layout)
	if err != nil {
		return nil, err
	}
	n := len(squares)
	tiles := make([][]*Tile, n)
	for i := range tiles {
		tiles[i] = make([]*Tile, n)
	}
	g := &Game{
		Config:  cfg,
		Board:   Board{Squares: squares, Tiles: tiles},
		TileSet: tileSet,
		Players: players,
		dict:    dict,
	}
	return g, nil
}

// SetDictionary reattaches the dictionary to a game loaded from its
// persisted representation.
func (g *Game) SetDictionary(dict Dictionary) {
	g.dict = dict
}
