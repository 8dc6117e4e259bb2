// internal/game/tileset.go
//
// Tile set: the mapping from tile scoring key to point value.
// Keys are single lowercase letters plus the Wildcard entry (a single
// space), which is worth zero points. The default set uses the English
// tournament letter values.

package game

import (
	"fmt"
)

// TileSet maps a tile scoring key to its point value.
type TileSet map[string]int

// DefaultTileSet returns the English letter values, blank included.
func DefaultTileSet() TileSet {
	return TileSet{
		"a": 1, "b": 3, "c": 3, "d": 2, "e": 1, "f": 4, "g": 2, "h": 4,
		"i": 1, "j": 8, "k": 5, "l": 1, "m": 3, "n": 1, "o": 1, "p": 3,
		"q": 10, "r": 1, "s": 1, "t": 1, "u": 1, "v": 4, "w": 4, "x": 8,
		"y": 4, "z": 10, Wildcard: 0,
	}
}

// Score returns the point value of a scoring key; unknown keys score 0.
// Keys are validated before any scoring happens, so the zero fallback
// is only ever taken by the wildcard of a set that omits it.
func (ts TileSet) Score(key string) int {
	return ts[key]
}

// CheckTile validates a tile identity: the displayed letter must be one
// alphabetic character and the scoring key must be in the set or be the
// wildcard. This check runs on every placement regardless of the
// placement-rule config flag.
func (ts TileSet) CheckTile(t Tile) error {
	if !isSingleLetter(t.Letter) {
		return fmt.Errorf("invalid tile: displayed letter %q must be a single letter", t.Letter)
	}
	if t.Key == Wildcard {
		return nil
	}
	if _, ok := ts[t.Key]; !ok {
		return fmt.Errorf("invalid tile: unknown letter %q", t.Key)
	}
	return nil
}

// isSingleLetter reports whether s is exactly one ASCII letter.
func isSingleLetter(s string) bool {
	if len(s) != 1 {
		return false
	}
	r := s[0]
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
