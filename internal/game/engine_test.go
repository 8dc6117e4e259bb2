package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubDict is a fixed word list for engine tests.
type stubDict map[string]bool

func (d stubDict) Contains(w string) bool { return d[w] }

// plainLayout returns an n×n layout of plain squares.
func plainLayout(n int) string {
	row := strings.Repeat(".", n)
	rows := make([]string, n)
	for i := range rows {
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}

// tripleWordLayout is a 5×5 board with a triple-word square at (0,0).
const tripleWordLayout = `
T....
.....
.....
.....
.....
`

func newTestGame(t *testing.T, cfg Config, layout string, players []Player, dict Dictionary) *Game {
	t.Helper()
	g, err := New(cfg, layout, DefaultTileSet(), players, dict)
	require.NoError(t, err)
	return g
}

// letters is shorthand for a horizontal placement of word starting at (row, col).
func letters(word string, row, col int) []Placement {
	out := make([]Placement, len(word))
	for i, r := range word {
		s := string(r)
		out[i] = Placement{Tile: Tile{Key: s, Letter: s}, Row: row, Col: col + i}
	}
	return out
}

func TestPlayBasicScore(t *testing.T) {
	// "cat" across the triple-word square: (3+1+1) * 3.
	g := newTestGame(t, Config{}, tripleWordLayout, nil, nil)

	next, mv, err := g.Play(letters("cat", 0, 0))
	require.NoError(t, err)
	assert.Equal(t, 15, mv.Points)
	assert.Equal(t, []string{"cat"}, mv.Words)
	assert.Len(t, next.Moves, 1)
}

func TestPlayPass(t *testing.T) {
	g := newTestGame(t, Config{CheckPlacement: true, UseDictionary: true},
		plainLayout(5), []Player{{Name: "a"}, {Name: "b"}}, stubDict{})

	next, mv := g.Pass()
	assert.Empty(t, mv.Placements)
	assert.Empty(t, mv.Words)
	assert.Equal(t, 0, mv.Points)
	assert.Len(t, next.Moves, 1)
	assert.Equal(t, "b", next.NextPlayer())
}

func TestPlayRejectsNonLinear(t *testing.T) {
	g := newTestGame(t, Config{CheckPlacement: true}, plainLayout(5), nil, nil)

	placements := []Placement{
		{Tile: Tile{Key: "a", Letter: "a"}, Row: 0, Col: 0},
		{Tile: Tile{Key: "b", Letter: "b"}, Row: 1, Col: 1},
	}
	next, _, err := g.Play(placements)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "one row or one column")
	assert.Nil(t, next)
	assert.True(t, g.Board.Empty())
	assert.Empty(t, g.Moves)
}

func TestPlayIsolatedSingleTileOnEmptyBoard(t *testing.T) {
	// First move, one tile: vacuously connected, forms no word.
	g := newTestGame(t, Config{CheckPlacement: true}, plainLayout(5), nil, nil)

	next, mv, err := g.Play(letters("q", 2, 2))
	require.NoError(t, err)
	assert.Empty(t, mv.Words)
	assert.Equal(t, 0, mv.Points)
	require.NotNil(t, next.Board.TileAt(2, 2))
}

func TestPlayWildcardScoresZero(t *testing.T) {
	// Blank playing as "c": the cell is worth 0 even on a premium square,
	// but the displayed letter still forms the word.
	g := newTestGame(t, Config{UseDictionary: true}, tripleWordLayout, nil,
		stubDict{"cat": true})

	placements := []Placement{
		{Tile: Tile{Key: Wildcard, Letter: "c"}, Row: 0, Col: 0},
		{Tile: Tile{Key: "a", Letter: "a"}, Row: 0, Col: 1},
		{Tile: Tile{Key: "t", Letter: "t"}, Row: 0, Col: 2},
	}
	_, mv, err := g.Play(placements)
	require.NoError(t, err)
	assert.Equal(t, []string{"cat"}, mv.Words)
	assert.Equal(t, 6, mv.Points) // (0+1+1) * 3
}

func TestMultipliersApplyOnlyToNewTiles(t *testing.T) {
	// First move lands on the triple-word square; the second move reuses
	// that tile, so the square's multiplier must not fire again.
	g := newTestGame(t, Config{}, tripleWordLayout, nil, nil)

	g1, mv1, err := g.Play(letters("cat", 0, 0))
	require.NoError(t, err)
	require.Equal(t, 15, mv1.Points)

	down := []Placement{
		{Tile: Tile{Key: "a", Letter: "a"}, Row: 1, Col: 0},
		{Tile: Tile{Key: "t", Letter: "t"}, Row: 2, Col: 0},
	}
	_, mv2, err := g1.Play(down)
	require.NoError(t, err)
	assert.Equal(t, []string{"cat"}, mv2.Words)
	assert.Equal(t, 5, mv2.Points) // plain 3+1+1, no reuse of the x3
}

func TestCrossWordsScoreBothDirections(t *testing.T) {
	// "cat" across, then "as" built off the a: the move scores the new
	// vertical word only (the horizontal word gains no new cell).
	g := newTestGame(t, Config{}, plainLayout(5), nil, nil)

	g1, _, err := g.Play(letters("cat", 1, 1))
	require.NoError(t, err)

	_, mv, err := g1.Play([]Placement{
		{Tile: Tile{Key: "s", Letter: "s"}, Row: 2, Col: 2},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"as"}, mv.Words)
	assert.Equal(t, 2, mv.Points)
}

func TestBingoBonus(t *testing.T) {
	g := newTestGame(t, Config{}, plainLayout(9), nil, nil)

	_, mv, err := g.Play(letters("aaaaaaa", 0, 0))
	require.NoError(t, err)
	assert.Equal(t, 7+BingoBonus, mv.Points)

	// Six tiles is one short of the bonus.
	_, mv6, err := g.Play(letters("aaaaaa", 4, 0))
	require.NoError(t, err)
	assert.Equal(t, 6, mv6.Points)
}

func TestDictionaryRejectionListsAllInvalidWords(t *testing.T) {
	// The move forms "xz" horizontally and two vertical crosses; only
	// one of the three is in the dictionary.
	g := newTestGame(t, Config{UseDictionary: true}, plainLayout(5), nil,
		stubDict{"aa": true})

	g1, _, err := g.Play(letters("aa", 1, 1))
	require.NoError(t, err)

	next, _, err := g1.Play(letters("xz", 2, 1))
	require.Error(t, err)
	assert.Nil(t, next)
	assert.Contains(t, err.Error(), "not in dictionary")
	assert.Contains(t, err.Error(), "xz")
	assert.Contains(t, err.Error(), "ax")
	assert.Contains(t, err.Error(), "az")

	// Rejection left the original untouched.
	assert.Len(t, g1.Moves, 1)
	assert.Nil(t, g1.Board.TileAt(2, 1))
}

func TestPlayRejectionLeavesStateUntouched(t *testing.T) {
	g := newTestGame(t, Config{CheckPlacement: true}, plainLayout(5), nil, nil)
	g1, _, err := g.Play(letters("ab", 2, 1))
	require.NoError(t, err)

	// Occupied target cell.
	next, _, err := g1.Play(letters("c", 2, 1))
	require.Error(t, err)
	assert.Nil(t, next)
	assert.Len(t, g1.Moves, 1)
	assert.Equal(t, "a", g1.Board.TileAt(2, 1).Letter)
}

func TestUndoRestoresPreviousState(t *testing.T) {
	g := newTestGame(t, Config{}, plainLayout(5), []Player{{Name: "a"}, {Name: "b"}}, nil)

	g1, _, err := g.Play(letters("cat", 0, 0))
	require.NoError(t, err)
	g2, _, err := g1.Play(letters("at", 1, 1))
	require.NoError(t, err)

	undone := g2.Undo()
	assert.Len(t, undone.Moves, 1)
	assert.Nil(t, undone.Board.TileAt(1, 1))
	assert.Nil(t, undone.Board.TileAt(1, 2))
	assert.NotNil(t, undone.Board.TileAt(0, 0))
	assert.Equal(t, g1.Scoreboard(), undone.Scoreboard())
	assert.Equal(t, g1.NextPlayer(), undone.NextPlayer())

	// g2 itself is untouched.
	assert.Len(t, g2.Moves, 2)
	assert.NotNil(t, g2.Board.TileAt(1, 1))
}

func TestUndoOnEmptyHistoryIsNoop(t *testing.T) {
	g := newTestGame(t, Config{}, plainLayout(5), nil, nil)
	assert.Same(t, g, g.Undo())
}

func TestUndoThenReplayDoesNotAliasMoveLog(t *testing.T) {
	g := newTestGame(t, Config{}, plainLayout(5), nil, nil)
	g1, _, err := g.Play(letters("cat", 0, 0))
	require.NoError(t, err)

	undone := g1.Undo()
	_, mv, err := undone.Play(letters("at", 2, 0))
	require.NoError(t, err)
	assert.Equal(t, []string{"at"}, mv.Words)

	// The branch point still records the original move.
	assert.Equal(t, []string{"cat"}, g1.Moves[0].Words)
}

func TestTurnAttributionCycles(t *testing.T) {
	g := newTestGame(t, Config{}, plainLayout(5), []Player{{Name: "alice"}, {Name: "bob"}}, nil)

	assert.Equal(t, "alice", g.NextPlayer())
	assert.Equal(t, "alice", g.PlayerName(0))
	assert.Equal(t, "bob", g.PlayerName(1))
	assert.Equal(t, "alice", g.PlayerName(2))

	g1, _ := g.Pass()
	g2, _ := g1.Pass()
	assert.Equal(t, "alice", g2.NextPlayer())
}

func TestPlayerNameWithoutPlayers(t *testing.T) {
	g := newTestGame(t, Config{}, plainLayout(5), nil, nil)
	assert.Equal(t, UnknownPlayer, g.NextPlayer())
	assert.Nil(t, g.Scoreboard())
}

func TestScoreboardAccumulates(t *testing.T) {
	g := newTestGame(t, Config{}, plainLayout(5),
		[]Player{{Name: "alice"}, {Name: "bob"}}, nil)

	g1, mv1, err := g.Play(letters("cat", 0, 0)) // alice
	require.NoError(t, err)
	g2, _ := g1.Pass() // bob
	g3, mv3, err := g2.Play(letters("at", 2, 0)) // alice again
	require.NoError(t, err)

	board := g3.Scoreboard()
	require.Len(t, board, 2)
	assert.Equal(t, PlayerScore{Name: "alice", Points: mv1.Points + mv3.Points}, board[0])
	assert.Equal(t, PlayerScore{Name: "bob", Points: 0}, board[1])
}

func TestPlayNormalizesCase(t *testing.T) {
	g := newTestGame(t, Config{UseDictionary: true}, plainLayout(5), nil,
		stubDict{"cat": true})

	placements := []Placement{
		{Tile: Tile{Key: "C", Letter: "C"}, Row: 0, Col: 0},
		{Tile: Tile{Key: "A", Letter: "A"}, Row: 0, Col: 1},
		{Tile: Tile{Key: "T", Letter: "T"}, Row: 0, Col: 2},
	}
	next, mv, err := g.Play(placements)
	require.NoError(t, err)
	assert.Equal(t, []string{"cat"}, mv.Words)
	assert.Equal(t, "c", next.Board.TileAt(0, 0).Key)
}
