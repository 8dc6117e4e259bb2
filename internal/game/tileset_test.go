package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultTileSetValues(t *testing.T) {
	ts := DefaultTileSet()
	assert.Len(t, ts, 27) // 26 letters + blank
	assert.Equal(t, 1, ts.Score("e"))
	assert.Equal(t, 4, ts.Score("f"))
	assert.Equal(t, 8, ts.Score("j"))
	assert.Equal(t, 10, ts.Score("q"))
	assert.Equal(t, 10, ts.Score("z"))
	assert.Equal(t, 0, ts.Score(Wildcard))
	assert.Equal(t, 0, ts.Score("?"))
}

func TestCheckTile(t *testing.T) {
	ts := DefaultTileSet()

	assert.NoError(t, ts.CheckTile(Tile{Key: "a", Letter: "a"}))
	assert.NoError(t, ts.CheckTile(Tile{Key: Wildcard, Letter: "z"}))
	assert.NoError(t, ts.CheckTile(Tile{Key: "q", Letter: "Q"}))

	assert.Error(t, ts.CheckTile(Tile{Key: "1", Letter: "1"}))
	assert.Error(t, ts.CheckTile(Tile{Key: "a", Letter: ""}))
	assert.Error(t, ts.CheckTile(Tile{Key: "a", Letter: "ab"}))
	assert.Error(t, ts.CheckTile(Tile{Key: Wildcard, Letter: " "}))
	assert.Error(t, ts.CheckTile(Tile{Key: "ab", Letter: "a"}))
}
