package results

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scrabble/assets"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	entries, err := assets.Migrations.ReadDir("migrations")
	require.NoError(t, err)
	for _, e := range entries {
		b, err := assets.Migrations.ReadFile("migrations/" + e.Name())
		require.NoError(t, err)
		_, err = db.Exec(string(b))
		require.NoError(t, err)
	}
	return db
}

func TestInsertAndAlreadyRecorded(t *testing.T) {
	ctx := context.Background()
	st := NewStore(testDB(t))

	done, err := st.AlreadyRecorded(ctx, "g1")
	require.NoError(t, err)
	assert.False(t, done)

	require.NoError(t, st.Insert(ctx, Result{GameID: "g1", Player: "alice", Score: 42, Won: true}))
	require.NoError(t, st.Insert(ctx, Result{GameID: "g1", Player: "bob", Score: 30}))

	done, err = st.AlreadyRecorded(ctx, "g1")
	require.NoError(t, err)
	assert.True(t, done)
}

func TestInsertIgnoresDuplicates(t *testing.T) {
	ctx := context.Background()
	st := NewStore(testDB(t))

	require.NoError(t, st.Insert(ctx, Result{GameID: "g1", Player: "alice", Score: 42}))
	require.NoError(t, st.Insert(ctx, Result{GameID: "g1", Player: "alice", Score: 99}))

	rows, err := st.Leaderboard(ctx, 10)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 42, rows[0].Score) // first insert wins
}

func TestLeaderboardOrderAndLimit(t *testing.T) {
	ctx := context.Background()
	st := NewStore(testDB(t))

	require.NoError(t, st.Insert(ctx, Result{GameID: "g1", Player: "alice", Score: 10}))
	require.NoError(t, st.Insert(ctx, Result{GameID: "g2", Player: "bob", Score: 50, Won: true}))
	require.NoError(t, st.Insert(ctx, Result{GameID: "g3", Player: "cara", Score: 30}))

	rows, err := st.Leaderboard(ctx, 2)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, LBRow{Player: "bob", Score: 50, GameID: "g2"}, rows[0])
	assert.Equal(t, LBRow{Player: "cara", Score: 30, GameID: "g3"}, rows[1])

	// Non-positive limit falls back to the default.
	rows, err = st.Leaderboard(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}
