// internal/results/store.go
//
// SQLite-backed store for finished-game results. The engine itself has
// no terminal state — a game ends when the players say it does — so the
// server records results when a client declares a game over, and serves
// an all-time leaderboard from them.

package results

import (
	"context"
	"database/sql"
)

// Result is one player's final line for one game.
type Result struct {
	GameID string `json:"gameId"`
	UserID string `json:"userId"`
	Player string `json:"player"`
	Score  int    `json:"score"`
	Won    bool   `json:"won"`
}

// Store wraps the shared *sql.DB.
type Store struct {
	db *sql.DB
}

// NewStore constructs a Store on the shared database handle.
func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// AlreadyRecorded reports whether results exist for a game.
func (s *Store) AlreadyRecorded(ctx context.Context, gameID string) (bool, error) {
	var cnt int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM results WHERE game_id=?`, gameID,
	).Scan(&cnt)
	return cnt > 0, err
}

// Insert stores one result row. Respects UNIQUE(game_id, player); a
// duplicate insert is ignored without error.
func (s *Store) Insert(ctx context.Context, r Result) error {
	won := 0
	if r.Won {
		won = 1
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO results(game_id, user_id, player, score, won)
		 VALUES(?,?,?,?,?)`, r.GameID, r.UserID, r.Player, r.Score, won,
	)
	return err
}

// LBRow is one leaderboard line.
type LBRow struct {
	Player string `json:"player"`
	Score  int    `json:"score"`
	GameID string `json:"gameId"`
}

// Leaderboard fetches the top recorded scores, highest first.
func (s *Store) Leaderboard(ctx context.Context, limit int) ([]LBRow, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT player, score, game_id
		 FROM results
		 ORDER BY score DESC, created_at ASC
		 LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]LBRow, 0, limit)
	for rows.Next() {
		var r LBRow
		if err := rows.Scan(&r.Player, &r.Score, &r.GameID); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
