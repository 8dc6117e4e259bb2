// internal/httpserver/routes_results.go
//
// Finished-game results.
//   POST /results     — record a finished game's final scoreboard (once per game).
//   GET  /leaderboard — top recorded scores.
//
// Recording is idempotent per game: the first submission wins and later
// ones return alreadyRecorded.

package httpserver

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"scrabble/internal/results"
)

// resultReq is the payload for POST /results. Player names which
// participant the submitting client controlled (used for user stats).
type resultReq struct {
	GameID string `json:"gameId"`
	Player string `json:"player"`
}

// mountResults registers the results + leaderboard routes on r.
func (s *Server) mountResults(r chi.Router) {
	rs := results.NewStore(s.db)

	r.Post("/results", func(w http.ResponseWriter, req *http.Request) {
		var body resultReq
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil || body.GameID == "" {
			http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
			return
		}
		sess, err := s.store.Get(req.Context(), body.GameID)
		if err != nil {
			http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
			return
		}

		done, err := rs.AlreadyRecorded(req.Context(), body.GameID)
		if err != nil {
			http.Error(w, `{"error":"db_error"}`, http.StatusInternalServerError)
			return
		}
		if done {
			_ = json.NewEncoder(w).Encode(map[string]bool{"alreadyRecorded": true})
			return
		}

		board := sess.Game.Scoreboard()
		if len(board) == 0 {
			http.Error(w, `{"error":"no_players"}`, http.StatusBadRequest)
			return
		}
		top := board[0].Points
		for _, row := range board[1:] {
			if row.Points > top {
				top = row.Points
			}
		}

		me, _ := req.Context().Value(ctxUserKey{}).(*authUser)
		for _, row := range board {
			res := results.Result{
				GameID: body.GameID,
				Player: row.Name,
				Score:  row.Points,
				Won:    row.Points == top,
			}
			if me != nil && row.Name == body.Player {
				res.UserID = me.ID
			}
			if err := rs.Insert(req.Context(), res); err != nil {
				log.Warn().Err(err).Str("gameId", body.GameID).Str("player", row.Name).Msg("insert result")
			}
		}

		now := time.Now().UTC().Format(time.RFC3339)
		if _, err := s.db.Exec(`UPDATE games SET status='finished', finished_at=? WHERE id=?`, now, body.GameID); err != nil {
			log.Warn().Err(err).Str("gameId", body.GameID).Msg("mark game finished")
		}

		// Update account stats for the submitting user's own seat.
		if me != nil && body.Player != "" {
			for _, row := range board {
				if row.Name == body.Player {
					if err := s.bumpStats(me.ID, row.Points == top, row.Points); err != nil {
						log.Warn().Err(err).Str("userId", me.ID).Msg("bump stats")
					}
					break
				}
			}
		}

		_ = json.NewEncoder(w).Encode(map[string]any{"recorded": true, "scoreboard": board})
	})

	r.Get("/leaderboard", func(w http.ResponseWriter, req *http.Request) {
		limit := 20
		if v := req.URL.Query().Get("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
				limit = n
			}
		}
		rows, err := rs.Leaderboard(req.Context(), limit)
		if err != nil {
			http.Error(w, `{"error":"db_error"}`, http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(rows)
	})
}
