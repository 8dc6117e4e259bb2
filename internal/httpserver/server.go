// internal/httpserver/server.go
//
// HTTP server wiring for the scrabble backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Game endpoints (optional auth): /game/new, /game/play, /game/pass,
//     /game/undo, GET /game/{id}, GET /game/{id}/scoreboard.
//   - Results + leaderboard endpoints (optional auth): /results, /leaderboard.
//   - Auth + profile endpoints (require auth): /auth/*, /stats/me, /games/mine.
//
// Notes:
//   - Active games live in the session store as immutable engine values;
//     every committed move replaces the stored value wholesale.
//   - SQLite keeps ownership rows and per-move history, best effort:
//     a DB hiccup is logged and never fails a played move.
//   - CORS is origin-aware and credentials-enabled (so cookies work).

package httpserver

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"scrabble/internal/game"
	"scrabble/internal/store"
	"scrabble/internal/words"
)

// Server bundles router, session store, and DB handle.
type Server struct {
	r      *chi.Mux
	store  store.Store
	db     *sql.DB
	layout string
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, db *sql.DB) *Server {
	s := &Server{r: chi.NewRouter(), store: st, db: db, layout: loadLayout()}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(corsFromEnv)                     // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"scrabble-go","endpoints":["/health","POST /game/new","POST /game/play","POST /game/pass","POST /game/undo","/auth/*"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	// Game endpoints — OPTIONAL AUTH (guests can play)
	s.r.With(s.withOptionalAuth()).Post("/game/new", s.handleNewGame)
	s.r.With(s.withOptionalAuth()).Post("/game/play", s.handlePlay)
	s.r.With(s.withOptionalAuth()).Post("/game/pass", s.handlePass)
	s.r.With(s.withOptionalAuth()).Post("/game/undo", s.handleUndo)
	s.r.Get("/game/{id}", s.handleGetGame)
	s.r.Get("/game/{id}/scoreboard", s.handleScoreboard)

	// Finished-game results + leaderboard
	s.mountResults(s.r.With(s.withOptionalAuth()))

	// Auth + profile (require auth)
	s.mountAuthRoutes()

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	// Debug: dictionary size
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]int{"words": words.Count()})
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// loadLayout reads BOARD_LAYOUT_FILE if set, else the embedded layout.
func loadLayout() string {
	if path := os.Getenv("BOARD_LAYOUT_FILE"); path != "" {
		if b, err := os.ReadFile(path); err == nil {
			return string(b)
		} else {
			log.Warn().Err(err).Str("path", path).Msg("read board layout, using default")
		}
	}
	return game.StandardLayout()
}

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// corsFromEnv enables credentialed CORS for a single origin.
// Uses CLIENT_ORIGIN env var; defaults to http://localhost:5173.
func corsFromEnv(next http.Handler) http.Handler {
	origin := os.Getenv("CLIENT_ORIGIN")
	if origin == "" {
		origin = "http://localhost:5173"
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ------------------------------ GAME ---------------------------------------

// placementReq is the wire form of one tile placement. Key defaults to
// the letter itself; a blank tile sends key " " plus its chosen letter.
type placementReq struct {
	Letter string `json:"letter"`
	Key    string `json:"key"`
	Row    int    `json:"row"`
	Col    int    `json:"col"`
}

// toPlacements converts wire placements into engine placements.
func toPlacements(reqs []placementReq) []game.Placement {
	out := make([]game.Placement, len(reqs))
	for i, p := range reqs {
		key := p.Key
		if key == "" {
			key = p.Letter
		}
		out[i] = game.Placement{
			Tile: game.Tile{Key: key, Letter: p.Letter},
			Row:  p.Row,
			Col:  p.Col,
		}
	}
	return out
}

// newGameReq/Res payloads for POST /game/new.
type newGameReq struct {
	Players        []string `json:"players"`
	UseDictionary  bool     `json:"useDictionary"`
	CheckPlacement bool     `json:"checkPlacement"`
	Layout         string   `json:"layout"` // optional custom board layout text
}
type newGameRes struct {
	GameID     string `json:"gameId"`
	Size       int    `json:"size"`
	NextPlayer string `json:"nextPlayer"`
}

// handleNewGame creates a new session and persists a DB "owner" row
// (either user_id or anonymous_id) for history/stats.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	_ = json.NewDecoder(r.Body).Decode(&req)

	layout := s.layout
	if req.Layout != "" {
		layout = req.Layout
	}
	players := make([]game.Player, len(req.Players))
	for i, name := range req.Players {
		players[i] = game.Player{Name: name}
	}
	cfg := game.Config{UseDictionary: req.UseDictionary, CheckPlacement: req.CheckPlacement}
	g, err := game.New(cfg, layout, game.DefaultTileSet(), players, words.Default())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
		return
	}

	sess := &store.Session{ID: genID(), Game: g}
	if err := s.store.Save(r.Context(), sess); err != nil {
		log.Error().Err(err).Msg("save session")
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}

	// Persist the owner row; best effort.
	playersJSON, _ := json.Marshal(req.Players)
	now := time.Now().UTC().Format(time.RFC3339)
	if me, _ := r.Context().Value(ctxUserKey{}).(*authUser); me != nil {
		_, err := s.db.Exec(`INSERT INTO games (id, user_id, players, status, moves, started_at)
		                     VALUES (?,?,?,?,0,?)`, sess.ID, me.ID, string(playersJSON), "playing", now)
		if err != nil {
			log.Warn().Err(err).Str("gameId", sess.ID).Msg("insert user game row")
		}
	} else {
		anon := s.ensureAnonID(w, r)
		_, err := s.db.Exec(`INSERT INTO games (id, anonymous_id, players, status, moves, started_at)
		                     VALUES (?,?,?,?,0,?)`, sess.ID, anon, string(playersJSON), "playing", now)
		if err != nil {
			log.Warn().Err(err).Str("gameId", sess.ID).Msg("insert anon game row")
		}
	}

	_ = json.NewEncoder(w).Encode(newGameRes{GameID: sess.ID, Size: g.Board.Size(), NextPlayer: g.NextPlayer()})
}

// playReq/Res payloads for POST /game/play.
type playReq struct {
	GameID     string         `json:"gameId"`
	Placements []placementReq `json:"placements"`
}
type playRes struct {
	Words      []string           `json:"words"`
	Points     int                `json:"points"`
	Player     string             `json:"player"`
	NextPlayer string             `json:"nextPlayer"`
	Scoreboard []game.PlayerScore `json:"scoreboard"`
}

// handlePlay runs the engine pipeline for a proposed move. A rejected
// move changes nothing; a committed one replaces the stored session.
func (s *Server) handlePlay(w http.ResponseWriter, r *http.Request) {
	var req playReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	sess, err := s.store.Get(r.Context(), req.GameID)
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}

	next, mv, err := sess.Game.Play(toPlacements(req.Placements))
	if err != nil {
		// Rejection: the stored session is untouched.
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
		return
	}
	s.commitMove(w, r, sess, next, mv)
}

// passReq is the payload for POST /game/pass.
type passReq struct {
	GameID string `json:"gameId"`
}

// handlePass commits an empty move: turn advances, nothing else changes.
func (s *Server) handlePass(w http.ResponseWriter, r *http.Request) {
	var req passReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	sess, err := s.store.Get(r.Context(), req.GameID)
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}
	next, mv := sess.Game.Pass()
	s.commitMove(w, r, sess, next, mv)
}

// commitMove stores the successor game, records the move row (best
// effort), and writes the standard move response.
func (s *Server) commitMove(w http.ResponseWriter, r *http.Request, sess *store.Session, next *game.Game, mv game.Move) {
	if err := s.store.Save(r.Context(), &store.Session{ID: sess.ID, Game: next}); err != nil {
		log.Error().Err(err).Msg("save session")
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}

	moveIndex := len(next.Moves) - 1
	player := next.PlayerName(moveIndex)
	wordsJSON, _ := json.Marshal(mv.Words)
	if _, err := s.db.Exec(`INSERT INTO game_moves (game_id, move_index, player, words, points)
	                        VALUES (?,?,?,?,?)`, sess.ID, moveIndex, player, string(wordsJSON), mv.Points); err != nil {
		log.Warn().Err(err).Str("gameId", sess.ID).Msg("insert move row")
	}
	if _, err := s.db.Exec(`UPDATE games SET moves=? WHERE id=?`, len(next.Moves), sess.ID); err != nil {
		log.Warn().Err(err).Str("gameId", sess.ID).Msg("update move count")
	}

	_ = json.NewEncoder(w).Encode(playRes{
		Words:      mv.Words,
		Points:     mv.Points,
		Player:     player,
		NextPlayer: next.NextPlayer(),
		Scoreboard: next.Scoreboard(),
	})
}

// undoReq/Res payloads for POST /game/undo.
type undoReq struct {
	GameID string `json:"gameId"`
}
type undoRes struct {
	Moves      int                `json:"moves"`
	NextPlayer string             `json:"nextPlayer"`
	Scoreboard []game.PlayerScore `json:"scoreboard"`
}

// handleUndo pops the last move. Undo on an empty history is a no-op.
func (s *Server) handleUndo(w http.ResponseWriter, r *http.Request) {
	var req undoReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	sess, err := s.store.Get(r.Context(), req.GameID)
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}

	undone := sess.Game.Undo()
	if len(undone.Moves) != len(sess.Game.Moves) {
		if err := s.store.Save(r.Context(), &store.Session{ID: sess.ID, Game: undone}); err != nil {
			log.Error().Err(err).Msg("save session")
			http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
			return
		}
		if _, err := s.db.Exec(`DELETE FROM game_moves WHERE game_id=? AND move_index=?`,
			sess.ID, len(undone.Moves)); err != nil {
			log.Warn().Err(err).Str("gameId", sess.ID).Msg("delete move row")
		}
		if _, err := s.db.Exec(`UPDATE games SET moves=? WHERE id=?`, len(undone.Moves), sess.ID); err != nil {
			log.Warn().Err(err).Str("gameId", sess.ID).Msg("update move count")
		}
	}

	_ = json.NewEncoder(w).Encode(undoRes{
		Moves:      len(undone.Moves),
		NextPlayer: undone.NextPlayer(),
		Scoreboard: undone.Scoreboard(),
	})
}

// handleGetGame returns the full persisted game representation.
func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	sess, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"id": sess.ID, "game": sess.Game})
}

// handleScoreboard returns the recomputed cumulative scores.
func (s *Server) handleScoreboard(w http.ResponseWriter, r *http.Request) {
	sess, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}
	_ = json.NewEncoder(w).Encode(undoRes{
		Moves:      len(sess.Game.Moves),
		NextPlayer: sess.Game.NextPlayer(),
		Scoreboard: sess.Game.Scoreboard(),
	})
}

// ------------------------------- small util --------------------------------

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
