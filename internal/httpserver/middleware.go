// internal/httpserver/middleware.go
//
// Auth middleware. Tokens are accepted from either the Authorization
// bearer header or the auth cookie. requireAuth rejects without a valid
// token; withOptionalAuth attaches the user when present and continues
// anonymously otherwise.

package httpserver

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// ctxUserKey is the context key for the authenticated user.
type ctxUserKey struct{}

// bearerOrCookie extracts a token string from the Authorization header
// or the auth cookie, in that order.
func bearerOrCookie(r *http.Request) string {
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	if c, err := r.Cookie(getEnv("COOKIE_NAME", "scrabble_token")); err == nil {
		return c.Value
	}
	return ""
}

// parseToken validates an HS256 token and returns the authUser claims.
func parseToken(tok string) (*authUser, error) {
	secret := getEnv("JWT_SECRET", "dev_secret_change_me")
	parsed, err := jwt.Parse(tok, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !parsed.Valid {
		return nil, err
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}
	id, _ := claims["id"].(string)
	username, _ := claims["username"].(string)
	if id == "" {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return &authUser{ID: id, Username: username}, nil
}

// requireAuth blocks the request unless a valid token is supplied.
func (s *Server) requireAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tok := bearerOrCookie(r)
			if tok == "" {
				http.Error(w, `{"error":"Unauthorized"}`, http.StatusUnauthorized)
				return
			}
			u, err := parseToken(tok)
			if err != nil || u == nil {
				http.Error(w, `{"error":"Unauthorized"}`, http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxUserKey{}, u)))
		})
	}
}

// withOptionalAuth attaches the user to context when a valid token is
// present, and passes through anonymously otherwise.
func (s *Server) withOptionalAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if tok := bearerOrCookie(r); tok != "" {
				if u, err := parseToken(tok); err == nil && u != nil {
					r = r.WithContext(context.WithValue(r.Context(), ctxUserKey{}, u))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
