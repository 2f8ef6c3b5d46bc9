package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/alexedwards/scs/v2"

	"github.com/lecturevault/lecturevault/internal/store"
)

type contextKey string

const UserContextKey contextKey = "user"

// Middleware authenticates API requests. A request is accepted with either
// a server-side session cookie or a Bearer API token; in both cases the
// resolved *store.User is placed on the request context.
type Middleware struct {
	sessions *scs.SessionManager
	users    *store.UserStore
	tokens   TokenStore
}

// NewMiddleware creates a new auth Middleware.
func NewMiddleware(sm *scs.SessionManager, us *store.UserStore, ts TokenStore) *Middleware {
	return &Middleware{sessions: sm, users: us, tokens: ts}
}

// Authenticate resolves the caller's identity. Bearer tokens are checked
// first; a session cookie is the fallback. Unauthenticated requests get a
// 401 JSON response.
func (m *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if authHeader := r.Header.Get("Authorization"); strings.HasPrefix(authHeader, "Bearer ") {
			m.authenticateToken(w, r, next, strings.TrimPrefix(authHeader, "Bearer "))
			return
		}

		userID := m.sessions.GetString(r.Context(), SessionUserIDKey)
		if userID == "" {
			writeUnauthorized(w)
			return
		}

		user, err := m.users.GetByID(r.Context(), userID)
		if err != nil {
			// Session references a deleted user — destroy it.
			_ = m.sessions.Destroy(r.Context())
			writeUnauthorized(w)
			return
		}

		next.ServeHTTP(w, r.WithContext(withUser(r.Context(), user)))
	})
}

// authenticateToken validates a Bearer API token and, on success, serves the
// request with the token owner's user on the context.
func (m *Middleware) authenticateToken(w http.ResponseWriter, r *http.Request, next http.Handler, plaintext string) {
	if plaintext == "" {
		writeUnauthorized(w)
		return
	}

	rec, err := m.tokens.GetByHash(r.Context(), HashToken(plaintext))
	if err != nil {
		writeUnauthorized(w)
		return
	}
	if rec.RevokedAt.Valid {
		writeUnauthorized(w)
		return
	}
	if rec.ExpiresAt.Valid && rec.ExpiresAt.Time.Before(time.Now()) {
		writeUnauthorized(w)
		return
	}

	user, err := m.users.GetByID(r.Context(), rec.UserID)
	if err != nil {
		writeUnauthorized(w)
		return
	}

	// Update last_used_at asynchronously to avoid write overhead on every read.
	go m.tokens.UpdateLastUsed(context.Background(), rec.ID)

	next.ServeHTTP(w, r.WithContext(withUser(r.Context(), user)))
}

func withUser(ctx context.Context, u *store.User) context.Context {
	return context.WithValue(ctx, UserContextKey, u)
}

// UserFromContext retrieves the authenticated user from the context.
func UserFromContext(ctx context.Context) *store.User {
	u, _ := ctx.Value(UserContextKey).(*store.User)
	return u
}

// writeUnauthorized writes a 401 JSON response.
func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized", "code": "UNAUTHORIZED"})
}
