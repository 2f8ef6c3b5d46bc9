package api

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/lecturevault/lecturevault/internal/auth"
	"github.com/lecturevault/lecturevault/internal/authz"
	"github.com/lecturevault/lecturevault/internal/metrics"
	"github.com/lecturevault/lecturevault/internal/store"
)

// requireUser pulls the authenticated user off the context. Writes 401 and
// returns nil when the request is unauthenticated.
func requireUser(w http.ResponseWriter, r *http.Request) *store.User {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED")
		return nil
	}
	return user
}

// requireRead resolves the target's owning-module year and checks the read
// policy. A missing hop anywhere in the ownership chain is reported as 404,
// never as an access failure. Returns false when the response has been
// written and the handler must stop.
func requireRead(w http.ResponseWriter, r *http.Request, user *store.User, resolveYear func(context.Context) (int, error)) bool {
	year, err := resolveYear(r.Context())
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not found", "NOT_FOUND")
		return false
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return false
	}

	d := authz.CanRead(authz.ActorFromUser(user), year)
	metrics.RecordDecision(d.Allow)
	if !d.Allow {
		log.Printf("api: read denied for user %s: %s", user.ID, d.Reason)
		writeError(w, http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED")
		return false
	}
	return true
}

// yearOf adapts an already-loaded module year to the resolver shape used
// by requireRead.
func yearOf(year int) func(context.Context) (int, error) {
	return func(context.Context) (int, error) { return year, nil }
}

// requireMutate checks the mutation policy. The role check runs before any
// chain resolution so non-admins learn nothing about what exists.
func requireMutate(w http.ResponseWriter, user *store.User) bool {
	d := authz.CanMutate(authz.ActorFromUser(user))
	metrics.RecordDecision(d.Allow)
	if !d.Allow {
		log.Printf("api: mutation denied for user %s: %s", user.ID, d.Reason)
		writeError(w, http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED")
		return false
	}
	return true
}
