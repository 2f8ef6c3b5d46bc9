// Package authz holds the year-scope authorization policy. It is a pure
// decision layer: callers resolve the actor and the target's owning-module
// year first, then ask for a decision. Missing chain data never reaches
// this package; stores report it as ErrNotFound before a decision is made.
package authz

import (
	"fmt"

	"github.com/lecturevault/lecturevault/internal/store"
)

// Actor is the authenticated caller as seen by the policy.
type Actor struct {
	ID   string
	Role string
	Year int
}

// Decision is the outcome of a policy check. Reason is human-readable and
// intended for logs, not for API responses.
type Decision struct {
	Allow  bool
	Reason string
}

// ActorFromUser adapts a user record to policy inputs.
func ActorFromUser(u *store.User) Actor {
	return Actor{ID: u.ID, Role: u.Role, Year: u.Year}
}

// CanRead decides whether the actor may read content owned by a module of
// the given year. Admins read everything; students only their own cohort.
// Year 0 (unassigned) matches no module year.
func CanRead(actor Actor, moduleYear int) Decision {
	if actor.Role == store.RoleAdmin {
		return Decision{Allow: true, Reason: "admin role"}
	}
	if actor.Year == store.YearUnassigned {
		return Decision{Allow: false, Reason: "actor has no year assigned"}
	}
	if actor.Year != moduleYear {
		return Decision{
			Allow:  false,
			Reason: fmt.Sprintf("actor year %d does not match module year %d", actor.Year, moduleYear),
		}
	}
	return Decision{Allow: true, Reason: "year match"}
}

// CanMutate decides whether the actor may create, update, or delete
// content. Only admins mutate, regardless of year; callers check this
// before resolving the ownership chain.
func CanMutate(actor Actor) Decision {
	if actor.Role == store.RoleAdmin {
		return Decision{Allow: true, Reason: "admin role"}
	}
	return Decision{Allow: false, Reason: fmt.Sprintf("role %q may not mutate content", actor.Role)}
}
