package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lecturevault/lecturevault/internal/store"
)

// usersAPIHandler provides REST handlers for user endpoints.
type usersAPIHandler struct{}

func registerUserRoutes(r chi.Router) {
	h := &usersAPIHandler{}
	r.Get("/users/me", h.Me)
}

// Me returns the authenticated caller's profile.
// GET /api/v1/users/me
func (h *usersAPIHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(user))
}

func toUserResponse(u *store.User) *UserResponse {
	return &UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Role:        u.Role,
		Year:        u.Year,
		CreatedAt:   u.CreatedAt,
	}
}
