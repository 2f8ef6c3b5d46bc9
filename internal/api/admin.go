package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lecturevault/lecturevault/internal/store"
)

// adminAPIHandler provides REST handlers for admin-only user management.
type adminAPIHandler struct {
	users *store.UserStore
}

// registerAdminRoutes registers admin routes inside a chi Group with a
// role-check middleware.
func registerAdminRoutes(r chi.Router, users *store.UserStore) {
	h := &adminAPIHandler{users: users}

	r.Route("/admin", func(admin chi.Router) {
		admin.Use(requireAdminRole)

		admin.Get("/users", h.ListUsers)
		admin.Put("/users/{id}/role", h.UpdateRole)
		admin.Put("/users/{id}/year", h.UpdateYear)
	})
}

// requireAdminRole enforces the admin role on all routes in the group.
func requireAdminRole(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := requireUser(w, r)
		if user == nil {
			return
		}
		if !requireMutate(w, user) {
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ListUsers returns all users in the system.
// GET /api/v1/admin/users
func (h *adminAPIHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.ListAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	resp := &UserListResponse{Users: make([]*UserResponse, 0, len(users))}
	for _, u := range users {
		resp.Users = append(resp.Users, toUserResponse(u))
	}
	writeJSON(w, http.StatusOK, resp)
}

// UpdateRole changes a user's role. Accepts only "student" and "admin".
// PUT /api/v1/admin/users/{id}/role
func (h *adminAPIHandler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	var req UpdateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeValidationError(w, err)
		return
	}

	u, err := h.users.UpdateRole(r.Context(), chi.URLParam(r, "id"), req.Role)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not found", "NOT_FOUND")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// UpdateYear assigns a user's cohort year. Year 0 unassigns.
// PUT /api/v1/admin/users/{id}/year
func (h *adminAPIHandler) UpdateYear(w http.ResponseWriter, r *http.Request) {
	var req UpdateYearRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeValidationError(w, err)
		return
	}

	u, err := h.users.UpdateYear(r.Context(), chi.URLParam(r, "id"), *req.Year)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not found", "NOT_FOUND")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}
