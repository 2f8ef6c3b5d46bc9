package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lecturevault/lecturevault/internal/metrics"
	"github.com/lecturevault/lecturevault/internal/store"
)

// linksAPIHandler provides REST handlers for individual lecture links.
type linksAPIHandler struct {
	links *store.LectureLinkStore
	chain *store.ChainStore
}

func registerLinkRoutes(r chi.Router, links *store.LectureLinkStore, chain *store.ChainStore) {
	h := &linksAPIHandler{links: links, chain: chain}
	r.Get("/links/{id}", h.Get)
	r.Put("/links/{id}", h.Update)
	r.Delete("/links/{id}", h.Delete)
}

// Get returns a single lecture link. Year-scoped via lecture → subject → module.
// GET /api/v1/links/{id}
func (h *linksAPIHandler) Get(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}

	link, err := h.links.GetByID(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not found", "NOT_FOUND")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	if !requireRead(w, r, user, func(ctx context.Context) (int, error) {
		return h.chain.LectureModuleYear(ctx, link.LectureID)
	}) {
		return
	}
	writeJSON(w, http.StatusOK, toLinkResponse(link))
}

// Update modifies a lecture link. Admin only.
// PUT /api/v1/links/{id}
func (h *linksAPIHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}
	if !requireMutate(w, user) {
		return
	}

	link, err := h.links.GetByID(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not found", "NOT_FOUND")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	var req UpdateLinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeValidationError(w, err)
		return
	}

	label, url, kind := link.Label, link.URL, link.Kind
	if req.Label != nil {
		label = *req.Label
	}
	if req.URL != nil {
		url = *req.URL
	}
	if req.Kind != nil {
		kind = *req.Kind
	}

	updated, err := h.links.Update(r.Context(), link.ID, label, url, kind)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	metrics.ContentWritesTotal.WithLabelValues("lecture_link", "update").Inc()
	writeJSON(w, http.StatusOK, toLinkResponse(updated))
}

// Delete removes a lecture link. Admin only.
// DELETE /api/v1/links/{id}
func (h *linksAPIHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}
	if !requireMutate(w, user) {
		return
	}

	err := h.links.Delete(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not found", "NOT_FOUND")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	metrics.ContentWritesTotal.WithLabelValues("lecture_link", "delete").Inc()
	w.WriteHeader(http.StatusNoContent)
}

func toLinkResponse(l *store.LectureLink) *LinkResponse {
	return &LinkResponse{
		ID:        l.ID,
		LectureID: l.LectureID,
		Label:     l.Label,
		URL:       l.URL,
		Kind:      l.Kind,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}
