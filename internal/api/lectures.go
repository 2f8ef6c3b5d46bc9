package api

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/lecturevault/lecturevault/internal/metrics"
	"github.com/lecturevault/lecturevault/internal/store"
)

// lecturesAPIHandler provides REST handlers for lecture management.
type lecturesAPIHandler struct {
	lectures *store.LectureStore
	links    *store.LectureLinkStore
	chain    *store.ChainStore
}

func registerLectureRoutes(r chi.Router, lectures *store.LectureStore, links *store.LectureLinkStore, chain *store.ChainStore) {
	h := &lecturesAPIHandler{lectures: lectures, links: links, chain: chain}
	r.Get("/lectures/{id}", h.Get)
	r.Put("/lectures/{id}", h.Update)
	r.Delete("/lectures/{id}", h.Delete)
	r.Get("/lectures/{id}/links", h.ListLinks)
	r.Post("/lectures/{id}/links", h.CreateLink)
}

// Get returns a single lecture. Year-scoped via subject → module.
// GET /api/v1/lectures/{id}
func (h *lecturesAPIHandler) Get(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}

	l, err := h.lectures.GetByID(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not found", "NOT_FOUND")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	if !requireRead(w, r, user, func(ctx context.Context) (int, error) {
		return h.chain.SubjectModuleYear(ctx, l.SubjectID)
	}) {
		return
	}
	writeJSON(w, http.StatusOK, toLectureResponse(l))
}

// ListLinks returns all links under a lecture. Year-scoped.
// GET /api/v1/lectures/{id}/links
func (h *lecturesAPIHandler) ListLinks(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}

	lectureID := chi.URLParam(r, "id")
	if !requireRead(w, r, user, func(ctx context.Context) (int, error) {
		return h.chain.LectureModuleYear(ctx, lectureID)
	}) {
		return
	}

	links, err := h.links.ListByLecture(r.Context(), lectureID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	resp := &LinkListResponse{Links: make([]*LinkResponse, 0, len(links))}
	for _, l := range links {
		resp.Links = append(resp.Links, toLinkResponse(l))
	}
	writeJSON(w, http.StatusOK, resp)
}

// CreateLink attaches a new link to a lecture. Admin only.
// POST /api/v1/lectures/{id}/links
func (h *lecturesAPIHandler) CreateLink(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}
	if !requireMutate(w, user) {
		return
	}

	lectureID := chi.URLParam(r, "id")
	if _, err := h.lectures.GetByID(r.Context(), lectureID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not found", "NOT_FOUND")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	var req CreateLinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeValidationError(w, err)
		return
	}

	kind := req.Kind
	if kind == "" {
		kind = "other"
	}

	link, err := h.links.Create(r.Context(), lectureID, req.Label, req.URL, kind)
	if err != nil {
		log.Printf("api: create link %q: %v", req.Label, err)
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	metrics.ContentWritesTotal.WithLabelValues("lecture_link", "create").Inc()
	writeJSON(w, http.StatusCreated, toLinkResponse(link))
}

// Update modifies a lecture. Admin only.
// PUT /api/v1/lectures/{id}
func (h *lecturesAPIHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}
	if !requireMutate(w, user) {
		return
	}

	l, err := h.lectures.GetByID(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not found", "NOT_FOUND")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	var req UpdateLectureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeValidationError(w, err)
		return
	}

	title, description, lecturer := l.Title, l.Description, l.Lecturer
	if req.Title != nil {
		title = *req.Title
	}
	if req.Description != nil {
		description = *req.Description
	}
	if req.Lecturer != nil {
		lecturer = *req.Lecturer
	}
	deliveredAt := req.DeliveredAt
	if deliveredAt == nil && l.DeliveredAt.Valid {
		t := l.DeliveredAt.Time
		deliveredAt = &t
	}

	updated, err := h.lectures.Update(r.Context(), l.ID, title, description, lecturer, deliveredAt)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	metrics.ContentWritesTotal.WithLabelValues("lecture", "update").Inc()
	writeJSON(w, http.StatusOK, toLectureResponse(updated))
}

// Delete removes a lecture and its links. Admin only.
// DELETE /api/v1/lectures/{id}
func (h *lecturesAPIHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}
	if !requireMutate(w, user) {
		return
	}

	err := h.lectures.Delete(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not found", "NOT_FOUND")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	metrics.ContentWritesTotal.WithLabelValues("lecture", "delete").Inc()
	w.WriteHeader(http.StatusNoContent)
}

func toLectureResponse(l *store.Lecture) *LectureResponse {
	var deliveredAt *time.Time
	if l.DeliveredAt.Valid {
		t := l.DeliveredAt.Time
		deliveredAt = &t
	}
	return &LectureResponse{
		ID:          l.ID,
		SubjectID:   l.SubjectID,
		Title:       l.Title,
		Description: l.Description,
		Lecturer:    l.Lecturer,
		DeliveredAt: deliveredAt,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}
