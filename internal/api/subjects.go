package api

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lecturevault/lecturevault/internal/metrics"
	"github.com/lecturevault/lecturevault/internal/store"
)

// subjectsAPIHandler provides REST handlers for subject management.
type subjectsAPIHandler struct {
	subjects *store.SubjectStore
	lectures *store.LectureStore
	chain    *store.ChainStore
}

func registerSubjectRoutes(r chi.Router, subjects *store.SubjectStore, lectures *store.LectureStore, chain *store.ChainStore) {
	h := &subjectsAPIHandler{subjects: subjects, lectures: lectures, chain: chain}
	r.Get("/subjects/{id}", h.Get)
	r.Put("/subjects/{id}", h.Update)
	r.Delete("/subjects/{id}", h.Delete)
	r.Get("/subjects/{id}/lectures", h.ListLectures)
	r.Post("/subjects/{id}/lectures", h.CreateLecture)
}

// Get returns a single subject. Year-scoped via the owning module.
// GET /api/v1/subjects/{id}
func (h *subjectsAPIHandler) Get(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}

	s, err := h.subjects.GetByID(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not found", "NOT_FOUND")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	if !requireRead(w, r, user, func(ctx context.Context) (int, error) {
		return h.chain.ModuleYear(ctx, s.ModuleID)
	}) {
		return
	}
	writeJSON(w, http.StatusOK, toSubjectResponse(s))
}

// ListLectures returns all lectures under a subject. Year-scoped.
// GET /api/v1/subjects/{id}/lectures
func (h *subjectsAPIHandler) ListLectures(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}

	subjectID := chi.URLParam(r, "id")
	if !requireRead(w, r, user, func(ctx context.Context) (int, error) {
		return h.chain.SubjectModuleYear(ctx, subjectID)
	}) {
		return
	}

	lectures, err := h.lectures.ListBySubject(r.Context(), subjectID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	resp := &LectureListResponse{Lectures: make([]*LectureResponse, 0, len(lectures))}
	for _, l := range lectures {
		resp.Lectures = append(resp.Lectures, toLectureResponse(l))
	}
	writeJSON(w, http.StatusOK, resp)
}

// CreateLecture creates a new lecture under a subject. Admin only.
// POST /api/v1/subjects/{id}/lectures
func (h *subjectsAPIHandler) CreateLecture(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}
	if !requireMutate(w, user) {
		return
	}

	subjectID := chi.URLParam(r, "id")
	if _, err := h.subjects.GetByID(r.Context(), subjectID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not found", "NOT_FOUND")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	var req CreateLectureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeValidationError(w, err)
		return
	}

	l, err := h.lectures.Create(r.Context(), subjectID, req.Title, req.Description, req.Lecturer, req.DeliveredAt)
	if err != nil {
		log.Printf("api: create lecture %q: %v", req.Title, err)
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	metrics.ContentWritesTotal.WithLabelValues("lecture", "create").Inc()
	writeJSON(w, http.StatusCreated, toLectureResponse(l))
}

// Update modifies a subject's name and description. Admin only.
// PUT /api/v1/subjects/{id}
func (h *subjectsAPIHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}
	if !requireMutate(w, user) {
		return
	}

	s, err := h.subjects.GetByID(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not found", "NOT_FOUND")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	var req UpdateSubjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeValidationError(w, err)
		return
	}

	name, description := s.Name, s.Description
	if req.Name != nil {
		name = *req.Name
	}
	if req.Description != nil {
		description = *req.Description
	}

	updated, err := h.subjects.Update(r.Context(), s.ID, name, description)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	metrics.ContentWritesTotal.WithLabelValues("subject", "update").Inc()
	writeJSON(w, http.StatusOK, toSubjectResponse(updated))
}

// Delete removes a subject and everything under it. Admin only.
// DELETE /api/v1/subjects/{id}
func (h *subjectsAPIHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}
	if !requireMutate(w, user) {
		return
	}

	err := h.subjects.Delete(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not found", "NOT_FOUND")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	metrics.ContentWritesTotal.WithLabelValues("subject", "delete").Inc()
	w.WriteHeader(http.StatusNoContent)
}

func toSubjectResponse(s *store.Subject) *SubjectResponse {
	return &SubjectResponse{
		ID:          s.ID,
		ModuleID:    s.ModuleID,
		Name:        s.Name,
		Description: s.Description,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
