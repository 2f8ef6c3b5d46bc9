package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lecturevault/lecturevault/internal/metrics"
	"github.com/lecturevault/lecturevault/internal/store"
)

// facultiesAPIHandler provides REST handlers for faculty management.
// Faculties carry no year, so reads are open to any authenticated caller;
// mutations are admin-only like everything else.
type facultiesAPIHandler struct {
	faculties *store.FacultyStore
	modules   *store.ModuleStore
}

func registerFacultyRoutes(r chi.Router, faculties *store.FacultyStore, modules *store.ModuleStore) {
	h := &facultiesAPIHandler{faculties: faculties, modules: modules}
	r.Get("/faculties", h.List)
	r.Post("/faculties", h.Create)
	r.Get("/faculties/{id}", h.Get)
	r.Put("/faculties/{id}", h.Update)
	r.Delete("/faculties/{id}", h.Delete)
	r.Get("/faculties/{id}/modules", h.ListModules)
}

// List returns all faculties.
// GET /api/v1/faculties
func (h *facultiesAPIHandler) List(w http.ResponseWriter, r *http.Request) {
	if requireUser(w, r) == nil {
		return
	}

	faculties, err := h.faculties.ListAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	resp := &FacultyListResponse{Faculties: make([]*FacultyResponse, 0, len(faculties))}
	for _, f := range faculties {
		resp.Faculties = append(resp.Faculties, toFacultyResponse(f))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get returns a single faculty by ID.
// GET /api/v1/faculties/{id}
func (h *facultiesAPIHandler) Get(w http.ResponseWriter, r *http.Request) {
	if requireUser(w, r) == nil {
		return
	}

	f, err := h.faculties.GetByID(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not found", "NOT_FOUND")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}
	writeJSON(w, http.StatusOK, toFacultyResponse(f))
}

// ListModules returns the faculty's modules, filtered to the caller's year
// for students.
// GET /api/v1/faculties/{id}/modules
func (h *facultiesAPIHandler) ListModules(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}

	facultyID := chi.URLParam(r, "id")
	if _, err := h.faculties.GetByID(r.Context(), facultyID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not found", "NOT_FOUND")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	var modules []*store.Module
	var err error
	if user.IsAdmin() {
		modules, err = h.modules.ListByFaculty(r.Context(), facultyID)
	} else {
		modules, err = h.modules.ListByFacultyAndYear(r.Context(), facultyID, user.Year)
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	resp := &ModuleListResponse{Modules: make([]*ModuleResponse, 0, len(modules))}
	for _, m := range modules {
		resp.Modules = append(resp.Modules, toModuleResponse(m))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Create creates a new faculty. Admin only.
// POST /api/v1/faculties
func (h *facultiesAPIHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}
	if !requireMutate(w, user) {
		return
	}

	var req CreateFacultyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeValidationError(w, err)
		return
	}

	f, err := h.faculties.Create(r.Context(), req.Name, req.Description)
	if err != nil {
		log.Printf("api: create faculty %q: %v", req.Name, err)
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	metrics.ContentWritesTotal.WithLabelValues("faculty", "create").Inc()
	writeJSON(w, http.StatusCreated, toFacultyResponse(f))
}

// Update modifies a faculty's name and description. Admin only.
// PUT /api/v1/faculties/{id}
func (h *facultiesAPIHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}
	if !requireMutate(w, user) {
		return
	}

	f, err := h.faculties.GetByID(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not found", "NOT_FOUND")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	var req UpdateFacultyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeValidationError(w, err)
		return
	}

	name, description := f.Name, f.Description
	if req.Name != nil {
		name = *req.Name
	}
	if req.Description != nil {
		description = *req.Description
	}

	updated, err := h.faculties.Update(r.Context(), f.ID, name, description)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	metrics.ContentWritesTotal.WithLabelValues("faculty", "update").Inc()
	writeJSON(w, http.StatusOK, toFacultyResponse(updated))
}

// Delete removes a faculty and everything under it. Admin only.
// DELETE /api/v1/faculties/{id}
func (h *facultiesAPIHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}
	if !requireMutate(w, user) {
		return
	}

	err := h.faculties.Delete(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not found", "NOT_FOUND")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	metrics.ContentWritesTotal.WithLabelValues("faculty", "delete").Inc()
	w.WriteHeader(http.StatusNoContent)
}

func toFacultyResponse(f *store.Faculty) *FacultyResponse {
	return &FacultyResponse{
		ID:          f.ID,
		Name:        f.Name,
		Description: f.Description,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}
