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

// modulesAPIHandler provides REST handlers for module management. Modules
// are the year boundary: every read below this level is scoped to the
// caller's cohort.
type modulesAPIHandler struct {
	modules  *store.ModuleStore
	subjects *store.SubjectStore
	chain    *store.ChainStore
}

func registerModuleRoutes(r chi.Router, modules *store.ModuleStore, subjects *store.SubjectStore, chain *store.ChainStore) {
	h := &modulesAPIHandler{modules: modules, subjects: subjects, chain: chain}
	r.Get("/modules", h.List)
	r.Post("/modules", h.Create)
	r.Get("/modules/{id}", h.Get)
	r.Put("/modules/{id}", h.Update)
	r.Delete("/modules/{id}", h.Delete)
	r.Get("/modules/{id}/subjects", h.ListSubjects)
	r.Post("/modules/{id}/subjects", h.CreateSubject)
}

// List returns modules for the caller's year, or all modules for admins.
// GET /api/v1/modules
func (h *modulesAPIHandler) List(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}

	var modules []*store.Module
	var err error
	if user.IsAdmin() {
		modules, err = h.modules.ListAll(r.Context())
	} else {
		modules, err = h.modules.ListByYear(r.Context(), user.Year)
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

// Get returns a single module. Students may only see their own year.
// GET /api/v1/modules/{id}
func (h *modulesAPIHandler) Get(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}

	m, err := h.modules.GetByID(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not found", "NOT_FOUND")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	if !requireRead(w, r, user, yearOf(m.Year)) {
		return
	}
	writeJSON(w, http.StatusOK, toModuleResponse(m))
}

// ListSubjects returns all subjects under a module. Year-scoped.
// GET /api/v1/modules/{id}/subjects
func (h *modulesAPIHandler) ListSubjects(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}

	moduleID := chi.URLParam(r, "id")
	if !requireRead(w, r, user, func(ctx context.Context) (int, error) {
		return h.chain.ModuleYear(ctx, moduleID)
	}) {
		return
	}

	subjects, err := h.subjects.ListByModule(r.Context(), moduleID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	resp := &SubjectListResponse{Subjects: make([]*SubjectResponse, 0, len(subjects))}
	for _, s := range subjects {
		resp.Subjects = append(resp.Subjects, toSubjectResponse(s))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Create creates a new module under a faculty. Admin only.
// POST /api/v1/modules
func (h *modulesAPIHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}
	if !requireMutate(w, user) {
		return
	}

	var req CreateModuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeValidationError(w, err)
		return
	}

	m, err := h.modules.Create(r.Context(), req.FacultyID, req.Name, req.Year)
	if err != nil {
		log.Printf("api: create module %q: %v", req.Name, err)
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	metrics.ContentWritesTotal.WithLabelValues("module", "create").Inc()
	writeJSON(w, http.StatusCreated, toModuleResponse(m))
}

// CreateSubject creates a new subject under a module. Admin only.
// POST /api/v1/modules/{id}/subjects
func (h *modulesAPIHandler) CreateSubject(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}
	if !requireMutate(w, user) {
		return
	}

	moduleID := chi.URLParam(r, "id")
	if _, err := h.modules.GetByID(r.Context(), moduleID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not found", "NOT_FOUND")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	var req CreateSubjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeValidationError(w, err)
		return
	}

	s, err := h.subjects.Create(r.Context(), moduleID, req.Name, req.Description)
	if err != nil {
		log.Printf("api: create subject %q: %v", req.Name, err)
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	metrics.ContentWritesTotal.WithLabelValues("subject", "create").Inc()
	writeJSON(w, http.StatusCreated, toSubjectResponse(s))
}

// Update modifies a module's name and year. Admin only.
// PUT /api/v1/modules/{id}
func (h *modulesAPIHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}
	if !requireMutate(w, user) {
		return
	}

	m, err := h.modules.GetByID(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not found", "NOT_FOUND")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	var req UpdateModuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeValidationError(w, err)
		return
	}

	name, year := m.Name, m.Year
	if req.Name != nil {
		name = *req.Name
	}
	if req.Year != nil {
		year = *req.Year
	}

	updated, err := h.modules.Update(r.Context(), m.ID, name, year)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	metrics.ContentWritesTotal.WithLabelValues("module", "update").Inc()
	writeJSON(w, http.StatusOK, toModuleResponse(updated))
}

// Delete removes a module and everything under it. Admin only.
// DELETE /api/v1/modules/{id}
func (h *modulesAPIHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}
	if !requireMutate(w, user) {
		return
	}

	err := h.modules.Delete(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not found", "NOT_FOUND")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	metrics.ContentWritesTotal.WithLabelValues("module", "delete").Inc()
	w.WriteHeader(http.StatusNoContent)
}

func toModuleResponse(m *store.Module) *ModuleResponse {
	return &ModuleResponse{
		ID:        m.ID,
		FacultyID: m.FacultyID,
		Name:      m.Name,
		Year:      m.Year,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
