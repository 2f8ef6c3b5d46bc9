// Package handler assembles the top-level HTTP router: authentication
// routes, the /metrics endpoint, and the versioned JSON API.
package handler

import (
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lecturevault/lecturevault/internal/api"
	"github.com/lecturevault/lecturevault/internal/auth"
	"github.com/lecturevault/lecturevault/internal/store"
)

// Deps holds all dependencies required to build the HTTP router.
type Deps struct {
	SessionManager *scs.SessionManager
	AuthHandlers   *auth.Handlers
	AuthMiddleware *auth.Middleware
	UserStore      *store.UserStore
	FacultyStore   *store.FacultyStore
	ModuleStore    *store.ModuleStore
	SubjectStore   *store.SubjectStore
	LectureStore   *store.LectureStore
	LinkStore      *store.LectureLinkStore
	ChainStore     *store.ChainStore
	TokenStore     auth.TokenStore
}

// NewRouter assembles the full chi router with all middleware and routes.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	// Standard middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(deps.SessionManager.LoadAndSave)

	// Auth routes (no auth required)
	r.Get("/auth/login", deps.AuthHandlers.Login)
	r.Get("/auth/callback", deps.AuthHandlers.Callback)
	r.Post("/auth/logout", deps.AuthHandlers.Logout)

	// Prometheus metrics; scrape-only, no auth.
	r.Handle("/metrics", promhttp.Handler())

	// API sub-router at /api/v1. Every route under it requires an
	// authenticated caller via session cookie or Bearer token.
	apiRouter := api.NewAPIRouter(api.Deps{
		AuthMiddleware: deps.AuthMiddleware,
		UserStore:      deps.UserStore,
		FacultyStore:   deps.FacultyStore,
		ModuleStore:    deps.ModuleStore,
		SubjectStore:   deps.SubjectStore,
		LectureStore:   deps.LectureStore,
		LinkStore:      deps.LinkStore,
		ChainStore:     deps.ChainStore,
		TokenStore:     deps.TokenStore,
	})
	r.Mount("/api/v1", apiRouter)

	return r
}
