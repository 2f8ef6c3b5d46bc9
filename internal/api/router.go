package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lecturevault/lecturevault/internal/auth"
	"github.com/lecturevault/lecturevault/internal/store"
)

// Deps holds all dependencies required to build the API router.
type Deps struct {
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

// NewAPIRouter creates a chi sub-router for /api/v1.
// All routes require an authenticated caller (session cookie or Bearer
// token) and return application/json.
func NewAPIRouter(deps Deps) chi.Router {
	r := chi.NewRouter()

	// All API responses are JSON.
	r.Use(jsonContentType)

	r.Use(deps.AuthMiddleware.Authenticate)

	registerFacultyRoutes(r, deps.FacultyStore, deps.ModuleStore)
	registerModuleRoutes(r, deps.ModuleStore, deps.SubjectStore, deps.ChainStore)
	registerSubjectRoutes(r, deps.SubjectStore, deps.LectureStore, deps.ChainStore)
	registerLectureRoutes(r, deps.LectureStore, deps.LinkStore, deps.ChainStore)
	registerLinkRoutes(r, deps.LinkStore, deps.ChainStore)
	registerUserRoutes(r)
	registerTokenRoutes(r, deps.TokenStore)
	registerAdminRoutes(r, deps.UserStore)

	return r
}

// jsonContentType is a middleware that sets Content-Type: application/json on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}
