package main

import (
	"context"
	"log"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/lecturevault/lecturevault/internal/auth"
	"github.com/lecturevault/lecturevault/internal/config"
	"github.com/lecturevault/lecturevault/internal/db"
	"github.com/lecturevault/lecturevault/internal/handler"
	"github.com/lecturevault/lecturevault/internal/store"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			database, err := db.New(cfg.DB.Driver, cfg.DB.DSN)
			if err != nil {
				return err
			}
			defer func() { _ = database.Close() }()

			if err := db.Migrate(database, cfg.DB.Driver); err != nil {
				return err
			}

			sessionManager := auth.NewSessionManager(database, cfg.DB.Driver, cfg.SessionLifetime, !cfg.InsecureCookies)

			oidcProvider, err := auth.NewProvider(context.Background(), cfg)
			if err != nil {
				return err
			}

			userStore := store.NewUserStore(database)
			facultyStore := store.NewFacultyStore(database)
			moduleStore := store.NewModuleStore(database)
			subjectStore := store.NewSubjectStore(database)
			lectureStore := store.NewLectureStore(database)
			linkStore := store.NewLectureLinkStore(database)
			chainStore := store.NewChainStore(database)
			tokenStore := auth.NewSQLTokenStore(database)

			authHandlers := auth.NewHandlers(oidcProvider, sessionManager, userStore, cfg.AdminEmail, !cfg.InsecureCookies)
			authMiddleware := auth.NewMiddleware(sessionManager, userStore, tokenStore)

			router := handler.NewRouter(handler.Deps{
				SessionManager: sessionManager,
				AuthHandlers:   authHandlers,
				AuthMiddleware: authMiddleware,
				UserStore:      userStore,
				FacultyStore:   facultyStore,
				ModuleStore:    moduleStore,
				SubjectStore:   subjectStore,
				LectureStore:   lectureStore,
				LinkStore:      linkStore,
				ChainStore:     chainStore,
				TokenStore:     tokenStore,
			})

			log.Printf("listening on %s", cfg.HTTP.Addr)
			return http.ListenAndServe(cfg.HTTP.Addr, router)
		},
	}
}
