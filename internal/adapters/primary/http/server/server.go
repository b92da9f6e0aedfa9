// Package server wires the handlers into a chi router and runs the HTTP
// listener.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/clubsphere/backend/internal/adapters/primary/http/handlers/admin"
	"github.com/clubsphere/backend/internal/adapters/primary/http/handlers/auth"
	"github.com/clubsphere/backend/internal/adapters/primary/http/handlers/clubadmin"
	"github.com/clubsphere/backend/internal/adapters/primary/http/handlers/student"
	"github.com/clubsphere/backend/internal/adapters/primary/http/middlewares"
	"github.com/clubsphere/backend/internal/domain/entity"
	"github.com/clubsphere/backend/pkg/logger/types"
)

// Handlers groups the per-surface handler sets the router mounts.
type Handlers struct {
	Auth      *auth.Handler
	Student   *student.Handler
	ClubAdmin *clubadmin.Handler
	Admin     *admin.Handler
}

type Server struct {
	logger *types.Logger
	srv    *http.Server
}

func New(addr string, corsOrigins []string, h Handlers, mw *middlewares.Handler, lg *types.Logger) *Server {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", h.Auth.Register)
		r.Post("/auth/login", h.Auth.Login)

		r.Group(func(r chi.Router) {
			r.Use(mw.RequireAuth)

			r.Post("/auth/logout", h.Auth.Logout)
			r.Get("/auth/me", h.Auth.Me)

			// Read-only catalog, visible to every authenticated role.
			r.Get("/clubs", h.Student.Clubs)
			r.Get("/clubs/{clubID}", h.Student.ClubDetails)
			r.Get("/categories", h.Student.Categories)

			r.Group(func(r chi.Router) {
				r.Use(mw.RequireRole(entity.Student))

				r.Post("/applications", h.Student.Apply)
				r.Delete("/applications/{applicationID}", h.Student.CancelApplication)
				r.Get("/students/{userID}/applications", h.Student.Applications)
				r.Get("/students/{userID}/announcements", h.Student.AnnouncementFeed)
				r.Get("/students/{userID}/events", h.Student.EventFeed)
				r.Get("/users/{userID}/stats", h.Student.Stats)
				r.Get("/profile", h.Student.Profile)
				r.Put("/profile", h.Student.UpdateProfile)
			})

			r.Group(func(r chi.Router) {
				r.Use(mw.RequireRole(entity.ClubAdmin))

				r.Put("/applications/{applicationID}/approve", h.ClubAdmin.Approve)
				r.Put("/applications/{applicationID}/reject", h.ClubAdmin.Reject)
				r.Delete("/memberships/{userID}", h.ClubAdmin.RemoveMember)

				r.Route("/club-admin", func(r chi.Router) {
					r.Get("/club", h.ClubAdmin.Club)
					r.Put("/club", h.ClubAdmin.UpdateClub)
					r.Get("/applicants", h.ClubAdmin.Applicants)
					r.Get("/members", h.ClubAdmin.Members)
					r.Get("/members/export", h.ClubAdmin.ExportMembers)
					r.Get("/announcements", h.ClubAdmin.Announcements)
					r.Post("/announcements", h.ClubAdmin.CreateAnnouncement)
					r.Delete("/announcements/{announcementID}", h.ClubAdmin.DeleteAnnouncement)
					r.Get("/events", h.ClubAdmin.Events)
					r.Post("/events", h.ClubAdmin.CreateEvent)
					r.Delete("/events/{eventID}", h.ClubAdmin.DeleteEvent)
				})
			})

			r.Route("/admin", func(r chi.Router) {
				r.Use(mw.RequireRole(entity.Admin))

				r.Post("/clubs", h.Admin.CreateClub)
				r.Get("/clubs", h.Admin.Clubs)
				r.Delete("/clubs/{clubID}", h.Admin.DeleteClub)
				r.Get("/students", h.Admin.Students)
				r.Delete("/students/{userID}", h.Admin.DeleteStudent)
			})
		})
	})

	return &Server{
		logger: lg,
		srv: &http.Server{
			Addr:         addr,
			Handler:      r,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// Start blocks until the listener fails or Shutdown is called.
func (s *Server) Start() error {
	s.logger.Infof("http server listening on %s", s.srv.Addr)
	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
