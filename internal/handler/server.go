// Package handler implements the HTTP handlers for the BJJTracker API.
// All handlers are methods on Server. Methods are split into resource-specific
// files (auth.go, tag.go, technique.go, ...) but all share the same Server
// struct so they can access its dependencies.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/DavidJulianGit/BJJTracker/internal/domain"
	"github.com/DavidJulianGit/BJJTracker/internal/service"
)

// The service interfaces are defined here, in the consumer package, following
// the Go convention: "accept interfaces, return concrete types". Handler
// tests inject function-field mocks without touching the database or the
// service layer.

// AuthServicer defines the signup/login operations the auth handler depends on.
type AuthServicer interface {
	Signup(ctx context.Context, in service.SignupInput) (domain.User, string, error)
	Login(ctx context.Context, email, password string) (domain.User, string, error)
}

// UserServicer defines the account operations the user handler depends on.
type UserServicer interface {
	Get(ctx context.Context, id uuid.UUID) (domain.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, update service.ProfileUpdate) (domain.User, error)
	ChangePassword(ctx context.Context, id uuid.UUID, newPassword string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// TagServicer defines the tag catalog operations the tag handler depends on.
type TagServicer interface {
	List(ctx context.Context, userID uuid.UUID) ([]domain.Tag, error)
	Create(ctx context.Context, userID uuid.UUID, name string) (domain.Tag, error)
	Rename(ctx context.Context, userID, tagID uuid.UUID, name string) (domain.Tag, error)
	SoftDelete(ctx context.Context, userID, tagID uuid.UUID) error
}

// TechniqueServicer defines the technique catalog operations the technique
// handler depends on.
type TechniqueServicer interface {
	List(ctx context.Context, userID uuid.UUID) ([]domain.Technique, error)
	Get(ctx context.Context, userID, techniqueID uuid.UUID) (domain.Technique, error)
	Create(ctx context.Context, userID uuid.UUID, draft domain.TechniqueDraft) (domain.Technique, error)
	Update(ctx context.Context, userID, techniqueID uuid.UUID, draft domain.TechniqueDraft) (domain.Technique, error)
	Restore(ctx context.Context, userID, techniqueID uuid.UUID) (domain.Technique, error)
	Replace(ctx context.Context, userID, targetID uuid.UUID, draft domain.TechniqueDraft) (domain.Technique, error)
	SoftDelete(ctx context.Context, userID, techniqueID uuid.UUID) error
}

// SessionServicer defines the training log operations the session handler
// depends on.
type SessionServicer interface {
	List(ctx context.Context, userID uuid.UUID) ([]domain.TrainingSession, error)
	Get(ctx context.Context, userID, sessionID uuid.UUID) (domain.TrainingSession, error)
	Create(ctx context.Context, session domain.TrainingSession) (domain.TrainingSession, error)
	Update(ctx context.Context, session domain.TrainingSession) (domain.TrainingSession, error)
	Delete(ctx context.Context, userID, sessionID uuid.UUID) error
}

// StatsServicer defines the statistics rollup the stats handler depends on.
type StatsServicer interface {
	Summary(ctx context.Context, userID uuid.UUID, window domain.StatsWindow, topTechniques int) (domain.StatsSummary, error)
}

// Server implements the handlers for all API endpoints.
type Server struct {
	auth       AuthServicer
	users      UserServicer
	tags       TagServicer
	techniques TechniqueServicer
	sessions   SessionServicer
	stats      StatsServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(auth AuthServicer, users UserServicer, tags TagServicer, techniques TechniqueServicer, sessions SessionServicer, stats StatsServicer) *Server {
	return &Server{
		auth:       auth,
		users:      users,
		tags:       tags,
		techniques: techniques,
		sessions:   sessions,
		stats:      stats,
	}
}

// Routes builds the API router. requireAuth guards everything under /api
// except signup and login; ensureData is the default-data bootstrap gate and
// wraps only the technique catalog, where first-time users land.
func (s *Server) Routes(requireAuth, ensureData func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/signup", s.Signup)
		r.Post("/auth/login", s.Login)

		r.Group(func(r chi.Router) {
			r.Use(requireAuth)

			r.Route("/users/me", func(r chi.Router) {
				r.Get("/", s.GetMe)
				r.Put("/", s.UpdateMe)
				r.Post("/password", s.ChangePassword)
				r.Delete("/", s.DeleteMe)
			})

			r.Route("/tags", func(r chi.Router) {
				r.Get("/", s.ListTags)
				r.Post("/", s.CreateTag)
				r.Put("/{id}", s.RenameTag)
				r.Delete("/{id}", s.DeleteTag)
			})

			r.Route("/techniques", func(r chi.Router) {
				r.Use(ensureData)
				r.Get("/", s.ListTechniques)
				r.Post("/", s.CreateTechnique)
				r.Get("/{id}", s.GetTechnique)
				r.Put("/{id}", s.UpdateTechnique)
				r.Put("/{id}/restore", s.RestoreTechnique)
				r.Put("/{id}/replace", s.ReplaceTechnique)
				r.Delete("/{id}", s.DeleteTechnique)
			})

			r.Route("/trainingSessions", func(r chi.Router) {
				r.Get("/", s.ListSessions)
				r.Post("/", s.CreateSession)
				r.Get("/{id}", s.GetSession)
				r.Put("/{id}", s.UpdateSession)
				r.Delete("/{id}", s.DeleteSession)
			})

			r.Get("/statistics", s.GetStatistics)
		})
	})

	return r
}
